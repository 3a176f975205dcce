// Copyright 2025 go-scatcols Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scatcols

import (
	"os"
	"runtime"
	"strconv"
)

// Backend selects the scatter implementation. Both backends produce
// identical results; they differ only in how the row range is executed.
type Backend int

const (
	// BackendSerial runs the single-threaded host implementation.
	BackendSerial Backend = iota

	// BackendParallel splits the row range across a worker pool.
	BackendParallel
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendSerial:
		return "serial"
	case BackendParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// currentBackend is the backend ScatterColumns routes through.
// Set by init() below.
var currentBackend Backend

// currentWidth is the SIMD register width in bytes for this CPU.
// Set by init() in dispatch_*.go files. The copy engine relies on Go's
// copy/memmove to use these registers; the width is reported for
// diagnostics and benchmarking.
var currentWidth int

// currentName is the human-readable name of the detected CPU width class.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentBackend returns the backend ScatterColumns routes through.
func CurrentBackend() Backend {
	return currentBackend
}

// CurrentWidth returns the detected SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the detected width class.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoParallelEnv checks if the SCATCOLS_NO_PARALLEL environment variable is
// set. When set, ScatterColumns always uses the serial backend regardless of
// available CPUs. This is useful for testing and debugging.
func NoParallelEnv() bool {
	val := os.Getenv("SCATCOLS_NO_PARALLEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func init() {
	if NoParallelEnv() || runtime.GOMAXPROCS(0) == 1 {
		currentBackend = BackendSerial
		return
	}
	currentBackend = BackendParallel
}
