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

// Command scatbench measures column-scatter throughput for a given shape.
//
// Usage:
//
//	scatbench -rows 4096 -cols 256 -out-cols 2048 -iters 100
//	scatbench -rows 4096 -cols 256 -out-cols 2048 -serial    # force serial engine
//
// Source columns are spread evenly across the destination range, so the
// padding fraction is controlled by the cols/out-cols ratio.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ajroetker/go-scatcols/scatcols"
	"github.com/ajroetker/go-scatcols/scatcols/workerpool"
)

var (
	rows    = flag.Int("rows", 4096, "Number of rows")
	cols    = flag.Int("cols", 256, "Number of source (params) columns")
	outCols = flag.Int("out-cols", 2048, "Number of output columns (>= cols)")
	iters   = flag.Int("iters", 100, "Number of timed iterations")
	serial  = flag.Bool("serial", false, "Force the serial engine (no worker pool)")
	workers = flag.Int("workers", 0, "Worker count for the parallel engine (0 = GOMAXPROCS)")
)

func main() {
	flag.Parse()

	if *outCols < *cols {
		fmt.Fprintf(os.Stderr, "Error: -out-cols must be at least -cols\n\n")
		flag.Usage()
		os.Exit(1)
	}

	params := make([]float32, *rows**cols)
	for i := range params {
		params[i] = float32(i)
	}

	stride := *outCols / max(*cols, 1)
	indices := make([]int32, *cols)
	for i := range indices {
		indices[i] = int32(i * stride)
	}

	output := make([]float32, *rows**outCols)

	var pool *workerpool.Pool
	engine := "serial"
	if !*serial {
		pool = workerpool.New(*workers)
		defer pool.Close()
		engine = fmt.Sprintf("parallel (%d workers)", pool.NumWorkers())
	}

	fmt.Printf("scatbench: %dx%d -> %dx%d, width class %s, engine %s\n",
		*rows, *cols, *rows, *outCols, scatcols.CurrentName(), engine)

	run := func() error {
		if pool != nil {
			return scatcols.ParallelScatterColumns(pool, params, *rows, *cols, indices, *outCols, float32(0), output)
		}
		return scatcols.ScatterColumns(params, *rows, *cols, indices, *outCols, float32(0), output)
	}

	// Warm up once so pool spin-up and page faults stay out of the timing.
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	for i := 0; i < *iters; i++ {
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	elapsed := time.Since(start)

	perOp := elapsed / time.Duration(*iters)
	bytes := int64(len(output)) * 4
	gbps := float64(bytes) / perOp.Seconds() / 1e9

	fmt.Printf("  %v/op, %.2f GB/s written, %.1f%% padding\n",
		perOp, gbps, 100*float64(*outCols-*cols)/float64(*outCols))
}
