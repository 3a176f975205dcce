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

// planPaddingRuns groups consecutive padding columns so the copy engine can
// write each run with one bulk copy instead of one store per column.
//
// For every destination column c, runs[c] is the number of consecutive
// unowned columns starting at c (0 when c is owned), so a maximal run of
// length L is recorded as L, L-1, ..., 1. maxRun is the longest run seen and
// sizes the shared padding buffer.
//
// Continuing the package example:
//
//	ownership = [-1, -1, 2, 3, 1, -1, -1, 0, -1, -1]
//	runs      = [ 2,  1, 0, 0, 0,  2,  1, 0,  2,  1]   maxRun = 2
//
// Each column is visited once; the scan is linear in len(ownership).
func planPaddingRuns(ownership []int) (runs []int, maxRun int) {
	runs = make([]int, len(ownership))

	for c := 0; c < len(runs); {
		if ownership[c] != unowned {
			c++
			continue
		}

		runLen := 1
		for c+runLen < len(runs) && ownership[c+runLen] == unowned {
			runLen++
		}
		if runLen > maxRun {
			maxRun = runLen
		}

		for k := runLen; k > 0; k-- {
			runs[c] = k
			c++
		}
	}

	return runs, maxRun
}
