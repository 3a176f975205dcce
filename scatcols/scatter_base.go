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

// fill sets all elements in dst to the specified value.
// Uses an efficient doubling pattern that leverages Go's optimized memmove.
func fill[T Element](dst []T, value T) {
	n := len(dst)
	if n == 0 {
		return
	}

	dst[0] = value

	// Double the filled region each iteration: O(log n) calls to copy,
	// and copy is highly optimized.
	for filled := 1; filled < n; filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

// newPadBuffer builds the shared padding buffer, sized to the longest
// padding run. It is built once per call and reused for every run in every
// row.
func newPadBuffer[T Element](maxRun int, padElem T) []T {
	buf := make([]T, maxRun)
	fill(buf, padElem)
	return buf
}

// scatterRows fills output rows [rowStart, rowEnd) from params according to
// the ownership and run tables. Owned columns are copied one element at a
// time from their source column; each padding run is written with a single
// bulk copy from padBuf and the cursor advances by the run length.
//
// The tables and padBuf are read-only here and rows are independent, so
// callers may partition the row range across workers with no synchronization
// beyond a join. Inputs are assumed validated and self-consistent; this
// function cannot fail.
func scatterRows[T Element](params []T, paramsCols, rowStart, rowEnd int,
	ownership, runs []int, padBuf []T, outNumCols int, output []T) {

	for r := rowStart; r < rowEnd; r++ {
		srcRow := params[r*paramsCols : (r+1)*paramsCols]
		dstRow := output[r*outNumCols : (r+1)*outNumCols]

		for c := 0; c < outNumCols; {
			if s := ownership[c]; s != unowned {
				dstRow[c] = srcRow[s]
				c++
			} else {
				n := runs[c]
				copy(dstRow[c:c+n], padBuf[:n])
				c += n
			}
		}
	}
}
