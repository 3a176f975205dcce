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

// ScatterColumns scatters the columns of params into output.
//
// Parameters:
//   - params: source matrix in row-major order with shape [rows, paramsCols]
//   - rows, paramsCols: source dimensions
//   - indices: destination column for each source column; length paramsCols,
//     values distinct and in [0, outNumCols)
//   - outNumCols: number of output columns, at least paramsCols
//   - padElem: value written to every destination column no index addresses
//   - output: destination matrix of shape [rows, outNumCols], pre-allocated
//     by the caller
//
// For every row r: output[r][indices[i]] = params[r][i] for each source
// column i, and output[r][c] = padElem for every c not present in indices.
//
// Returns *DuplicateIndexError if indices contains repeated values, or
// *IndexOutOfRangeError for the first value outside [0, outNumCols). Both
// are detected before any write, so on error output is left untouched. The
// call is stateless: derived tables live only for its duration.
//
// Panics if:
//   - len(params) < rows * paramsCols
//   - len(indices) != paramsCols
//   - outNumCols < paramsCols
//   - len(output) < rows * outNumCols
//
// Routes through CurrentBackend(): the serial engine, or a shared worker
// pool splitting the row range when the output is large enough. Both paths
// produce identical results.
//
// Example:
//
//	params := []float32{11, 12, 13, 14}
//	indices := []int32{7, 4, 2, 3}
//	output := make([]float32, 10)
//	err := ScatterColumns(params, 1, 4, indices, 10, float32(0), output)
//	// output = [0 0 13 14 12 0 0 11 0 0]
func ScatterColumns[T Element, I Index](params []T, rows, paramsCols int,
	indices []I, outNumCols int, padElem T, output []T) error {

	checkShapes(len(params), rows, paramsCols, len(indices), outNumCols, len(output))

	ownership, err := validateIndices(indices, outNumCols)
	if err != nil {
		return err
	}
	runs, maxRun := planPaddingRuns(ownership)
	padBuf := newPadBuffer(maxRun, padElem)

	if currentBackend == BackendParallel && rows*outNumCols >= MinParallelScatterElems {
		sharedPool().ParallelFor(rows, func(start, end int) {
			scatterRows(params, paramsCols, start, end, ownership, runs, padBuf, outNumCols, output)
		})
		return nil
	}

	scatterRows(params, paramsCols, 0, rows, ownership, runs, padBuf, outNumCols, output)
	return nil
}

// checkShapes enforces the caller-contract dimensions shared by both entry
// points. Shape bugs are programmer error and panic; index-content problems
// are returned as typed errors by validation.
func checkShapes(paramsLen, rows, paramsCols, indicesLen, outNumCols, outputLen int) {
	if paramsLen < rows*paramsCols {
		panic("params slice too small")
	}
	if indicesLen != paramsCols {
		panic("indices length must equal paramsCols")
	}
	if outNumCols < paramsCols {
		panic("outNumCols must be at least paramsCols")
	}
	if outputLen < rows*outNumCols {
		panic("output slice too small")
	}
}
