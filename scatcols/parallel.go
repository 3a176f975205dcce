// Copyright 2025 The go-scatcols Authors. SPDX-License-Identifier: Apache-2.0

package scatcols

import (
	"sync"

	"github.com/ajroetker/go-scatcols/scatcols/workerpool"
)

// Parallel tuning parameters for the row-parallel backend.
const (
	// MinParallelScatterElems is the minimum output element count
	// (rows * outNumCols) before the parallel backend splits the row range
	// across workers. Below this, pool dispatch overhead exceeds the copy
	// work and the serial engine wins.
	MinParallelScatterElems = 16384
)

// defaultPool is the pool ScatterColumns uses when the parallel backend is
// selected. Created on first use and kept for the life of the process.
var (
	defaultPoolOnce sync.Once
	defaultPool     *workerpool.Pool
)

func sharedPool() *workerpool.Pool {
	defaultPoolOnce.Do(func() {
		defaultPool = workerpool.New(0)
	})
	return defaultPool
}

// ParallelScatterColumns is the row-parallel variant of ScatterColumns for
// callers managing their own pool. Validation and planning run once, before
// any worker starts; the derived tables and padding buffer are read-only
// thereafter and shared by all workers, and each worker writes a disjoint
// row range of output.
//
// Falls back to the serial engine when pool is nil or the output is smaller
// than MinParallelScatterElems. Results are identical to ScatterColumns in
// all cases.
func ParallelScatterColumns[T Element, I Index](pool *workerpool.Pool,
	params []T, rows, paramsCols int, indices []I, outNumCols int,
	padElem T, output []T) error {

	checkShapes(len(params), rows, paramsCols, len(indices), outNumCols, len(output))

	ownership, err := validateIndices(indices, outNumCols)
	if err != nil {
		return err
	}
	runs, maxRun := planPaddingRuns(ownership)
	padBuf := newPadBuffer(maxRun, padElem)

	if pool == nil || rows*outNumCols < MinParallelScatterElems {
		scatterRows(params, paramsCols, 0, rows, ownership, runs, padBuf, outNumCols, output)
		return nil
	}

	pool.ParallelFor(rows, func(start, end int) {
		scatterRows(params, paramsCols, start, end, ownership, runs, padBuf, outNumCols, output)
	})
	return nil
}
