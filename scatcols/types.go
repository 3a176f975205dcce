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

// Package scatcols scatters the columns of a dense row-major matrix into a
// wider output matrix.
//
// Given params of shape [rows, paramsCols] and an index list mapping each
// source column to a destination column, ScatterColumns places every source
// column at its destination and fills every unaddressed destination column
// with a padding element:
//
//	params  = [[11, 12, 13, 14]]
//	indices = [7, 4, 2, 3]
//	output  = [[0, 0, 13, 14, 12, 0, 0, 11, 0, 0]]   (outNumCols=10, pad=0)
//
// Index lists must be duplicate-free and in range [0, outNumCols); violations
// are reported as typed errors before anything is written to the output.
// Consecutive padding columns are grouped and written with a single bulk copy
// per run, so padding-heavy outputs cost one memmove per run per row instead
// of one store per element.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-scatcols/scatcols"
//
//	output := make([]float32, rows*outNumCols)
//	err := scatcols.ScatterColumns(params, rows, paramsCols, indices, outNumCols, pad, output)
package scatcols

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Element is a constraint for all matrix element types.
type Element interface {
	Floats | Integers
}

// Index is a constraint for index-list element types.
type Index interface {
	~int32 | ~int64
}

// unowned marks a destination column not addressed by any index.
const unowned = -1
