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
	"errors"
	"math/rand"
	"testing"
)

func TestScatterColumns(t *testing.T) {
	tests := []struct {
		name       string
		params     []float32
		rows       int
		paramsCols int
		indices    []int32
		outNumCols int
		padElem    float32
		want       []float32
	}{
		{
			name:       "scattered with padding",
			params:     []float32{11, 12, 13, 14},
			rows:       1,
			paramsCols: 4,
			indices:    []int32{7, 4, 2, 3},
			outNumCols: 10,
			padElem:    0,
			want:       []float32{0, 0, 13, 14, 12, 0, 0, 11, 0, 0},
		},
		{
			name:       "identity no padding",
			params:     []float32{1, 2, 3, 4, 5, 6},
			rows:       2,
			paramsCols: 3,
			indices:    []int32{0, 1, 2},
			outNumCols: 3,
			padElem:    -1,
			want:       []float32{1, 2, 3, 4, 5, 6},
		},
		{
			name:       "reverse no padding",
			params:     []float32{1, 2, 3, 4, 5, 6},
			rows:       2,
			paramsCols: 3,
			indices:    []int32{2, 1, 0},
			outNumCols: 3,
			padElem:    -1,
			want:       []float32{3, 2, 1, 6, 5, 4},
		},
		{
			name:       "multi row with padding",
			params:     []float32{1, 2, 3, 4},
			rows:       2,
			paramsCols: 2,
			indices:    []int32{3, 0},
			outNumCols: 5,
			padElem:    9,
			want:       []float32{2, 9, 9, 1, 9, 4, 9, 9, 3, 9},
		},
		{
			name:       "nonzero padding element",
			params:     []float32{5},
			rows:       1,
			paramsCols: 1,
			indices:    []int32{1},
			outNumCols: 4,
			padElem:    2.5,
			want:       []float32{2.5, 5, 2.5, 2.5},
		},
		{
			name:       "all padding",
			params:     []float32{},
			rows:       2,
			paramsCols: 0,
			indices:    []int32{},
			outNumCols: 3,
			padElem:    7,
			want:       []float32{7, 7, 7, 7, 7, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := make([]float32, tt.rows*tt.outNumCols)
			err := ScatterColumns(tt.params, tt.rows, tt.paramsCols, tt.indices, tt.outNumCols, tt.padElem, output)
			if err != nil {
				t.Fatalf("ScatterColumns returned error: %v", err)
			}
			for i := range tt.want {
				if output[i] != tt.want[i] {
					t.Errorf("output[%d] = %v, want %v", i, output[i], tt.want[i])
				}
			}
		})
	}
}

func TestScatterColumnsRoundTrip(t *testing.T) {
	// For every row r and source column i, output[r][indices[i]] must equal
	// params[r][i], and every destination column not present in indices must
	// hold the padding element.
	const (
		rows       = 7
		paramsCols = 16
		outNumCols = 41
		padElem    = float64(-3.5)
	)

	rng := rand.New(rand.NewSource(1))

	params := make([]float64, rows*paramsCols)
	for i := range params {
		params[i] = rng.Float64()
	}

	// Distinct destinations drawn from [0, outNumCols)
	perm := rng.Perm(outNumCols)
	indices := make([]int64, paramsCols)
	for i := range indices {
		indices[i] = int64(perm[i])
	}

	output := make([]float64, rows*outNumCols)
	if err := ScatterColumns(params, rows, paramsCols, indices, outNumCols, padElem, output); err != nil {
		t.Fatalf("ScatterColumns returned error: %v", err)
	}

	owned := make(map[int64]bool, paramsCols)
	for r := 0; r < rows; r++ {
		for i, dst := range indices {
			owned[dst] = true
			got := output[r*outNumCols+int(dst)]
			want := params[r*paramsCols+i]
			if got != want {
				t.Errorf("row %d: output[%d] = %v, want params[%d] = %v", r, dst, got, i, want)
			}
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < outNumCols; c++ {
			if owned[int64(c)] {
				continue
			}
			if got := output[r*outNumCols+c]; got != padElem {
				t.Errorf("row %d: output[%d] = %v, want padding %v", r, c, got, padElem)
			}
		}
	}
}

func TestScatterColumnsZeroRows(t *testing.T) {
	// Zero rows succeeds trivially, but the indices are still validated.
	output := []float32{}

	if err := ScatterColumns([]float32{}, 0, 2, []int32{0, 1}, 4, float32(0), output); err != nil {
		t.Fatalf("ScatterColumns with zero rows returned error: %v", err)
	}

	err := ScatterColumns([]float32{}, 0, 2, []int32{1, 1}, 4, float32(0), output)
	var dup *DuplicateIndexError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %v, want *DuplicateIndexError even with zero rows", err)
	}
}

func TestScatterColumnsErrors(t *testing.T) {
	params := []float32{1, 2}
	output := make([]float32, 4)

	t.Run("duplicate", func(t *testing.T) {
		err := ScatterColumns(params, 1, 2, []int32{2, 2}, 4, float32(0), output)
		var dup *DuplicateIndexError
		if !errors.As(err, &dup) {
			t.Fatalf("error = %v, want *DuplicateIndexError", err)
		}
		if dup.Total != 2 || dup.Unique != 1 {
			t.Errorf("DuplicateIndexError = {Total: %d, Unique: %d}, want {Total: 2, Unique: 1}", dup.Total, dup.Unique)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		err := ScatterColumns(params, 1, 2, []int32{0, 5}, 4, float32(0), output)
		var oor *IndexOutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("error = %v, want *IndexOutOfRangeError", err)
		}
		if oor.Pos != 1 || oor.Value != 5 {
			t.Errorf("IndexOutOfRangeError = {Pos: %d, Value: %d}, want {Pos: 1, Value: 5}", oor.Pos, oor.Value)
		}
	})

	t.Run("negative index", func(t *testing.T) {
		err := ScatterColumns(params, 1, 2, []int32{-1, 0}, 4, float32(0), output)
		var oor *IndexOutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("error = %v, want *IndexOutOfRangeError", err)
		}
		if oor.Pos != 0 || oor.Value != -1 {
			t.Errorf("IndexOutOfRangeError = {Pos: %d, Value: %d}, want {Pos: 0, Value: -1}", oor.Pos, oor.Value)
		}
	})
}

func TestScatterColumnsErrorLeavesOutputUntouched(t *testing.T) {
	// Validation happens before any write, so a failing call must not
	// modify the output.
	params := []float32{1, 2, 3}
	output := []float32{42, 42, 42, 42, 42}

	err := ScatterColumns(params, 1, 3, []int32{0, 1, 9}, 5, float32(0), output)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	for i, v := range output {
		if v != 42 {
			t.Errorf("output[%d] = %v, want untouched sentinel 42", i, v)
		}
	}
}

func TestScatterColumnsIntegerElements(t *testing.T) {
	params := []int32{11, 12, 13, 14}
	indices := []int64{7, 4, 2, 3}
	output := make([]int32, 10)

	if err := ScatterColumns(params, 1, 4, indices, 10, int32(0), output); err != nil {
		t.Fatalf("ScatterColumns returned error: %v", err)
	}

	want := []int32{0, 0, 13, 14, 12, 0, 0, 11, 0, 0}
	for i := range want {
		if output[i] != want[i] {
			t.Errorf("output[%d] = %d, want %d", i, output[i], want[i])
		}
	}
}

func TestScatterColumnsShapePanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{
			name: "params too small",
			fn: func() {
				_ = ScatterColumns([]float32{1}, 1, 2, []int32{0, 1}, 4, float32(0), make([]float32, 4))
			},
		},
		{
			name: "indices length mismatch",
			fn: func() {
				_ = ScatterColumns([]float32{1, 2}, 1, 2, []int32{0}, 4, float32(0), make([]float32, 4))
			},
		},
		{
			name: "outNumCols below paramsCols",
			fn: func() {
				_ = ScatterColumns([]float32{1, 2}, 1, 2, []int32{0, 1}, 1, float32(0), make([]float32, 4))
			},
		},
		{
			name: "output too small",
			fn: func() {
				_ = ScatterColumns([]float32{1, 2}, 1, 2, []int32{0, 1}, 4, float32(0), make([]float32, 3))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

// benchScatter builds a deterministic scatter case: paramsCols source
// columns spread evenly across outNumCols destinations.
func benchScatter(rows, paramsCols, outNumCols int) (params []float32, indices []int32, output []float32) {
	params = make([]float32, rows*paramsCols)
	for i := range params {
		params[i] = float32(i)
	}
	indices = make([]int32, paramsCols)
	stride := outNumCols / max(paramsCols, 1)
	for i := range indices {
		indices[i] = int32(i * stride)
	}
	output = make([]float32, rows*outNumCols)
	return params, indices, output
}

func BenchmarkScatterColumnsPaddingHeavy(b *testing.B) {
	params, indices, output := benchScatter(256, 32, 1024)
	b.SetBytes(int64(len(output) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ScatterColumns(params, 256, 32, indices, 1024, float32(0), output); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScatterColumnsNoPadding(b *testing.B) {
	params, indices, output := benchScatter(256, 512, 512)
	b.SetBytes(int64(len(output) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ScatterColumns(params, 256, 512, indices, 512, float32(0), output); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScatterColumnsWideRows(b *testing.B) {
	params, indices, output := benchScatter(16, 1024, 65536)
	b.SetBytes(int64(len(output) * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ScatterColumns(params, 16, 1024, indices, 65536, float32(0), output); err != nil {
			b.Fatal(err)
		}
	}
}
