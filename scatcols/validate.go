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

// validateIndices checks the index list for duplicates and range violations
// and builds the destination-ownership table: ownership[c] is the source
// column that lands at destination column c, or unowned.
//
// Duplicates are detected over the whole list before any range check, so an
// index list like [5, 5] reports the duplicate even when 5 is also out of
// range. Validation is deterministic: the same input always yields the same
// error kind and payload.
//
// Continuing the package example:
//
//	indices   = [7, 4, 2, 3], outNumCols = 10
//	ownership = [-1, -1, 2, 3, 1, -1, -1, 0, -1, -1]
func validateIndices[I Index](indices []I, outNumCols int) ([]int, error) {
	seen := make(map[I]struct{}, len(indices))
	for _, v := range indices {
		seen[v] = struct{}{}
	}
	if len(seen) != len(indices) {
		return nil, &DuplicateIndexError{Total: len(indices), Unique: len(seen)}
	}

	ownership := make([]int, outNumCols)
	for c := range ownership {
		ownership[c] = unowned
	}

	for i, v := range indices {
		// Single unsigned compare covers both bounds: negative values wrap
		// above any valid outNumCols.
		if uint64(v) >= uint64(outNumCols) {
			return nil, &IndexOutOfRangeError{Pos: i, Value: int64(v), OutNumCols: outNumCols}
		}
		ownership[v] = i
	}

	return ownership, nil
}
