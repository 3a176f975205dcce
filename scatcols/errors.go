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

import "fmt"

// DuplicateIndexError reports an index list whose values are not all
// distinct. Duplicate destinations are rejected, not merged; there are no
// accumulation semantics.
type DuplicateIndexError struct {
	// Total is the number of indices supplied.
	Total int

	// Unique is the number of distinct values among them.
	Unique int
}

func (e *DuplicateIndexError) Error() string {
	return fmt.Sprintf("scatcols: indices cannot contain duplicates: total indices %d != unique indices %d",
		e.Total, e.Unique)
}

// IndexOutOfRangeError reports the first index value outside the valid
// destination range [0, OutNumCols).
type IndexOutOfRangeError struct {
	// Pos is the position of the offending value in the index list.
	Pos int

	// Value is the offending index value.
	Value int64

	// OutNumCols is the exclusive upper bound the value was checked against.
	OutNumCols int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("scatcols: indices[%d] = %d is not in range [0, %d)",
		e.Pos, e.Value, e.OutNumCols)
}
