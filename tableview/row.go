// Copyright 2025 Magnus Pierre
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

package tableview

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Row is a transient, read-only projection of one row of the current batch.
// It indexes into the batch's columns and never copies column data, so it is
// valid only until the owning RowSequence advances or is closed. Callers
// must not retain a Row across an advance.
type Row struct {
	batch  arrow.Record
	index  int
	schema TransformSchema
}

// Index returns the row's index within its batch.
func (r Row) Index() int { return r.index }

// Get returns the user value of the column at col, produced by the
// transformer declared for that position.
//
// Returns ErrInvalidColumn if col is not covered by the transform schema,
// ErrInvalidRow if the row reference is out of bounds, and ErrTypeMismatch
// if the transformer's declared storage type disagrees with the column's
// actual type.
func (r Row) Get(col int) (interface{}, error) {
	if r.batch == nil {
		return nil, ErrExhausted
	}
	t, err := r.schema.At(col)
	if err != nil {
		return nil, err
	}
	if col >= int(r.batch.NumCols()) {
		return nil, fmt.Errorf("%w: column %d of %d", ErrInvalidColumn, col, r.batch.NumCols())
	}
	if r.index < 0 || r.index >= int(r.batch.NumRows()) {
		return nil, fmt.Errorf("%w: row %d of %d", ErrInvalidRow, r.index, r.batch.NumRows())
	}

	column := r.batch.Column(col)
	if !arrow.TypeEqual(t.DataType(), column.DataType()) {
		return nil, fmt.Errorf("%w: column %d is %s, transformer declares %s",
			ErrTypeMismatch, col, column.DataType(), t.DataType())
	}
	return t.Forward(nativeValue(column, r.index))
}

// GetAs resolves the column at col through the row's transformer and asserts
// the user type at the call site. A null cell yields T's zero value with a
// true null flag.
func GetAs[T any](r Row, col int) (T, error) {
	var zero T
	v, err := r.Get(col)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: column %d yields %T, caller wants %T", ErrTypeMismatch, col, v, zero)
	}
	return out, nil
}

// Extras returns, in column order, the values of every column beyond the
// transform schema's length as opaque Values. It returns an empty slice when
// the schema covers all columns. Values are freshly read on each call.
func (r Row) Extras() ([]Value, error) {
	if r.batch == nil {
		return nil, ErrExhausted
	}
	if r.index < 0 || r.index >= int(r.batch.NumRows()) {
		return nil, fmt.Errorf("%w: row %d of %d", ErrInvalidRow, r.index, r.batch.NumRows())
	}

	ncols := int(r.batch.NumCols())
	start := r.schema.Len()
	if start >= ncols {
		return []Value{}, nil
	}
	extras := make([]Value, 0, ncols-start)
	for col := start; col < ncols; col++ {
		extras = append(extras, cellValue(r.batch.Column(col), r.index))
	}
	return extras, nil
}
