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
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// nativeValue reads the storage value of a column at the given position as
// an untyped Go value. Null cells read as nil. Nested kinds (struct, list)
// are not materialized and read as nil.
func nativeValue(col arrow.Array, pos int) interface{} {
	if col.IsNull(pos) {
		return nil
	}

	switch col.DataType().ID() {
	case arrow.STRING:
		s := col.(*array.String)
		return s.Value(pos)
	case arrow.LARGE_STRING:
		s := col.(*array.LargeString)
		return s.Value(pos)
	case arrow.BINARY:
		b := col.(*array.Binary)
		return b.Value(pos)
	case arrow.BOOL:
		bl := col.(*array.Boolean)
		return bl.Value(pos)
	case arrow.INT8:
		i8 := col.(*array.Int8)
		return i8.Value(pos)
	case arrow.INT16:
		i16 := col.(*array.Int16)
		return i16.Value(pos)
	case arrow.INT32:
		i32 := col.(*array.Int32)
		return i32.Value(pos)
	case arrow.INT64:
		i64 := col.(*array.Int64)
		return i64.Value(pos)
	case arrow.UINT8:
		u8 := col.(*array.Uint8)
		return u8.Value(pos)
	case arrow.UINT16:
		u16 := col.(*array.Uint16)
		return u16.Value(pos)
	case arrow.UINT32:
		u32 := col.(*array.Uint32)
		return u32.Value(pos)
	case arrow.UINT64:
		u64 := col.(*array.Uint64)
		return u64.Value(pos)
	case arrow.FLOAT16:
		f16 := col.(*array.Float16)
		return f16.Value(pos)
	case arrow.FLOAT32:
		f32 := col.(*array.Float32)
		return f32.Value(pos)
	case arrow.FLOAT64:
		f64 := col.(*array.Float64)
		return f64.Value(pos)
	case arrow.DATE32:
		d32 := col.(*array.Date32)
		return d32.Value(pos)
	case arrow.DATE64:
		d64 := col.(*array.Date64)
		return d64.Value(pos)
	case arrow.TIMESTAMP:
		ts := col.(*array.Timestamp)
		return ts.Value(pos)
	case arrow.DECIMAL128:
		d128 := col.(*array.Decimal128)
		return d128.Value(pos)
	default:
		return nil
	}
}

// cellValue reads the column cell at pos as an opaque Value for the
// catch-all bucket.
func cellValue(col arrow.Array, pos int) Value {
	kind := kindOf(col.DataType())
	if col.IsNull(pos) {
		return NewNullValue(kind)
	}
	return NewValue(nativeValue(col, pos), kind)
}
