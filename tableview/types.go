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

// Package tableview provides a typed, filterable row view over a stream of
// Apache Arrow record batches.
package tableview

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// DataType represents the kind of data held by a column value.
type DataType int

const (
	// TypeString represents string data.
	TypeString DataType = iota
	// TypeInt represents integer data (any size).
	TypeInt
	// TypeFloat represents floating-point data (any precision).
	TypeFloat
	// TypeBool represents boolean data.
	TypeBool
	// TypeDate represents date data (without time).
	TypeDate
	// TypeTimestamp represents timestamp data (date + time).
	TypeTimestamp
	// TypeBinary represents binary/blob data.
	TypeBinary
	// TypeDecimal represents decimal/numeric data (fixed precision).
	TypeDecimal
	// TypeStruct represents structured data (nested fields).
	TypeStruct
	// TypeList represents list/array data.
	TypeList
	// TypeNull represents the null storage type.
	TypeNull
)

// String returns the string representation of a DataType.
func (dt DataType) String() string {
	switch dt {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	case TypeDate:
		return "Date"
	case TypeTimestamp:
		return "Timestamp"
	case TypeBinary:
		return "Binary"
	case TypeDecimal:
		return "Decimal"
	case TypeStruct:
		return "Struct"
	case TypeList:
		return "List"
	case TypeNull:
		return "Null"
	default:
		return fmt.Sprintf("Unknown(%d)", dt)
	}
}

// Value is a typed container for a single cell read from a column the
// transform schema does not cover. It holds the raw storage value, type
// information, and a pre-formatted string for display.
type Value struct {
	// Raw holds the underlying storage value.
	// The Go type depends on the DataType field.
	Raw interface{}

	// Type indicates the data type of this value.
	Type DataType

	// IsNull indicates whether this value is null/nil.
	IsNull bool

	// Formatted is a pre-formatted string representation for display.
	Formatted string
}

// NewValue creates a new Value from a raw value and type.
func NewValue(raw interface{}, dataType DataType) Value {
	if raw == nil {
		return NewNullValue(dataType)
	}

	return Value{
		Raw:       raw,
		Type:      dataType,
		IsNull:    false,
		Formatted: formatValue(raw),
	}
}

// NewNullValue creates a null value of the specified type.
func NewNullValue(dataType DataType) Value {
	return Value{
		Raw:       nil,
		Type:      dataType,
		IsNull:    true,
		Formatted: "",
	}
}

// formatValue converts a raw value to a formatted string.
func formatValue(raw interface{}) string {
	if raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", raw)
}

// kindOf maps an Arrow storage type to the DataType tag used by the
// catch-all bucket.
func kindOf(dt arrow.DataType) DataType {
	switch dt.ID() {
	case arrow.STRING, arrow.LARGE_STRING:
		return TypeString
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return TypeInt
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return TypeFloat
	case arrow.BOOL:
		return TypeBool
	case arrow.DATE32, arrow.DATE64:
		return TypeDate
	case arrow.TIMESTAMP:
		return TypeTimestamp
	case arrow.BINARY, arrow.LARGE_BINARY:
		return TypeBinary
	case arrow.DECIMAL128, arrow.DECIMAL256:
		return TypeDecimal
	case arrow.STRUCT:
		return TypeStruct
	case arrow.LIST, arrow.LARGE_LIST:
		return TypeList
	default:
		return TypeNull
	}
}
