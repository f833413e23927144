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

// Transformer converts between a column's native storage value and a
// user-facing value. Implementations must be total and side-effect free over
// the declared storage type's value domain.
type Transformer interface {
	// DataType returns the Arrow storage type this transformer expects.
	// Applying the transformer to a column of a different storage type is
	// a configuration error, reported as ErrTypeMismatch.
	DataType() arrow.DataType

	// Forward converts a native storage value to the user value.
	Forward(native interface{}) (interface{}, error)

	// Backward converts a user value back to the native storage value.
	Backward(user interface{}) (interface{}, error)
}

// funcTransformer adapts a pair of typed conversion functions to the
// Transformer interface. The dynamic type of every value crossing the
// interface boundary is checked, never coerced.
type funcTransformer[N, U any] struct {
	dt  arrow.DataType
	fwd func(N) (U, error)
	bwd func(U) (N, error)
}

// NewTransformer creates a Transformer from typed forward and backward
// conversion functions. N is the Go representation of the declared Arrow
// storage type dt; U is the user-facing type. backward may be nil for
// read-only traversals, in which case Backward fails.
func NewTransformer[N, U any](dt arrow.DataType, forward func(N) (U, error), backward func(U) (N, error)) Transformer {
	return &funcTransformer[N, U]{dt: dt, fwd: forward, bwd: backward}
}

func (t *funcTransformer[N, U]) DataType() arrow.DataType { return t.dt }

func (t *funcTransformer[N, U]) Forward(native interface{}) (interface{}, error) {
	if native == nil {
		// Null cells pass through untouched.
		return nil, nil
	}
	n, ok := native.(N)
	if !ok {
		return nil, fmt.Errorf("%w: forward expects %T, got %T", ErrTypeMismatch, *new(N), native)
	}
	return t.fwd(n)
}

func (t *funcTransformer[N, U]) Backward(user interface{}) (interface{}, error) {
	if t.bwd == nil {
		return nil, fmt.Errorf("transformer for %s has no backward conversion", t.dt)
	}
	if user == nil {
		return nil, nil
	}
	u, ok := user.(U)
	if !ok {
		return nil, fmt.Errorf("%w: backward expects %T, got %T", ErrTypeMismatch, *new(U), user)
	}
	return t.bwd(u)
}

// identity is the default transformer: native and user types coincide.
type identity struct {
	dt arrow.DataType
}

// Identity returns a transformer whose user type is the storage type itself.
func Identity(dt arrow.DataType) Transformer { return identity{dt: dt} }

func (t identity) DataType() arrow.DataType { return t.dt }

func (t identity) Forward(native interface{}) (interface{}, error) { return native, nil }

func (t identity) Backward(user interface{}) (interface{}, error) { return user, nil }

// TransformSchema is an ordered, immutable list of column transformers.
// Entry i applies to column i of every batch in a traversal; columns beyond
// the schema's length are unmapped and surface through Row.Extras.
//
// TransformSchema is a value type: Append returns a new schema and never
// mutates the receiver, so table views derived from one another share no
// mutable state.
type TransformSchema struct {
	transformers []Transformer
}

// NewTransformSchema creates a schema from the given transformers, in order.
func NewTransformSchema(transformers ...Transformer) TransformSchema {
	ts := make([]Transformer, len(transformers))
	copy(ts, transformers)
	return TransformSchema{transformers: ts}
}

// Len returns the number of transformers in the schema.
func (s TransformSchema) Len() int { return len(s.transformers) }

// At returns the transformer at the given position.
// Returns ErrInvalidColumn if i is out of range.
func (s TransformSchema) At(i int) (Transformer, error) {
	if i < 0 || i >= len(s.transformers) {
		return nil, fmt.Errorf("%w: transformer %d of %d", ErrInvalidColumn, i, len(s.transformers))
	}
	return s.transformers[i], nil
}

// Append returns a new schema with t added at the end. The receiver keeps
// its own backing array and is unaffected.
func (s TransformSchema) Append(t Transformer) TransformSchema {
	ts := make([]Transformer, len(s.transformers)+1)
	copy(ts, s.transformers)
	ts[len(s.transformers)] = t
	return TransformSchema{transformers: ts}
}
