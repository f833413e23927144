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

// Filter decides whether a row of a batch is visible to a traversal.
// Implementations must be pure: no mutation of the batch or schema, and the
// same verdict for repeated calls on the same row.
//
// The built-in filters only consult the schema metadata, so their verdict is
// constant across a batch, but the per-row signature allows filters that vary
// by row content.
type Filter interface {
	// Evaluate reports whether the row at index row of batch is visible.
	Evaluate(schema *arrow.Schema, batch arrow.Record, row int) (bool, error)

	// Description returns a human-readable description of the filter.
	Description() string
}

// allowAll accepts every row.
type allowAll struct{}

// AllowAll returns the default filter, which accepts every row.
func AllowAll() Filter { return allowAll{} }

func (allowAll) Evaluate(*arrow.Schema, arrow.Record, int) (bool, error) { return true, nil }

func (allowAll) Description() string { return "allow all" }

// metadataEquals accepts rows of batches whose schema metadata holds a key
// with an exact expected value.
type metadataEquals struct {
	key, value string
}

// MetadataEquals returns a filter that is true iff the schema metadata
// contains key with value exactly value. An absent key or a different value
// hides every row of the batch.
func MetadataEquals(key, value string) Filter {
	return metadataEquals{key: key, value: value}
}

func (f metadataEquals) Evaluate(schema *arrow.Schema, _ arrow.Record, _ int) (bool, error) {
	if schema == nil {
		return false, nil
	}
	md := schema.Metadata()
	idx := md.FindKey(f.key)
	if idx < 0 {
		return false, nil
	}
	return md.Values()[idx] == f.value, nil
}

func (f metadataEquals) Description() string {
	return fmt.Sprintf("metadata[%q] == %q", f.key, f.value)
}
