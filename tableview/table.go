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

// TableView binds a batch source, a transform schema and a row visibility
// filter. It is immutable and cheap to copy: deriving a view with
// WithTransformer leaves the original usable and unaffected.
//
// A TableView may be shared across goroutines, but each traversal consumes
// the one underlying source, so concurrent traversals need distinct sources.
type TableView struct {
	src     BatchSource
	tschema TransformSchema
	filter  Filter
}

// Option configures a TableView.
type Option func(*TableView)

// WithFilter sets the row visibility filter. The default is AllowAll.
func WithFilter(f Filter) Option {
	return func(t *TableView) {
		if f != nil {
			t.filter = f
		}
	}
}

// WithTransformers sets the initial transform schema.
func WithTransformers(transformers ...Transformer) Option {
	return func(t *TableView) {
		t.tschema = NewTransformSchema(transformers...)
	}
}

// NewTableView creates a view over src.
// Returns ErrNoBatchSource if src is nil.
func NewTableView(src BatchSource, opts ...Option) (*TableView, error) {
	if src == nil {
		return nil, ErrNoBatchSource
	}
	t := &TableView{src: src, filter: AllowAll()}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Schema returns the view's transform schema.
func (t *TableView) Schema() TransformSchema { return t.tschema }

// Filter returns the view's row visibility filter.
func (t *TableView) Filter() Filter { return t.filter }

// WithTransformer returns a new view over the same source and filter whose
// transform schema has tr appended. The receiver is unchanged.
func (t *TableView) WithTransformer(tr Transformer) *TableView {
	return &TableView{
		src:     t.src,
		tschema: t.tschema.Append(tr),
		filter:  t.filter,
	}
}

// Rows starts a traversal and returns its row sequence. The first batch is
// pulled eagerly, so source failures surface here rather than on the first
// advance. Because the source is a consuming stream, a second call after a
// completed traversal yields an immediately exhausted sequence.
func (t *TableView) Rows() (*RowSequence, error) {
	return newRowSequence(t.src, t.tschema, t.filter)
}
