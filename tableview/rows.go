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
	"io"

	"github.com/apache/arrow-go/v18/arrow"
)

// noRow marks an exhausted sequence. It is outside the valid row index
// domain, so it cannot collide with a real position.
const noRow = -1

// RowSequence walks a batch source batch-by-batch and row-by-row, applying
// the row visibility filter and producing Rows. At most one batch is
// buffered at a time, so memory use is bounded by a single batch regardless
// of stream length.
//
// The usual loop is:
//
//	rows, err := view.Rows()
//	if err != nil { ... }
//	defer rows.Close()
//	for rows.Next() {
//		row, _ := rows.Row()
//		...
//	}
//	if err := rows.Err(); err != nil { ... }
//
// A RowSequence is owned by a single goroutine and is not restartable: the
// underlying source is a consuming stream.
type RowSequence struct {
	src       BatchSource
	srcSchema *arrow.Schema
	tschema   TransformSchema
	filter    Filter

	batch   arrow.Record
	row     int
	pending bool
	err     error
}

// newRowSequence pulls the first batch and positions on the first visible
// row. A source with no batches, or no row the filter accepts, yields a
// sequence that starts exhausted.
func newRowSequence(src BatchSource, tschema TransformSchema, filter Filter) (*RowSequence, error) {
	schema, err := src.Schema()
	if err != nil {
		return nil, err
	}
	s := &RowSequence{
		src:       src,
		srcSchema: schema,
		tschema:   tschema,
		filter:    filter,
		row:       noRow,
	}
	if err := s.pull(); err != nil {
		return nil, err
	}
	if err := s.seek(0); err != nil {
		return nil, err
	}
	s.pending = s.row != noRow
	return s, nil
}

// pull fetches the next batch from the source. End of stream leaves the
// sequence with no batch and no error.
func (s *RowSequence) pull() error {
	rec, err := s.src.Next()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		s.exhaust()
		return err
	}
	s.batch = rec
	return nil
}

// seek scans forward from index from in the current batch for a row the
// filter accepts, pulling further batches as needed. Zero-row batches are
// crossed without emission. On success the cursor is positioned; when the
// source drains the cursor becomes noRow. Any error exhausts the sequence.
func (s *RowSequence) seek(from int) error {
	for s.batch != nil {
		for i := from; i < int(s.batch.NumRows()); i++ {
			ok, err := s.filter.Evaluate(s.srcSchema, s.batch, i)
			if err != nil {
				s.exhaust()
				return err
			}
			if ok {
				s.row = i
				return nil
			}
		}
		s.releaseBatch()
		if err := s.pull(); err != nil {
			return err
		}
		from = 0
	}
	s.row = noRow
	return nil
}

// Next advances to the next visible row and reports whether one exists.
// After Next returns false, Err distinguishes end of stream from failure.
func (s *RowSequence) Next() bool {
	if s.err != nil || s.row == noRow {
		return false
	}
	if s.pending {
		s.pending = false
		return true
	}
	if err := s.seek(s.row + 1); err != nil {
		s.err = err
		return false
	}
	return s.row != noRow
}

// Row returns the current row. Valid only after a Next call that returned
// true; otherwise ErrExhausted.
func (s *RowSequence) Row() (Row, error) {
	if s.err != nil || s.row == noRow || s.pending {
		return Row{}, ErrExhausted
	}
	return Row{batch: s.batch, index: s.row, schema: s.tschema}, nil
}

// Err returns the first source or filter error encountered by the
// traversal, if any.
func (s *RowSequence) Err() error { return s.err }

// Close releases the buffered batch. The sequence is exhausted afterwards.
// It does not close the batch source, which may feed further traversals.
func (s *RowSequence) Close() error {
	s.exhaust()
	return nil
}

func (s *RowSequence) exhaust() {
	s.releaseBatch()
	s.row = noRow
	s.pending = false
}

func (s *RowSequence) releaseBatch() {
	if s.batch != nil {
		s.batch.Release()
		s.batch = nil
	}
}
