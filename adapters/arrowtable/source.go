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

// Package arrowtable adapts in-memory Arrow data to the tableview batch
// source contract.
package arrowtable

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// DefaultChunkSize is the batch length used by FromTable when the caller
// passes a non-positive chunk size.
const DefaultChunkSize int64 = 1024

// TableSource streams an arrow.Table as fixed-size record batches.
type TableSource struct {
	reader *array.TableReader
	schema *arrow.Schema
}

// FromTable creates a source reading tbl in chunks of chunkSize rows.
// The source retains the table's data for the duration of the traversal.
func FromTable(tbl arrow.Table, chunkSize int64) *TableSource {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &TableSource{
		reader: array.NewTableReader(tbl, chunkSize),
		schema: tbl.Schema(),
	}
}

// Schema implements tableview.BatchSource.
func (s *TableSource) Schema() (*arrow.Schema, error) { return s.schema, nil }

// Next implements tableview.BatchSource.
func (s *TableSource) Next() (arrow.Record, error) {
	if s.reader == nil || !s.reader.Next() {
		return nil, io.EOF
	}
	rec := s.reader.Record()
	rec.Retain()
	return rec, nil
}

// Close implements tableview.BatchSource.
func (s *TableSource) Close() error {
	if s.reader != nil {
		s.reader.Release()
		s.reader = nil
	}
	return nil
}

// RecordSource streams an in-memory list of record batches. It is the
// natural source for fixtures and already-materialized data.
type RecordSource struct {
	schema *arrow.Schema
	recs   []arrow.Record
	pos    int
}

// FromRecords creates a source yielding recs in order. The source retains
// each record until it is handed to a caller or the source is closed.
func FromRecords(schema *arrow.Schema, recs ...arrow.Record) *RecordSource {
	owned := make([]arrow.Record, len(recs))
	for i, rec := range recs {
		rec.Retain()
		owned[i] = rec
	}
	return &RecordSource{schema: schema, recs: owned}
}

// Schema implements tableview.BatchSource.
func (s *RecordSource) Schema() (*arrow.Schema, error) { return s.schema, nil }

// Next implements tableview.BatchSource. Ownership of the returned record
// passes to the caller.
func (s *RecordSource) Next() (arrow.Record, error) {
	if s.pos >= len(s.recs) {
		return nil, io.EOF
	}
	rec := s.recs[s.pos]
	s.recs[s.pos] = nil
	s.pos++
	return rec, nil
}

// Close implements tableview.BatchSource, releasing any unconsumed records.
func (s *RecordSource) Close() error {
	for ; s.pos < len(s.recs); s.pos++ {
		if s.recs[s.pos] != nil {
			s.recs[s.pos].Release()
			s.recs[s.pos] = nil
		}
	}
	return nil
}
