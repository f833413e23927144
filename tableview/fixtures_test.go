package tableview

import (
	"io"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// testSchema builds the four-column fixture schema: id (int64), name (utf8),
// score (float64), active (bool), optionally carrying metadata.
func testSchema(md map[string]string) *arrow.Schema {
	fields := []arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String},
		{Name: "score", Type: arrow.PrimitiveTypes.Float64},
		{Name: "active", Type: arrow.FixedWidthTypes.Boolean},
	}
	var meta *arrow.Metadata
	if md != nil {
		m := arrow.MetadataFrom(md)
		meta = &m
	}
	return arrow.NewSchema(fields, meta)
}

// makeBatch builds one record over schema. All column slices must share a
// length; a zero length yields an empty batch.
func makeBatch(t *testing.T, schema *arrow.Schema, ids []int64, names []string, scores []float64, actives []bool) arrow.Record {
	t.Helper()
	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()
	b.Field(0).(*array.Int64Builder).AppendValues(ids, nil)
	b.Field(1).(*array.StringBuilder).AppendValues(names, nil)
	b.Field(2).(*array.Float64Builder).AppendValues(scores, nil)
	b.Field(3).(*array.BooleanBuilder).AppendValues(actives, nil)
	return b.NewRecord()
}

// sliceSource serves a fixed list of records, io.EOF afterwards.
type sliceSource struct {
	schema *arrow.Schema
	recs   []arrow.Record
	pos    int
}

func newSliceSource(schema *arrow.Schema, recs ...arrow.Record) *sliceSource {
	return &sliceSource{schema: schema, recs: recs}
}

func (s *sliceSource) Schema() (*arrow.Schema, error) { return s.schema, nil }

func (s *sliceSource) Next() (arrow.Record, error) {
	if s.pos >= len(s.recs) {
		return nil, io.EOF
	}
	rec := s.recs[s.pos]
	s.pos++
	rec.Retain()
	return rec, nil
}

func (s *sliceSource) Close() error { return nil }

// failingSource fails with err after serving the leading records.
type failingSource struct {
	sliceSource
	err error
}

func (s *failingSource) Next() (arrow.Record, error) {
	if s.pos >= len(s.recs) {
		return nil, s.err
	}
	return s.sliceSource.Next()
}

// schemaErrSource fails on the schema call itself.
type schemaErrSource struct {
	sliceSource
	err error
}

func (s *schemaErrSource) Schema() (*arrow.Schema, error) { return nil, s.err }

// evenIDFilter is a row-content filter: it accepts rows whose id column
// holds an even value. Exercises the per-row extensibility of Filter.
type evenIDFilter struct{}

func (evenIDFilter) Evaluate(_ *arrow.Schema, batch arrow.Record, row int) (bool, error) {
	ids := batch.Column(0).(*array.Int64)
	return ids.Value(row)%2 == 0, nil
}

func (evenIDFilter) Description() string { return "id is even" }

// failingFilter always errors.
type failingFilter struct{ err error }

func (f failingFilter) Evaluate(*arrow.Schema, arrow.Record, int) (bool, error) {
	return false, f.err
}

func (f failingFilter) Description() string { return "failing" }
