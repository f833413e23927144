package arrowtable

import (
	"io"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/arrow-tableview/tableview"
)

func buildRecord(t *testing.T, schema *arrow.Schema, ids []int64, names []string) arrow.Record {
	t.Helper()
	b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer b.Release()
	b.Field(0).(*array.Int64Builder).AppendValues(ids, nil)
	b.Field(1).(*array.StringBuilder).AppendValues(names, nil)
	return b.NewRecord()
}

func recordSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String},
	}, nil)
}

func TestRecordSource(t *testing.T) {
	schema := recordSchema()
	r1 := buildRecord(t, schema, []int64{1, 2}, []string{"a", "b"})
	r2 := buildRecord(t, schema, []int64{3}, []string{"c"})
	defer r1.Release()
	defer r2.Release()

	src := FromRecords(schema, r1, r2)
	defer src.Close()

	got, err := src.Schema()
	require.NoError(t, err)
	assert.True(t, got.Equal(schema))

	var rows int64
	for {
		rec, err := src.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		rows += rec.NumRows()
		rec.Release()
	}
	assert.Equal(t, int64(3), rows)

	// End of stream is sticky.
	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
	_, err = src.Next()
	assert.Equal(t, io.EOF, err)
}

func TestTableSource(t *testing.T) {
	schema := recordSchema()
	r1 := buildRecord(t, schema, []int64{1, 2, 3, 4}, []string{"a", "b", "c", "d"})
	defer r1.Release()

	tbl := array.NewTableFromRecords(schema, []arrow.Record{r1})
	defer tbl.Release()

	// A two-row chunk size splits the four rows into two batches.
	src := FromTable(tbl, 2)
	defer src.Close()

	view, err := tableview.NewTableView(src,
		tableview.WithTransformers(tableview.Identity(arrow.PrimitiveTypes.Int64)))
	require.NoError(t, err)

	rows, err := view.Rows()
	require.NoError(t, err)
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		row, err := rows.Row()
		require.NoError(t, err)
		id, err := tableview.GetAs[int64](row, 0)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)
}
