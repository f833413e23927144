package ipc

import (
	"bytes"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/arrow-tableview/tableview"
)

func TestSourceRoundTrip(t *testing.T) {
	md := arrow.MetadataFrom(map[string]string{"process": "true"})
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String},
	}, &md)

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf, ipc.WithSchema(schema))
	for _, batch := range [][]int64{{1, 2}, {3}} {
		b := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
		b.Field(0).(*array.Int64Builder).AppendValues(batch, nil)
		for _, id := range batch {
			b.Field(1).(*array.StringBuilder).Append(string(rune('a' + id)))
		}
		rec := b.NewRecord()
		require.NoError(t, w.Write(rec))
		rec.Release()
		b.Release()
	}
	require.NoError(t, w.Close())

	src, err := NewSource(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer src.Close()

	got, err := src.Schema()
	require.NoError(t, err)
	idx := got.Metadata().FindKey("process")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "true", got.Metadata().Values()[idx])

	view, err := tableview.NewTableView(src,
		tableview.WithTransformers(tableview.Identity(arrow.PrimitiveTypes.Int64)),
		tableview.WithFilter(tableview.MetadataEquals("process", "true")))
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

		extras, err := row.Extras()
		require.NoError(t, err)
		require.Len(t, extras, 1)
		assert.Equal(t, tableview.TypeString, extras[0].Type)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int64{1, 2, 3}, ids)
}
