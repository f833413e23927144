package tableview

import "github.com/apache/arrow-go/v18/arrow"

// BatchSource is the pull-based provider of record batches.
// A source is a consuming stream: batches that have been pulled cannot be
// replayed, and a source must not be used by more than one goroutine.
type BatchSource interface {
	// Schema returns the structural schema (column names, storage types)
	// and metadata map describing all batches this source will yield.
	// It is assumed stable for the lifetime of one traversal.
	Schema() (*arrow.Schema, error)

	// Next returns the next record batch. It may block on I/O.
	// Ownership of the returned record passes to the caller, who must
	// Release it. Next returns io.EOF once the stream is exhausted, and
	// keeps returning io.EOF on every subsequent call.
	Next() (arrow.Record, error)

	// Close releases any resources held by the source.
	Close() error
}
