package tableview

import "errors"

// Common errors returned by the tableview package.
var (
	// ErrInvalidColumn is returned when a column index is out of range.
	ErrInvalidColumn = errors.New("invalid column index")

	// ErrInvalidRow is returned when a row index is out of range.
	ErrInvalidRow = errors.New("invalid row index")

	// ErrTypeMismatch is returned when a transformer's declared storage
	// type disagrees with the actual column type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidFilter is returned when a filter is misconfigured.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrNoBatchSource is returned when a required batch source is nil.
	ErrNoBatchSource = errors.New("batch source is nil")

	// ErrExhausted is returned when a row sequence has no current row.
	ErrExhausted = errors.New("row sequence exhausted")
)
