package tableview

import (
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
)

// LogicOp represents a logical operator for combining filters.
type LogicOp int

const (
	// LogicAND requires all filters to pass.
	LogicAND LogicOp = iota
	// LogicOR requires at least one filter to pass.
	LogicOR
)

// String returns the string representation of a LogicOp.
func (op LogicOp) String() string {
	switch op {
	case LogicAND:
		return "AND"
	case LogicOR:
		return "OR"
	default:
		return fmt.Sprintf("unknown(%d)", op)
	}
}

// CompositeFilter combines multiple filters with AND or OR logic.
type CompositeFilter struct {
	// Filters is the list of filters to combine.
	Filters []Filter

	// Logic specifies how to combine the filters (AND or OR).
	Logic LogicOp
}

// And combines filters so that a row is visible only when every filter
// accepts it.
func And(filters ...Filter) Filter {
	return &CompositeFilter{Filters: filters, Logic: LogicAND}
}

// Or combines filters so that a row is visible when at least one filter
// accepts it.
func Or(filters ...Filter) Filter {
	return &CompositeFilter{Filters: filters, Logic: LogicOR}
}

// Evaluate implements the Filter interface.
func (f *CompositeFilter) Evaluate(schema *arrow.Schema, batch arrow.Record, row int) (bool, error) {
	if len(f.Filters) == 0 {
		return true, nil // Empty filter passes all rows
	}

	switch f.Logic {
	case LogicAND:
		for _, filter := range f.Filters {
			passes, err := filter.Evaluate(schema, batch, row)
			if err != nil {
				return false, err
			}
			if !passes {
				return false, nil // Short-circuit on first failure
			}
		}
		return true, nil

	case LogicOR:
		for _, filter := range f.Filters {
			passes, err := filter.Evaluate(schema, batch, row)
			if err != nil {
				return false, err
			}
			if passes {
				return true, nil // Short-circuit on first success
			}
		}
		return false, nil

	default:
		return false, fmt.Errorf("%w: unknown logic operator %d", ErrInvalidFilter, f.Logic)
	}
}

// Description implements the Filter interface.
func (f *CompositeFilter) Description() string {
	if len(f.Filters) == 0 {
		return "empty filter"
	}

	descriptions := make([]string, len(f.Filters))
	for i, filter := range f.Filters {
		descriptions[i] = filter.Description()
	}

	return "(" + strings.Join(descriptions, " "+f.Logic.String()+" ") + ")"
}
