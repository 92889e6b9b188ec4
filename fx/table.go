package fx

import (
	"context"
)

// Rows is an ordered sequence of row values; Next returns io.EOF after the
// last row. Each row is a *Record, Blank, or *ErrorValue and consumers must
// handle all three.
type Rows interface {
	Next(ctx context.Context) (Value, error)
	Close() error
}

type Table interface {
	Value
	Rows(ctx context.Context) (Rows, error)
	Count(ctx context.Context) (int, error)
	At(ctx context.Context, idx int) (Value, error)
}

// Queryable is the optional capability of a table to accept pushed down
// operations. Each method may decline by returning ok false, in which case
// the caller evaluates locally; declining is expected and is not an error.
type Queryable interface {
	Table

	PushFirstN(ctx context.Context, n int) (Table, bool, error)
	PushFilter(ctx context.Context, pred Lambda) (Table, bool, error)
	PushSort(ctx context.Context, key Lambda, descending bool) (Table, bool, error)
}
