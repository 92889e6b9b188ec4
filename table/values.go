package table

import (
	"context"
	"fmt"
	"io"

	"github.com/folio-lang/folio/fx"
)

// Values is a materialized table: an already realized row sequence. It is
// the result of every operator that does not delegate.
type Values struct {
	rows []fx.Value
}

func NewValues(rows []fx.Value) *Values {
	return &Values{rows: rows}
}

// Single builds a one column table named col with one record per value, in
// the given order.
func Single(col string, vals []fx.Value) *Values {
	rows := make([]fx.Value, 0, len(vals))
	for _, val := range vals {
		rows = append(rows, fx.NewRecord(fx.Field{Name: col, Value: val}))
	}
	return NewValues(rows)
}

func (v *Values) String() string {
	return fmt.Sprintf("table(%d rows)", len(v.rows))
}

func (v *Values) Rows(ctx context.Context) (fx.Rows, error) {
	return &valuesRows{rows: v.rows}, nil
}

func (v *Values) Count(ctx context.Context) (int, error) {
	return len(v.rows), nil
}

func (v *Values) At(ctx context.Context, idx int) (fx.Value, error) {
	if idx < 0 || idx >= len(v.rows) {
		return fx.NewError(fx.NotFoundError, "table: row %d out of range; have %d rows",
			idx+1, len(v.rows)), nil
	}
	return v.rows[idx], nil
}

type valuesRows struct {
	rows  []fx.Value
	index int
}

func (vr *valuesRows) Next(ctx context.Context) (fx.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if vr.index == len(vr.rows) {
		return nil, io.EOF
	}
	row := vr.rows[vr.index]
	vr.index += 1
	return row, nil
}

func (vr *valuesRows) Close() error {
	vr.index = len(vr.rows)
	return nil
}
