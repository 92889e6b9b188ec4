package ops

import (
	"context"

	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/table"
)

// First returns the first row of a table, or Blank if the table is empty.
func First(ctx context.Context, ses *Session, tbl fx.Value) (fx.Value, error) {
	t, errv := asTable("first", tbl)
	if t == nil {
		return errv, nil
	}

	if res, ok, err := pushFirstN(ctx, ses, t, 1); err != nil {
		return nil, err
	} else if ok {
		t = res
	}

	rows, err := table.FirstRows(ctx, t, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return fx.Blank, nil
	}
	return rows[0], nil
}

// FirstN returns a table of the first n rows, unchanged and in order.
func FirstN(ctx context.Context, ses *Session, tbl fx.Value, n fx.Value) (fx.Value, error) {
	t, errv := asTable("firstn", tbl)
	if t == nil {
		return errv, nil
	}
	cnt, errv := toCount("firstn", n)
	if errv != nil {
		return errv, nil
	}

	if res, ok, err := pushFirstN(ctx, ses, t, cnt); err != nil {
		return nil, err
	} else if ok {
		return res, nil
	}

	rows, err := table.FirstRows(ctx, t, cnt)
	if err != nil {
		return nil, err
	}
	return table.NewValues(rows), nil
}

// LastN returns a table of the trailing n rows. It must fully realize the
// row sequence to find the end; there is no pushdown for it.
func LastN(ctx context.Context, ses *Session, tbl fx.Value, n fx.Value) (fx.Value, error) {
	t, errv := asTable("lastn", tbl)
	if t == nil {
		return errv, nil
	}
	cnt, errv := toCount("lastn", n)
	if errv != nil {
		return errv, nil
	}

	rows, err := table.AllRows(ctx, t)
	if err != nil {
		return nil, err
	}
	if cnt > len(rows) {
		cnt = len(rows)
	}
	return table.NewValues(rows[len(rows)-cnt:]), nil
}
