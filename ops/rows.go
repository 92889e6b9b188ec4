package ops

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/folio-lang/folio/fx"
)

// asTable validates an operator's table argument. A nil table result means
// the second value is the operator's result: Blank for a blank argument, the
// argument's own error, or a type mismatch error.
func asTable(op string, v fx.Value) (fx.Table, fx.Value) {
	if fx.IsBlank(v) {
		return nil, fx.Blank
	}
	if ev, ok := fx.AsError(v); ok {
		return nil, ev
	}
	t, ok := v.(fx.Table)
	if !ok {
		return nil, fx.NewError(fx.TypeMismatchError, "%s: expected a table; got %v", op,
			fx.Format(v))
	}
	return t, nil
}

// rowScope binds a row as the scope for a row-scoped lambda: a value row
// binds its record, a blank row binds an empty record. Error rows are
// handled by each operator before this is called.
func rowScope(row fx.Value) fx.Value {
	if fx.IsBlank(row) {
		return fx.EmptyRecord()
	}
	return row
}

// forEachRow evaluates fn for every row as a batch of independent tasks;
// results must be written by index so the caller can reassemble them in the
// original row order. Cancellation is checked before each row is issued.
func forEachRow(ctx context.Context, ses *Session, rows []fx.Value,
	fn func(ctx context.Context, rdx int, row fx.Value) error) error {

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ses.workers())
	for rdx := range rows {
		if err := gctx.Err(); err != nil {
			break
		}
		rdx := rdx
		g.Go(func() error {
			return fn(gctx, rdx, rows[rdx])
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// toCount converts a numeric count argument with a truncating integer
// conversion; a blank argument counts as zero.
func toCount(op string, v fx.Value) (int, fx.Value) {
	if fx.IsBlank(v) {
		return 0, nil
	}
	if ev, ok := fx.AsError(v); ok {
		return 0, ev
	}
	n, ok := v.(fx.NumberValue)
	if !ok {
		return 0, fx.NewError(fx.TypeMismatchError, "%s: expected a number; got %v", op,
			fx.Format(v))
	}
	cnt := int(n)
	if cnt < 0 {
		cnt = 0
	}
	return cnt, nil
}
