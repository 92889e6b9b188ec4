package ops

import (
	"context"

	"github.com/folio-lang/folio/fx"
)

// Index returns the row at the 1 based position n via the table's positional
// access; it performs no row iteration of its own.
func Index(ctx context.Context, ses *Session, tbl fx.Value, n fx.Value) (fx.Value, error) {
	t, errv := asTable("index", tbl)
	if t == nil {
		return errv, nil
	}
	if ev, ok := fx.AsError(n); ok {
		return ev, nil
	}
	num, ok := n.(fx.NumberValue)
	if !ok {
		return fx.NewError(fx.TypeMismatchError, "index: expected a number; got %v",
			fx.Format(n)), nil
	}
	return t.At(ctx, int(num)-1)
}
