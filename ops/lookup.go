package ops

import (
	"context"
	"io"

	"github.com/folio-lang/folio/fx"
)

// LookUp finds the first row, in source order, satisfying the predicate.
// With a nil projection it returns the matching row's record, or Blank when
// nothing matched; otherwise the projection lambda is evaluated in the
// matching row's scope and its value returned. Rows after the first match
// are never evaluated.
func LookUp(ctx context.Context, ses *Session, tbl fx.Value, pred fx.Lambda,
	proj fx.Lambda) (fx.Value, error) {

	t, errv := asTable("lookup", tbl)
	if t == nil {
		return errv, nil
	}

	rows, err := t.Rows(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := rows.Next(ctx)
		if err == io.EOF {
			return fx.Blank, nil
		} else if err != nil {
			return nil, err
		}
		if ev, ok := fx.AsError(row); ok {
			return ev, nil
		}

		scope := rowScope(row)
		v, err := pred.EvalRowScope(ctx, scope)
		if err != nil {
			return nil, err
		}
		switch v := v.(type) {
		case fx.BoolValue:
			if !v {
				continue
			}
		case *fx.ErrorValue:
			return v, nil
		default:
			return fx.NewError(fx.TypeMismatchError,
				"lookup: expected a boolean predicate result; got %v", fx.Format(v)), nil
		}

		if proj == nil {
			return row, nil
		}
		return proj.EvalRowScope(ctx, scope)
	}
}
