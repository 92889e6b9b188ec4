package ops

import (
	"context"

	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/table"
)

// Filter returns the rows of tbl for which the predicate is true, preserving
// the source row order. Rows that are already errors, and rows whose
// predicate evaluation produced an error, are retained as error rows so the
// error surfaces downstream; rows evaluating false are discarded. Row
// evaluations run concurrently.
func Filter(ctx context.Context, ses *Session, tbl fx.Value, preds ...fx.Lambda) (fx.Value,
	error) {

	if len(preds) != 1 {
		return fx.NewError(fx.ValidationError,
			"filter: exactly one predicate is required; got %d", len(preds)), nil
	}
	pred := preds[0]

	t, errv := asTable("filter", tbl)
	if t == nil {
		return errv, nil
	}

	if res, ok, err := pushFilter(ctx, ses, t, pred); err != nil {
		return nil, err
	} else if ok {
		return res, nil
	}

	rows, err := table.AllRows(ctx, t)
	if err != nil {
		return nil, err
	}

	outs := make([]fx.Value, len(rows))
	fails := make([]*fx.ErrorValue, len(rows))
	err = forEachRow(ctx, ses, rows,
		func(ctx context.Context, rdx int, row fx.Value) error {
			if ev, ok := fx.AsError(row); ok {
				outs[rdx] = ev
				return nil
			}
			v, err := pred.EvalRowScope(ctx, rowScope(row))
			if err != nil {
				return err
			}
			switch v := v.(type) {
			case fx.BoolValue:
				outs[rdx] = v
			case *fx.ErrorValue:
				outs[rdx] = v
			default:
				fails[rdx] = fx.NewError(fx.TypeMismatchError,
					"filter: expected a boolean predicate result; got %v", fx.Format(v))
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	for _, fail := range fails {
		if fail != nil {
			return fail, nil
		}
	}

	kept := []fx.Value{}
	for rdx, row := range rows {
		switch out := outs[rdx].(type) {
		case fx.BoolValue:
			if out {
				kept = append(kept, row)
			}
		case *fx.ErrorValue:
			kept = append(kept, out)
		}
	}
	return table.NewValues(kept), nil
}
