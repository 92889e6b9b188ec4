package ops

import (
	"context"
	"io"

	"github.com/folio-lang/folio/fx"
)

// CountRows returns the number of rows of a table, 0 for a blank argument,
// or the first error found among the rows.
func CountRows(ctx context.Context, ses *Session, tbl fx.Value) (fx.Value, error) {
	if fx.IsBlank(tbl) {
		return fx.NumberValue(0), nil
	}
	t, errv := asTable("countrows", tbl)
	if t == nil {
		return errv, nil
	}

	rows, err := t.Rows(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cnt := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := rows.Next(ctx)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if ev, ok := fx.AsError(row); ok {
			return ev, nil
		}
		cnt += 1
	}
	return fx.NumberValue(cnt), nil
}

// Count counts the non-error numeric values of a single column table; CountA
// counts any non-blank, non-error value regardless of kind. Both skip blank
// rows entirely and return immediately on the first error found, whether it
// is the row or the row's field.
func Count(ctx context.Context, ses *Session, tbl fx.Value) (fx.Value, error) {
	return countColumn(ctx, "count", tbl, false)
}

func CountA(ctx context.Context, ses *Session, tbl fx.Value) (fx.Value, error) {
	return countColumn(ctx, "counta", tbl, true)
}

func countColumn(ctx context.Context, op string, tbl fx.Value, all bool) (fx.Value, error) {
	if fx.IsBlank(tbl) {
		return fx.NumberValue(0), nil
	}
	t, errv := asTable(op, tbl)
	if t == nil {
		return errv, nil
	}

	rows, err := t.Rows(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cnt := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := rows.Next(ctx)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if ev, ok := fx.AsError(row); ok {
			return ev, nil
		}
		if fx.IsBlank(row) {
			continue
		}
		rec, ok := row.(*fx.Record)
		if !ok {
			return fx.NewError(fx.TypeMismatchError, "%s: expected a record row; got %v", op,
				fx.Format(row)), nil
		}
		if rec.Len() != 1 {
			return fx.NewError(fx.ValidationError,
				"%s: expected a single column table; got %d columns", op, rec.Len()), nil
		}

		fld := rec.Fields()[0].Value
		if ev, ok := fx.AsError(fld); ok {
			return ev, nil
		}
		if fx.IsBlank(fld) {
			continue
		}
		if all {
			cnt += 1
		} else if _, ok := fld.(fx.NumberValue); ok {
			cnt += 1
		}
	}
	return fx.NumberValue(cnt), nil
}

// CountIf counts the rows whose predicate evaluates true; a row that is
// already an error binds the error itself as the predicate's scope. The
// first predicate evaluation yielding an error short circuits and becomes
// the result.
func CountIf(ctx context.Context, ses *Session, tbl fx.Value, pred fx.Lambda) (fx.Value,
	error) {

	if fx.IsBlank(tbl) {
		return fx.NumberValue(0), nil
	}
	t, errv := asTable("countif", tbl)
	if t == nil {
		return errv, nil
	}

	rows, err := t.Rows(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cnt := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := rows.Next(ctx)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}

		// Error rows are not skipped: the error is the scope.
		v, err := pred.EvalRowScope(ctx, rowScope(row))
		if err != nil {
			return nil, err
		}
		switch v := v.(type) {
		case fx.BoolValue:
			if v {
				cnt += 1
			}
		case *fx.ErrorValue:
			return v, nil
		default:
			return fx.NewError(fx.TypeMismatchError,
				"countif: expected a boolean predicate result; got %v", fx.Format(v)), nil
		}
	}
	return fx.NumberValue(cnt), nil
}
