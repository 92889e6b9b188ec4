package ops

import (
	"context"
	"sort"
	"strings"

	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/table"
)

// Sort orders rows by the key lambda's value using the key kind's natural
// ordering; direction is compared case insensitively against "descending"
// and anything else means ascending. The sort is stable. Blank keys always
// order after every non-blank key; the direction flag does not move them.
func Sort(ctx context.Context, ses *Session, tbl fx.Value, key fx.Lambda,
	direction fx.Value) (fx.Value, error) {

	t, errv := asTable("sort", tbl)
	if t == nil {
		return errv, nil
	}

	descending := false
	if s, ok := direction.(fx.StringValue); ok &&
		strings.EqualFold(string(s), "descending") {

		descending = true
	}

	if res, ok, err := pushSort(ctx, ses, t, key, descending); err != nil {
		return nil, err
	} else if ok {
		return res, nil
	}

	rows, err := table.AllRows(ctx, t)
	if err != nil {
		return nil, err
	}

	keys, err := evalKeys(ctx, ses, key, rows, true)
	if err != nil {
		return nil, err
	}

	for _, k := range keys {
		if ev, ok := fx.AsError(k); ok {
			return ev, nil
		}
	}
	if _, errv := classifyKeys("sort", keys, true); errv != nil {
		return errv, nil
	}

	dir := 1
	if descending {
		dir = -1
	}
	sr := &sortRows{rows: append([]fx.Value(nil), rows...), keys: keys, dir: dir}
	sort.Stable(sr)
	return table.NewValues(sr.rows), nil
}

// evalKeys evaluates the key lambda for every row concurrently; blank and
// error rows pass their own marker through as the key without invoking the
// lambda.
func evalKeys(ctx context.Context, ses *Session, key fx.Lambda, rows []fx.Value,
	rowScoped bool) ([]fx.Value, error) {

	keys := make([]fx.Value, len(rows))
	err := forEachRow(ctx, ses, rows,
		func(ctx context.Context, rdx int, row fx.Value) error {
			rec, ok := row.(*fx.Record)
			if !ok {
				keys[rdx] = row
				return nil
			}
			var v fx.Value
			var err error
			if rowScoped {
				v, err = key.EvalRowScope(ctx, rec)
			} else {
				v, err = key.Eval(ctx, rec)
			}
			if err != nil {
				return err
			}
			keys[rdx] = v
			return nil
		})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// classifyKeys checks that the non-blank, non-error keys are uniformly one
// sortable kind and returns that kind.
func classifyKeys(op string, keys []fx.Value, options bool) (fx.Kind, fx.Value) {
	kind := fx.UnknownKind
	for _, k := range keys {
		if fx.IsBlank(k) {
			continue
		}
		if _, ok := fx.AsError(k); ok {
			continue
		}
		kk := fx.KindOf(k)
		if !kk.Sortable() || (kk == fx.OptionKind && !options) {
			return fx.UnknownKind, fx.NewError(fx.TypeMismatchError,
				"%s: cannot order %s values", op, kk)
		}
		if kind == fx.UnknownKind {
			kind = kk
		} else if kind != kk {
			return fx.UnknownKind, fx.NewError(fx.TypeMismatchError,
				"%s: mixed key kinds: %s and %s", op, kind, kk)
		}
	}
	return kind, nil
}

type sortRows struct {
	rows []fx.Value
	keys []fx.Value
	dir  int
}

func (sr *sortRows) Len() int {
	return len(sr.rows)
}

func (sr *sortRows) Swap(i, j int) {
	sr.rows[i], sr.rows[j] = sr.rows[j], sr.rows[i]
	sr.keys[i], sr.keys[j] = sr.keys[j], sr.keys[i]
}

func (sr *sortRows) Less(i, j int) bool {
	ki := sr.keys[i]
	kj := sr.keys[j]
	bi := fx.IsBlank(ki)
	bj := fx.IsBlank(kj)
	if bi || bj {
		// Blank keys are last in both directions.
		return !bi && bj
	}
	cmp, _ := fx.Compare(ki, kj)
	return cmp*sr.dir < 0
}
