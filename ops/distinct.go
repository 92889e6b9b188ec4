package ops

import (
	"context"
	"strconv"
	"time"

	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/table"
)

// Distinct evaluates the key lambda for every row and returns a single
// column table named "Result" with one record per distinct key, in the order
// the keys were first observed. Rows that erred are collected and combined
// into one aggregate error.
func Distinct(ctx context.Context, ses *Session, tbl fx.Value, key fx.Lambda) (fx.Value,
	error) {

	t, errv := asTable("distinct", tbl)
	if t == nil {
		return errv, nil
	}

	rows, err := table.AllRows(ctx, t)
	if err != nil {
		return nil, err
	}

	keys, err := evalKeys(ctx, ses, key, rows, false)
	if err != nil {
		return nil, err
	}

	var evs []*fx.ErrorValue
	for _, k := range keys {
		if ev, ok := fx.AsError(k); ok {
			evs = append(evs, ev)
		}
	}
	if len(evs) > 0 {
		return fx.CombineErrors(evs), nil
	}
	if _, errv := classifyKeys("distinct", keys, false); errv != nil {
		return errv, nil
	}

	// Go maps do not preserve insertion order; the slice is the order of
	// first occurrence.
	seen := map[string]struct{}{}
	uniq := []fx.Value{}
	for _, k := range keys {
		ks := distinctKey(k)
		if _, ok := seen[ks]; ok {
			continue
		}
		seen[ks] = struct{}{}
		uniq = append(uniq, k)
	}
	return table.Single("Result", uniq), nil
}

func distinctKey(v fx.Value) string {
	switch v := v.(type) {
	case fx.BoolValue:
		if v {
			return "b:t"
		}
		return "b:f"
	case fx.NumberValue:
		return "n:" + strconv.FormatFloat(float64(v), 'g', -1, 64)
	case fx.StringValue:
		return "s:" + string(v)
	case fx.DateTimeValue:
		return "dt:" + strconv.FormatInt(time.Time(v).UnixNano(), 10)
	case fx.DateValue:
		return "d:" + strconv.FormatInt(time.Time(v).Unix(), 10)
	}
	return "blank"
}
