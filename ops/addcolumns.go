package ops

import (
	"context"

	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/table"
)

// AddColumns copies each value row's fields and appends one new field per
// name/lambda pair, the lambdas evaluated in the original row's scope, in
// declaration order. Blank and error rows pass through unmodified and their
// lambdas are never invoked.
func AddColumns(ctx context.Context, ses *Session, tbl fx.Value,
	args ...interface{}) (fx.Value, error) {

	nls, ev := fx.ParseNamedLambdas(args)
	if ev != nil {
		return ev, nil
	}

	t, errv := asTable("addcolumns", tbl)
	if t == nil {
		return errv, nil
	}

	rows, err := table.AllRows(ctx, t)
	if err != nil {
		return nil, err
	}

	out := make([]fx.Value, 0, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, ok := row.(*fx.Record)
		if !ok {
			out = append(out, row)
			continue
		}

		fields := make([]fx.Field, rec.Len(), rec.Len()+len(nls))
		copy(fields, rec.Fields())
		for _, nl := range nls {
			v, err := nl.Lambda.EvalRowScope(ctx, rec)
			if err != nil {
				return nil, err
			}
			fields = append(fields, fx.Field{Name: nl.Name, Value: v})
		}
		out = append(out, fx.NewRecord(fields...))
	}
	return table.NewValues(out), nil
}
