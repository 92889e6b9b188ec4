package ops

import (
	"context"

	"github.com/folio-lang/folio/flags"
	"github.com/folio-lang/folio/fx"
)

// Each push helper makes exactly one delegation attempt: if the table has
// the queryable capability and the matching flag is set, the pushed down
// operation runs; a declined attempt falls back to local evaluation and is
// never an error.

func pushFirstN(ctx context.Context, ses *Session, tbl fx.Table, n int) (fx.Table, bool,
	error) {

	if !ses.flags().GetFlag(flags.PushdownFirstN) {
		return nil, false, nil
	}
	q, ok := tbl.(fx.Queryable)
	if !ok {
		return nil, false, nil
	}
	res, ok, err := q.PushFirstN(ctx, n)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		ses.logger().WithField("op", "firstn").Debug("pushdown declined; evaluating locally")
		return nil, false, nil
	}
	return res, true, nil
}

func pushFilter(ctx context.Context, ses *Session, tbl fx.Table, pred fx.Lambda) (fx.Table,
	bool, error) {

	if !ses.flags().GetFlag(flags.PushdownFilter) {
		return nil, false, nil
	}
	q, ok := tbl.(fx.Queryable)
	if !ok {
		return nil, false, nil
	}
	res, ok, err := q.PushFilter(ctx, pred)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		ses.logger().WithField("op", "filter").Debug("pushdown declined; evaluating locally")
		return nil, false, nil
	}
	return res, true, nil
}

func pushSort(ctx context.Context, ses *Session, tbl fx.Table, key fx.Lambda,
	descending bool) (fx.Table, bool, error) {

	if !ses.flags().GetFlag(flags.PushdownSort) {
		return nil, false, nil
	}
	q, ok := tbl.(fx.Queryable)
	if !ok {
		return nil, false, nil
	}
	res, ok, err := q.PushSort(ctx, key, descending)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		ses.logger().WithField("op", "sort").Debug("pushdown declined; evaluating locally")
		return nil, false, nil
	}
	return res, true, nil
}
