package ops_test

import (
	"context"
	"testing"

	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/ops"
	"github.com/folio-lang/folio/testutil"
)

func TestIndex(t *testing.T) {
	ctx := context.Background()
	ses := newSession()
	tbl := amounts(num(10), num(20), num(30))

	// Positions are 1 based.
	cases := []struct {
		n    float64
		want fx.Value
	}{
		{1, row(fld("amount", num(10)))},
		{2, row(fld("amount", num(20)))},
		{3, row(fld("amount", num(30)))},
	}

	for _, c := range cases {
		res, err := ops.Index(ctx, ses, tbl, num(c.n))
		if err != nil {
			t.Fatalf("Index(%v) failed with %s", c.n, err)
		}
		if !testutil.DeepEqual(res, c.want) {
			t.Errorf("Index(%v) got %v want %v", c.n, res, c.want)
		}
	}

	for _, n := range []float64{0, -1, 4} {
		res, err := ops.Index(ctx, ses, tbl, num(n))
		if err != nil {
			t.Fatalf("Index(%v) failed with %s", n, err)
		}
		wantErrorKind(t, res, fx.NotFoundError)
	}

	res, err := ops.Index(ctx, ses, tbl, str("abc"))
	if err != nil {
		t.Fatalf("Index() failed with %s", err)
	}
	wantErrorKind(t, res, fx.TypeMismatchError)

	ev := fx.NewError(fx.EvaluationError, "argument failed")
	res, err = ops.Index(ctx, ses, tbl, ev)
	if err != nil {
		t.Fatalf("Index() failed with %s", err)
	}
	if res != fx.Value(ev) {
		t.Errorf("Index(error) got %v want %v", res, ev)
	}
}
