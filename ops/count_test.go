package ops_test

import (
	"context"
	"testing"

	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/ops"
	"github.com/folio-lang/folio/table"
)

func TestCountRows(t *testing.T) {
	ctx := context.Background()
	ses := newSession()

	cases := []struct {
		tbl fx.Value
		cnt float64
	}{
		{fx.Blank, 0},
		{amounts(), 0},
		{amounts(num(1), num(2), num(3)), 3},
		{amounts(num(1), nil, num(3)), 3},
	}

	for _, c := range cases {
		res, err := ops.CountRows(ctx, ses, c.tbl)
		if err != nil {
			t.Fatalf("CountRows() failed with %s", err)
		}
		if res != num(c.cnt) {
			t.Errorf("CountRows(%v) got %v want %v", c.tbl, res, c.cnt)
		}
	}
}

func TestCountRowsError(t *testing.T) {
	ctx := context.Background()
	ses := newSession()
	ev := fx.NewError(fx.EvaluationError, "row failed")

	res, err := ops.CountRows(ctx, ses, amounts(num(1), ev, num(3)))
	if err != nil {
		t.Fatalf("CountRows() failed with %s", err)
	}
	if res != fx.Value(ev) {
		t.Errorf("CountRows() got %v want %v", res, ev)
	}
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	ses := newSession()

	cases := []struct {
		tbl fx.Value
		cnt float64
	}{
		{fx.Blank, 0},
		{amounts(), 0},
		{amounts(num(1), num(2), num(3)), 3},
		// Blank rows and blank fields are skipped.
		{amounts(num(1), nil, fx.Blank, num(3)), 2},
		// Only numbers count.
		{amounts(num(1), str("abc"), fx.BoolValue(true), num(3)), 2},
	}

	for _, c := range cases {
		res, err := ops.Count(ctx, ses, c.tbl)
		if err != nil {
			t.Fatalf("Count() failed with %s", err)
		}
		if res != num(c.cnt) {
			t.Errorf("Count(%v) got %v want %v", c.tbl, res, c.cnt)
		}
	}
}

func TestCountA(t *testing.T) {
	ctx := context.Background()
	ses := newSession()

	cases := []struct {
		tbl fx.Value
		cnt float64
	}{
		{fx.Blank, 0},
		{amounts(num(1), num(2), num(3)), 3},
		{amounts(num(1), nil, fx.Blank, num(3)), 2},
		// Any non-blank kind counts.
		{amounts(num(1), str("abc"), fx.BoolValue(true), fx.Blank), 3},
	}

	for _, c := range cases {
		res, err := ops.CountA(ctx, ses, c.tbl)
		if err != nil {
			t.Fatalf("CountA() failed with %s", err)
		}
		if res != num(c.cnt) {
			t.Errorf("CountA(%v) got %v want %v", c.tbl, res, c.cnt)
		}
	}
}

func TestCountColumnErrors(t *testing.T) {
	ctx := context.Background()
	ses := newSession()

	// More than one column is a validation error.
	wide := table.NewValues([]fx.Value{row(fld("a", num(1)), fld("b", num(2)))})
	res, err := ops.Count(ctx, ses, wide)
	if err != nil {
		t.Fatalf("Count() failed with %s", err)
	}
	wantErrorKind(t, res, fx.ValidationError)

	// An error field short circuits.
	ev := fx.NewError(fx.EvaluationError, "field failed")
	res, err = ops.Count(ctx, ses, amounts(num(1), ev, num(3)))
	if err != nil {
		t.Fatalf("Count() failed with %s", err)
	}
	if res != fx.Value(ev) {
		t.Errorf("Count() got %v want %v", res, ev)
	}
}

func TestCountIf(t *testing.T) {
	ctx := context.Background()
	ses := newSession()
	tbl := amounts(num(5), num(15), nil, num(10), num(20))

	res, err := ops.CountIf(ctx, ses, tbl, greaterThan("amount", 9))
	if err != nil {
		t.Fatalf("CountIf() failed with %s", err)
	}
	if res != num(3) {
		t.Errorf("CountIf() got %v want 3", res)
	}

	res, err = ops.CountIf(ctx, ses, fx.Blank, greaterThan("amount", 9))
	if err != nil {
		t.Fatalf("CountIf() failed with %s", err)
	}
	if res != num(0) {
		t.Errorf("CountIf(Blank) got %v want 0", res)
	}
}

func TestCountIfErrorScope(t *testing.T) {
	ctx := context.Background()
	ses := newSession()
	ev := fx.NewError(fx.EvaluationError, "row failed")

	// The error row binds its error as the scope; the lambda propagates it
	// and the count short circuits.
	res, err := ops.CountIf(ctx, ses, amounts(num(15), ev, num(20)),
		greaterThan("amount", 9))
	if err != nil {
		t.Fatalf("CountIf() failed with %s", err)
	}
	if res != fx.Value(ev) {
		t.Errorf("CountIf() got %v want %v", res, ev)
	}
}

func TestCountIfMissingColumn(t *testing.T) {
	ctx := context.Background()
	ses := newSession()

	res, err := ops.CountIf(ctx, ses, amounts(num(5)), greaterThan("missing", 9))
	if err != nil {
		t.Fatalf("CountIf() failed with %s", err)
	}
	if res != num(0) {
		t.Errorf("CountIf() got %v want 0", res)
	}
}
