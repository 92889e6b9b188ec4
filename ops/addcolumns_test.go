package ops_test

import (
	"context"
	"testing"

	"github.com/folio-lang/folio/expr"
	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/ops"
	"github.com/folio-lang/folio/table"
	"github.com/folio-lang/folio/testutil"
)

func TestAddColumns(t *testing.T) {
	ctx := context.Background()
	ses := newSession()
	tbl := amounts(num(5), num(15))
	double := &expr.Binary{Op: expr.MultiplyOp, Left: expr.Ref("amount"),
		Right: expr.Number(2)}
	half := &expr.Binary{Op: expr.DivideOp, Left: expr.Ref("amount"), Right: expr.Number(2)}

	res, err := ops.AddColumns(ctx, ses, tbl,
		str("double"), double, str("half"), half)
	if err != nil {
		t.Fatalf("AddColumns() failed with %s", err)
	}
	want := []fx.Value{
		row(fld("amount", num(5)), fld("double", num(10)), fld("half", num(2.5))),
		row(fld("amount", num(15)), fld("double", num(30)), fld("half", num(7.5))),
	}
	rows, err := table.AllRows(ctx, res.(fx.Table))
	if err != nil {
		t.Fatalf("AllRows() failed with %s", err)
	}
	if !testutil.DeepEqual(rows, want) {
		t.Errorf("AddColumns() got %v want %v", rows, want)
	}

	// The source rows are unmodified.
	srcRows, err := table.AllRows(ctx, tbl)
	if err != nil {
		t.Fatalf("AllRows() failed with %s", err)
	}
	if srcRows[0].(*fx.Record).Len() != 1 {
		t.Errorf("source row got %v want a single column", srcRows[0])
	}
}

func TestAddColumnsPassthrough(t *testing.T) {
	ctx := context.Background()
	ses := newSession()
	ev := fx.NewError(fx.EvaluationError, "row failed")
	tbl := amounts(num(5), ev, nil)

	// Blank and error rows pass through with no lambda evaluation.
	res, err := ops.AddColumns(ctx, ses, tbl, str("double"),
		&expr.Binary{Op: expr.MultiplyOp, Left: expr.Ref("amount"), Right: expr.Number(2)})
	if err != nil {
		t.Fatalf("AddColumns() failed with %s", err)
	}
	rows, err := table.AllRows(ctx, res.(fx.Table))
	if err != nil {
		t.Fatalf("AllRows() failed with %s", err)
	}
	if len(rows) != 3 {
		t.Fatalf("AddColumns() got %d rows want 3", len(rows))
	}
	if rows[1] != fx.Value(ev) {
		t.Errorf("AddColumns() row 2 got %v want %v", rows[1], ev)
	}
	if !fx.IsBlank(rows[2]) {
		t.Errorf("AddColumns() row 3 got %v want Blank", rows[2])
	}
}

func TestAddColumnsErrorResult(t *testing.T) {
	ctx := context.Background()
	ses := newSession()
	div := &expr.Binary{Op: expr.DivideOp, Left: expr.Number(1), Right: expr.Ref("amount")}

	// A failed lambda stores its error as the field value.
	res, err := ops.AddColumns(ctx, ses, amounts(num(0)), str("inv"), div)
	if err != nil {
		t.Fatalf("AddColumns() failed with %s", err)
	}
	vals := columnValues(t, res, "inv")
	if len(vals) != 1 {
		t.Fatalf("AddColumns() got %d rows want 1", len(vals))
	}
	wantErrorKind(t, vals[0], fx.EvaluationError)
}

func TestAddColumnsArguments(t *testing.T) {
	ctx := context.Background()
	ses := newSession()

	res, err := ops.AddColumns(ctx, ses, amounts(num(1)), str("odd"))
	if err != nil {
		t.Fatalf("AddColumns() failed with %s", err)
	}
	wantErrorKind(t, res, fx.ValidationError)

	res, err = ops.AddColumns(ctx, ses, amounts(num(1)), num(1), expr.Ref("amount"))
	if err != nil {
		t.Fatalf("AddColumns() failed with %s", err)
	}
	wantErrorKind(t, res, fx.TypeMismatchError)
}
