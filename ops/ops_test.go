package ops_test

import (
	"context"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/ops"
	"github.com/folio-lang/folio/table"
	"github.com/folio-lang/folio/testutil"
)

var sesLogger *log.Logger

func newSession() *ops.Session {
	if sesLogger == nil {
		sesLogger = testutil.SetupLogger(filepath.Join("testdata", "ops_test.log"))
	}
	ses := ops.NewSession()
	ses.Logger = sesLogger
	return ses
}

func row(fields ...fx.Field) fx.Value {
	return fx.NewRecord(fields...)
}

func fld(nam string, v fx.Value) fx.Field {
	return fx.Field{Name: nam, Value: v}
}

func num(n float64) fx.Value {
	return fx.NumberValue(n)
}

func str(s string) fx.Value {
	return fx.StringValue(s)
}

// amounts builds a table with an "amount" column per value; a nil value
// makes the row itself blank and an error value makes the row an error.
func amounts(vals ...fx.Value) fx.Table {
	rows := make([]fx.Value, 0, len(vals))
	for _, val := range vals {
		if val == nil {
			rows = append(rows, fx.Blank)
		} else if _, ok := fx.AsError(val); ok {
			rows = append(rows, val)
		} else {
			rows = append(rows, row(fld("amount", val)))
		}
	}
	return table.NewValues(rows)
}

// columnValues extracts the named column of every record row of a result.
func columnValues(t *testing.T, res fx.Value, col string) []fx.Value {
	t.Helper()

	tbl, ok := res.(fx.Table)
	if !ok {
		t.Fatalf("got %v want a table", fx.Format(res))
	}
	rows, err := table.AllRows(context.Background(), tbl)
	if err != nil {
		t.Fatalf("AllRows() failed with %s", err)
	}

	vals := make([]fx.Value, 0, len(rows))
	for _, r := range rows {
		rec, ok := r.(*fx.Record)
		if !ok {
			vals = append(vals, r)
			continue
		}
		v, _ := rec.Get(col)
		vals = append(vals, v)
	}
	return vals
}

func wantValues(t *testing.T, res fx.Value, col string, want []fx.Value) {
	t.Helper()

	got := columnValues(t, res, col)
	if !testutil.DeepEqual(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func wantErrorKind(t *testing.T, res fx.Value, ek fx.ErrorKind) {
	t.Helper()

	ev, ok := fx.AsError(res)
	if !ok {
		t.Fatalf("got %v want an error value", fx.Format(res))
	}
	if ev.Kind != ek {
		t.Errorf("got %s error want %s", ev.Kind, ek)
	}
}

// queryTable wraps a values table with configurable delegation: each push
// records that it was attempted and either serves or declines.
type queryTable struct {
	*table.Values

	serveFirstN bool
	serveFilter bool
	serveSort   bool

	firstNCalls int
	filterCalls int
	sortCalls   int
}

func (qt *queryTable) PushFirstN(ctx context.Context, n int) (fx.Table, bool, error) {
	qt.firstNCalls += 1
	if !qt.serveFirstN {
		return nil, false, nil
	}
	rows, err := table.FirstRows(ctx, qt.Values, n)
	if err != nil {
		return nil, false, err
	}
	return table.NewValues(rows), true, nil
}

func (qt *queryTable) PushFilter(ctx context.Context, pred fx.Lambda) (fx.Table, bool,
	error) {

	qt.filterCalls += 1
	if !qt.serveFilter {
		return nil, false, nil
	}

	rows, err := table.AllRows(ctx, qt.Values)
	if err != nil {
		return nil, false, err
	}
	kept := []fx.Value{}
	for _, r := range rows {
		v, err := pred.EvalRowScope(ctx, r)
		if err != nil {
			return nil, false, err
		}
		if b, ok := v.(fx.BoolValue); ok && bool(b) {
			kept = append(kept, r)
		}
	}
	return table.NewValues(kept), true, nil
}

func (qt *queryTable) PushSort(ctx context.Context, key fx.Lambda, descending bool) (fx.Table,
	bool, error) {

	qt.sortCalls += 1
	if !qt.serveSort {
		return nil, false, nil
	}
	return qt.Values, true, nil
}
