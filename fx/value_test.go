package fx_test

import (
	"testing"
	"time"

	"github.com/folio-lang/folio/fx"
)

func TestCompare(t *testing.T) {
	dt1 := fx.DateTimeValue(time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC))
	dt2 := fx.DateTimeValue(time.Date(2023, 4, 5, 6, 7, 9, 0, time.UTC))
	d1 := fx.DateValue(time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC))
	d2 := fx.DateValue(time.Date(2023, 4, 6, 0, 0, 0, 0, time.UTC))

	cases := []struct {
		v1, v2 fx.Value
		cmp    int
	}{
		{fx.BoolValue(true), fx.BoolValue(true), 0},
		{fx.BoolValue(false), fx.BoolValue(false), 0},
		{fx.BoolValue(false), fx.BoolValue(true), -1},
		{fx.BoolValue(true), fx.BoolValue(false), 1},

		{fx.NumberValue(1.23), fx.NumberValue(2.34), -1},
		{fx.NumberValue(1.23), fx.NumberValue(1.23), 0},
		{fx.NumberValue(1.23), fx.NumberValue(0.12), 1},

		{fx.StringValue("def"), fx.StringValue("ghi"), -1},
		{fx.StringValue("def"), fx.StringValue("def"), 0},
		{fx.StringValue("def"), fx.StringValue("abc"), 1},

		{dt1, dt2, -1},
		{dt1, dt1, 0},
		{dt2, dt1, 1},

		{d1, d2, -1},
		{d1, d1, 0},
		{d2, d1, 1},

		{fx.OptionValue(1), fx.OptionValue(2), -1},
		{fx.OptionValue(2), fx.OptionValue(2), 0},
		{fx.OptionValue(3), fx.OptionValue(2), 1},
	}

	for _, c := range cases {
		cmp, err := fx.Compare(c.v1, c.v2)
		if err != nil {
			t.Errorf("Compare(%v, %v) failed with %s", c.v1, c.v2, err)
		} else if cmp != c.cmp {
			t.Errorf("Compare(%v, %v) got %d want %d", c.v1, c.v2, cmp, c.cmp)
		}
	}

	fails := []struct {
		v1, v2 fx.Value
	}{
		{fx.BoolValue(true), fx.NumberValue(1.23)},
		{fx.NumberValue(1.23), fx.StringValue("abc")},
		{fx.StringValue("abc"), fx.OptionValue(1)},
		{dt1, d1},
		{fx.Blank, fx.NumberValue(1.23)},
		{fx.NewRecord(), fx.NewRecord()},
	}

	for _, c := range fails {
		_, err := fx.Compare(c.v1, c.v2)
		if err == nil {
			t.Errorf("Compare(%v, %v) did not fail", c.v1, c.v2)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		v fx.Value
		s string
	}{
		{nil, "Blank"},
		{fx.Blank, "Blank"},
		{fx.BoolValue(true), "true"},
		{fx.BoolValue(false), "false"},
		{fx.NumberValue(1.5), "1.5"},
		{fx.NumberValue(123), "123"},
		{fx.StringValue("abc"), "'abc'"},
		{fx.DateValue(time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC)), "2023-04-05"},
		{fx.OptionValue(3), "option(3)"},
		{fx.NewError(fx.ValidationError, "bad argument"), "error(validation: bad argument)"},
	}

	for _, c := range cases {
		s := fx.Format(c.v)
		if s != c.s {
			t.Errorf("Format(%#v) got %s want %s", c.v, s, c.s)
		}
	}
}

func TestIsBlank(t *testing.T) {
	cases := []struct {
		v     fx.Value
		blank bool
	}{
		{nil, true},
		{fx.Blank, true},
		{fx.BoolValue(false), false},
		{fx.NumberValue(0), false},
		{fx.StringValue(""), false},
	}

	for _, c := range cases {
		blank := fx.IsBlank(c.v)
		if blank != c.blank {
			t.Errorf("IsBlank(%#v) got %t want %t", c.v, blank, c.blank)
		}
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		v fx.Value
		k fx.Kind
	}{
		{nil, fx.BlankKind},
		{fx.Blank, fx.BlankKind},
		{fx.BoolValue(true), fx.BoolKind},
		{fx.NumberValue(1.23), fx.NumberKind},
		{fx.StringValue("abc"), fx.StringKind},
		{fx.DateTimeValue(time.Now()), fx.DateTimeKind},
		{fx.DateValue(time.Now()), fx.DateKind},
		{fx.OptionValue(1), fx.OptionKind},
		{fx.NewError(fx.EvaluationError, "failed"), fx.ErrorValueKind},
		{fx.NewRecord(), fx.RecordKind},
	}

	for _, c := range cases {
		k := fx.KindOf(c.v)
		if k != c.k {
			t.Errorf("KindOf(%v) got %s want %s", c.v, k, c.k)
		}
	}
}

func TestSortable(t *testing.T) {
	cases := []struct {
		k        fx.Kind
		sortable bool
	}{
		{fx.BoolKind, true},
		{fx.NumberKind, true},
		{fx.StringKind, true},
		{fx.DateTimeKind, true},
		{fx.DateKind, true},
		{fx.OptionKind, true},
		{fx.BlankKind, false},
		{fx.ErrorValueKind, false},
		{fx.RecordKind, false},
		{fx.TableKind, false},
	}

	for _, c := range cases {
		sortable := c.k.Sortable()
		if sortable != c.sortable {
			t.Errorf("%s.Sortable() got %t want %t", c.k, sortable, c.sortable)
		}
	}
}
