package expr

import (
	"context"
	"fmt"

	"github.com/folio-lang/folio/fx"
)

func (b *Binary) Eval(ctx context.Context, scope fx.Value) (fx.Value, error) {
	lv, err := b.Left.Eval(ctx, scope)
	if err != nil {
		return nil, err
	}
	if ev, ok := fx.AsError(lv); ok {
		return ev, nil
	}

	// && and || short circuit on the left operand.
	switch b.Op {
	case AndOp:
		lb, ev := toBool(lv)
		if ev != nil {
			return ev, nil
		}
		if !lb {
			return fx.BoolValue(false), nil
		}
	case OrOp:
		lb, ev := toBool(lv)
		if ev != nil {
			return ev, nil
		}
		if lb {
			return fx.BoolValue(true), nil
		}
	}

	rv, err := b.Right.Eval(ctx, scope)
	if err != nil {
		return nil, err
	}
	if ev, ok := fx.AsError(rv); ok {
		return ev, nil
	}

	switch b.Op {
	case AndOp, OrOp:
		rb, ev := toBool(rv)
		if ev != nil {
			return ev, nil
		}
		return fx.BoolValue(rb), nil
	case EqualOp, NotEqualOp, LessOp, LessEqualOp, GreaterOp, GreaterEqualOp:
		return compareValues(b.Op, lv, rv), nil
	case AddOp, SubtractOp, MultiplyOp, DivideOp:
		return arith(b.Op, lv, rv), nil
	}
	panic(fmt.Sprintf("unexpected expr.Op: %d", int(b.Op)))
}

func toBool(v fx.Value) (bool, *fx.ErrorValue) {
	if fx.IsBlank(v) {
		return false, nil
	}
	b, ok := v.(fx.BoolValue)
	if !ok {
		return false, fx.NewError(fx.TypeMismatchError, "expr: want boolean got %v",
			fx.Format(v))
	}
	return bool(b), nil
}

func compareValues(op Op, lv, rv fx.Value) fx.Value {
	lb := fx.IsBlank(lv)
	rb := fx.IsBlank(rv)
	if lb || rb {
		switch op {
		case EqualOp:
			return fx.BoolValue(lb && rb)
		case NotEqualOp:
			return fx.BoolValue(lb != rb)
		}
		return fx.BoolValue(false)
	}
	if fx.KindOf(lv) != fx.KindOf(rv) {
		return fx.NewError(fx.TypeMismatchError, "expr: cannot compare %v with %v",
			fx.Format(lv), fx.Format(rv))
	}

	cmp, err := fx.Compare(lv, rv)
	if err != nil {
		return fx.NewError(fx.TypeMismatchError, "expr: %s", err)
	}
	switch op {
	case EqualOp:
		return fx.BoolValue(cmp == 0)
	case NotEqualOp:
		return fx.BoolValue(cmp != 0)
	case LessOp:
		return fx.BoolValue(cmp < 0)
	case LessEqualOp:
		return fx.BoolValue(cmp <= 0)
	case GreaterOp:
		return fx.BoolValue(cmp > 0)
	case GreaterEqualOp:
		return fx.BoolValue(cmp >= 0)
	}
	panic(fmt.Sprintf("unexpected comparison expr.Op: %d", int(op)))
}

func arith(op Op, lv, rv fx.Value) fx.Value {
	ln, ev := toNumber(lv)
	if ev != nil {
		return ev
	}
	rn, ev := toNumber(rv)
	if ev != nil {
		return ev
	}

	switch op {
	case AddOp:
		return fx.NumberValue(ln + rn)
	case SubtractOp:
		return fx.NumberValue(ln - rn)
	case MultiplyOp:
		return fx.NumberValue(ln * rn)
	case DivideOp:
		if rn == 0 {
			return fx.NewError(fx.EvaluationError, "expr: division by zero")
		}
		return fx.NumberValue(ln / rn)
	}
	panic(fmt.Sprintf("unexpected arithmetic expr.Op: %d", int(op)))
}

// Blank coerces to zero in arithmetic.
func toNumber(v fx.Value) (float64, *fx.ErrorValue) {
	if fx.IsBlank(v) {
		return 0, nil
	}
	n, ok := v.(fx.NumberValue)
	if !ok {
		return 0, fx.NewError(fx.TypeMismatchError, "expr: want number got %v", fx.Format(v))
	}
	return float64(n), nil
}
