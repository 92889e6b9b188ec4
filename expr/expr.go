package expr

import (
	"context"
	"fmt"

	"github.com/folio-lang/folio/fx"
)

// The compiled expression forms implementing fx.Lambda: literals, field
// references resolved against the row scope, and binary operators. This is
// the collaborator the operator engine consumes; it is not the language's
// full expression tree.

type Literal struct {
	Value fx.Value
}

func Number(n float64) *Literal {
	return &Literal{Value: fx.NumberValue(n)}
}

func String(s string) *Literal {
	return &Literal{Value: fx.StringValue(s)}
}

func Bool(b bool) *Literal {
	return &Literal{Value: fx.BoolValue(b)}
}

func Blank() *Literal {
	return &Literal{Value: fx.Blank}
}

func (l *Literal) String() string {
	return fx.Format(l.Value)
}

func (l *Literal) Eval(ctx context.Context, scope fx.Value) (fx.Value, error) {
	return l.Value, nil
}

func (l *Literal) EvalRowScope(ctx context.Context, scope fx.Value) (fx.Value, error) {
	if ev, ok := fx.AsError(scope); ok {
		return ev, nil
	}
	return l.Eval(ctx, scope)
}

// Ref is a bare reference to a field of the row scope record; a field the
// record does not have resolves to Blank.
type Ref string

func (r Ref) String() string {
	return string(r)
}

func (r Ref) FieldRef() (string, bool) {
	return string(r), true
}

func (r Ref) Eval(ctx context.Context, scope fx.Value) (fx.Value, error) {
	switch scope := scope.(type) {
	case *fx.ErrorValue:
		return scope, nil
	case *fx.Record:
		v, ok := scope.Get(string(r))
		if !ok || v == nil {
			return fx.Blank, nil
		}
		return v, nil
	}
	if fx.IsBlank(scope) {
		return fx.Blank, nil
	}
	return fx.NewError(fx.TypeMismatchError, "expr: cannot resolve %s in %v", string(r),
		fx.Format(scope)), nil
}

func (r Ref) EvalRowScope(ctx context.Context, scope fx.Value) (fx.Value, error) {
	if ev, ok := fx.AsError(scope); ok {
		return ev, nil
	}
	return r.Eval(ctx, scope)
}

type Op int

const (
	EqualOp Op = iota
	NotEqualOp
	LessOp
	LessEqualOp
	GreaterOp
	GreaterEqualOp
	AddOp
	SubtractOp
	MultiplyOp
	DivideOp
	AndOp
	OrOp
)

var opNames = map[Op]string{
	EqualOp:        "=",
	NotEqualOp:     "<>",
	LessOp:         "<",
	LessEqualOp:    "<=",
	GreaterOp:      ">",
	GreaterEqualOp: ">=",
	AddOp:          "+",
	SubtractOp:     "-",
	MultiplyOp:     "*",
	DivideOp:       "/",
	AndOp:          "&&",
	OrOp:           "||",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	panic(fmt.Sprintf("unexpected expr.Op: %d", int(op)))
}

type Binary struct {
	Op    Op
	Left  fx.Lambda
	Right fx.Lambda
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

func (b *Binary) EvalRowScope(ctx context.Context, scope fx.Value) (fx.Value, error) {
	if ev, ok := fx.AsError(scope); ok {
		return ev, nil
	}
	return b.Eval(ctx, scope)
}
