package fx

import (
	"context"
	"fmt"
)

// Lambda is a compiled row-scoped expression. EvalRowScope binds scope as
// the implicit row for one evaluation: the record's fields resolve as local
// names for that call only. An *ErrorValue scope (a row that already failed)
// is returned as the result without evaluating the body. Eval is the variant
// that evaluates regardless of the scope value.
//
// Language-level failures come back as an *ErrorValue result; the Go error
// return is reserved for cancellation and infrastructure failure.
type Lambda interface {
	fmt.Stringer

	EvalRowScope(ctx context.Context, scope Value) (Value, error)
	Eval(ctx context.Context, scope Value) (Value, error)
}

// FieldReferencer is implemented by lambdas that are a bare reference to a
// single field; backends use it to decide whether a sort can be pushed down.
type FieldReferencer interface {
	FieldRef() (string, bool)
}

type NamedLambda struct {
	Name   string
	Lambda Lambda
}

// ParseNamedLambdas parses an alternating name/lambda argument list, left to
// right, into named lambdas. Names are StringValue arguments.
func ParseNamedLambdas(args []interface{}) ([]NamedLambda, *ErrorValue) {
	if len(args) == 0 || len(args)%2 != 0 {
		return nil, NewError(ValidationError,
			"expected name and lambda argument pairs; got %d arguments", len(args))
	}

	nls := make([]NamedLambda, 0, len(args)/2)
	for adx := 0; adx < len(args); adx += 2 {
		s, ok := args[adx].(StringValue)
		if !ok {
			return nil, NewError(TypeMismatchError,
				"expected a column name as argument %d; got %v", adx+1, args[adx])
		}
		lam, ok := args[adx+1].(Lambda)
		if !ok {
			return nil, NewError(TypeMismatchError,
				"expected a lambda as argument %d; got %v", adx+2, args[adx+1])
		}
		nls = append(nls, NamedLambda{Name: string(s), Lambda: lam})
	}
	return nls, nil
}

// RandSource supplies independent draws in [0, 1); it is resolved from the
// session's service registry.
type RandSource interface {
	NextFloat64() float64
}
