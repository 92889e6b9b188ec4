package fx

import (
	"fmt"
	"strings"
)

type ErrorKind int

const (
	ValidationError ErrorKind = iota
	TypeMismatchError
	EvaluationError
	NotFoundError
)

func (ek ErrorKind) String() string {
	switch ek {
	case ValidationError:
		return "validation"
	case TypeMismatchError:
		return "type mismatch"
	case EvaluationError:
		return "evaluation"
	case NotFoundError:
		return "not found"
	}
	panic(fmt.Sprintf("unexpected fx.ErrorKind: %d", int(ek)))
}

// ErrorValue is a language-level error travelling as a value; it is not a
// Go error return. Operators that need to abort return it as their result.
type ErrorValue struct {
	Kind ErrorKind
	Msg  string
}

func NewError(ek ErrorKind, format string, args ...interface{}) *ErrorValue {
	return &ErrorValue{Kind: ek, Msg: fmt.Sprintf(format, args...)}
}

func (ev *ErrorValue) String() string {
	return fmt.Sprintf("error(%s: %s)", ev.Kind, ev.Msg)
}

func (ev *ErrorValue) Error() string {
	return ev.Msg
}

// CombineErrors merges several error values into one; a single error is
// returned unchanged.
func CombineErrors(evs []*ErrorValue) *ErrorValue {
	if len(evs) == 0 {
		return nil
	}
	if len(evs) == 1 {
		return evs[0]
	}

	msgs := make([]string, 0, len(evs))
	for _, ev := range evs {
		msgs = append(msgs, ev.Msg)
	}
	return &ErrorValue{Kind: evs[0].Kind, Msg: strings.Join(msgs, "; ")}
}

func AsError(v Value) (*ErrorValue, bool) {
	ev, ok := v.(*ErrorValue)
	return ev, ok
}
