package expr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/folio-lang/folio/fx"
)

var parseOps = map[string]Op{
	"=":  EqualOp,
	"<>": NotEqualOp,
	"!=": NotEqualOp,
	"<":  LessOp,
	"<=": LessEqualOp,
	">":  GreaterOp,
	">=": GreaterEqualOp,
	"+":  AddOp,
	"-":  SubtractOp,
	"*":  MultiplyOp,
	"/":  DivideOp,
}

// Parse accepts a single term, or a term, an operator, and a term, with the
// pieces separated by spaces. It exists for the repl; it is not the
// language's parser.
func Parse(s string) (fx.Lambda, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		return parseTerm(fields[0])
	case 3:
		op, ok := parseOps[fields[1]]
		if !ok {
			return nil, fmt.Errorf("expr: expected an operator; got %s", fields[1])
		}
		left, err := parseTerm(fields[0])
		if err != nil {
			return nil, err
		}
		right, err := parseTerm(fields[2])
		if err != nil {
			return nil, err
		}
		return &Binary{Op: op, Left: left, Right: right}, nil
	}
	return nil, fmt.Errorf("expr: expected term or term op term; got %q", s)
}

func parseTerm(s string) (fx.Lambda, error) {
	switch s {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "blank":
		return Blank(), nil
	}
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return String(s[1 : len(s)-1]), nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(n), nil
	}
	return Ref(s), nil
}
