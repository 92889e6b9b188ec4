package fx

import (
	"fmt"
)

type Kind int

const (
	UnknownKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	DateTimeKind
	DateKind
	OptionKind
	BlankKind
	ErrorValueKind
	RecordKind
	TableKind
)

var kindNames = map[Kind]string{
	UnknownKind:    "unknown",
	BoolKind:       "boolean",
	NumberKind:     "number",
	StringKind:     "string",
	DateTimeKind:   "datetime",
	DateKind:       "date",
	OptionKind:     "option",
	BlankKind:      "blank",
	ErrorValueKind: "error",
	RecordKind:     "record",
	TableKind:      "table",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	panic(fmt.Sprintf("unexpected fx.Kind: %d", int(k)))
}

func KindOf(v Value) Kind {
	if v == nil {
		return BlankKind
	}
	switch v.(type) {
	case BoolValue:
		return BoolKind
	case NumberValue:
		return NumberKind
	case StringValue:
		return StringKind
	case DateTimeValue:
		return DateTimeKind
	case DateValue:
		return DateKind
	case OptionValue:
		return OptionKind
	case BlankValue:
		return BlankKind
	case *ErrorValue:
		return ErrorValueKind
	case *Record:
		return RecordKind
	case Table:
		return TableKind
	}
	return UnknownKind
}

// Sortable reports whether values of the kind have a natural ordering
// usable by the sort and distinct engines.
func (k Kind) Sortable() bool {
	switch k {
	case BoolKind, NumberKind, StringKind, DateTimeKind, DateKind, OptionKind:
		return true
	}
	return false
}
