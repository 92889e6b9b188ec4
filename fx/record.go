package fx

import (
	"bytes"
	"fmt"
)

type Field struct {
	Name  string
	Value Value
}

// Record is a mapping from field name to value; field names are unique and
// case sensitive, and the field order is the display order.
type Record struct {
	fields []Field
}

func NewRecord(fields ...Field) *Record {
	return &Record{fields: fields}
}

func EmptyRecord() *Record {
	return &Record{}
}

func (r *Record) Len() int {
	return len(r.fields)
}

func (r *Record) Fields() []Field {
	return r.fields
}

func (r *Record) Get(name string) (Value, bool) {
	for _, fld := range r.fields {
		if fld.Name == name {
			return fld.Value, true
		}
	}
	return nil, false
}

// With returns a copy of the record with the named field appended, or
// replaced if a field of that name already exists.
func (r *Record) With(name string, v Value) *Record {
	fields := make([]Field, len(r.fields), len(r.fields)+1)
	copy(fields, r.fields)
	for fdx := range fields {
		if fields[fdx].Name == name {
			fields[fdx].Value = v
			return &Record{fields: fields}
		}
	}
	return &Record{fields: append(fields, Field{Name: name, Value: v})}
}

func (r *Record) String() string {
	var buf bytes.Buffer
	buf.WriteRune('{')
	for fdx, fld := range r.fields {
		if fdx > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %s", fld.Name, Format(fld.Value))
	}
	buf.WriteRune('}')
	return buf.String()
}
