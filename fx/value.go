package fx

import (
	"fmt"
	"strings"
	"time"
)

const (
	BlankString = "Blank"
	TrueString  = "true"
	FalseString = "false"
)

type Value interface {
	fmt.Stringer
}

type BoolValue bool

func (b BoolValue) String() string {
	if b {
		return TrueString
	}
	return FalseString
}

func (b1 BoolValue) Compare(v2 Value) (int, error) {
	if b2, ok := v2.(BoolValue); ok {
		if b1 {
			if b2 {
				return 0, nil
			}
			return 1, nil
		} else {
			if b2 {
				return -1, nil
			}
			return 0, nil
		}
	}
	return 0, fmt.Errorf("fx: want boolean got %v", v2)
}

type NumberValue float64

func (n NumberValue) String() string {
	return fmt.Sprintf("%v", float64(n))
}

func (n1 NumberValue) Compare(v2 Value) (int, error) {
	if n2, ok := v2.(NumberValue); ok {
		if n1 < n2 {
			return -1, nil
		} else if n1 > n2 {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("fx: want number got %v", v2)
}

type StringValue string

func (s StringValue) String() string {
	return fmt.Sprintf("'%s'", string(s))
}

func (s1 StringValue) Compare(v2 Value) (int, error) {
	if s2, ok := v2.(StringValue); ok {
		return strings.Compare(string(s1), string(s2)), nil
	}
	return 0, fmt.Errorf("fx: want string got %v", v2)
}

type DateTimeValue time.Time

func (dt DateTimeValue) String() string {
	return time.Time(dt).Format(time.RFC3339Nano)
}

func (dt1 DateTimeValue) Compare(v2 Value) (int, error) {
	if dt2, ok := v2.(DateTimeValue); ok {
		t1 := time.Time(dt1)
		t2 := time.Time(dt2)
		if t1.Before(t2) {
			return -1, nil
		} else if t1.After(t2) {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("fx: want datetime got %v", v2)
}

type DateValue time.Time

func (d DateValue) String() string {
	return time.Time(d).Format("2006-01-02")
}

func (d1 DateValue) Compare(v2 Value) (int, error) {
	if d2, ok := v2.(DateValue); ok {
		t1 := time.Time(d1)
		t2 := time.Time(d2)
		if t1.Before(t2) {
			return -1, nil
		} else if t1.After(t2) {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("fx: want date got %v", v2)
}

// OptionValue is the ordinal code of a choice within an option set.
type OptionValue int64

func (o OptionValue) String() string {
	return fmt.Sprintf("option(%d)", int64(o))
}

func (o1 OptionValue) Compare(v2 Value) (int, error) {
	if o2, ok := v2.(OptionValue); ok {
		if o1 < o2 {
			return -1, nil
		} else if o1 > o2 {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("fx: want option got %v", v2)
}

type BlankValue struct{}

var Blank = BlankValue{}

func (_ BlankValue) String() string {
	return BlankString
}

func IsBlank(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(BlankValue)
	return ok
}

type comparer interface {
	Compare(v2 Value) (int, error)
}

// Compare orders two scalar values of the same kind; mixing kinds or
// comparing non-scalar values is an error.
func Compare(v1, v2 Value) (int, error) {
	c1, ok := v1.(comparer)
	if !ok {
		return 0, fmt.Errorf("fx: %v is not comparable", Format(v1))
	}
	return c1.Compare(v2)
}

func Format(v Value) string {
	if v == nil {
		return BlankString
	}

	return v.String()
}
