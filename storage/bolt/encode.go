package bolt

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/folio-lang/folio/fx"
)

const (
	blankTag    = 0
	boolTag     = 1
	numberTag   = 2
	stringTag   = 3
	dateTimeTag = 4
	dateTag     = 5
	optionTag   = 6
	errorTag    = 7
	recordTag   = 8
)

func rowKey(idx int) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(idx))
	return key[:]
}

func encodeUint64(buf []byte, u uint64) []byte {
	return append(buf, byte(u>>56), byte(u>>48), byte(u>>40), byte(u>>32),
		byte(u>>24), byte(u>>16), byte(u>>8), byte(u))
}

func encodeString(buf []byte, s string) []byte {
	var n [binary.MaxVarintLen64]byte
	buf = append(buf, n[:binary.PutUvarint(n[:], uint64(len(s)))]...)
	return append(buf, s...)
}

func decodeString(buf []byte) ([]byte, string, bool) {
	u, n := binary.Uvarint(buf)
	if n <= 0 {
		return nil, "", false
	}
	buf = buf[n:]
	if uint64(len(buf)) < u {
		return nil, "", false
	}
	return buf[u:], string(buf[:u]), true
}

// EncodeRow encodes one row value: a record, blank, or error.
func EncodeRow(row fx.Value) ([]byte, error) {
	return encodeValue(nil, row)
}

func encodeValue(buf []byte, v fx.Value) ([]byte, error) {
	if fx.IsBlank(v) {
		return append(buf, blankTag), nil
	}
	switch v := v.(type) {
	case fx.BoolValue:
		buf = append(buf, boolTag)
		if v {
			return append(buf, 1), nil
		}
		return append(buf, 0), nil
	case fx.NumberValue:
		buf = append(buf, numberTag)
		return encodeUint64(buf, math.Float64bits(float64(v))), nil
	case fx.StringValue:
		buf = append(buf, stringTag)
		return encodeString(buf, string(v)), nil
	case fx.DateTimeValue:
		buf = append(buf, dateTimeTag)
		return encodeUint64(buf, uint64(time.Time(v).UnixNano())), nil
	case fx.DateValue:
		buf = append(buf, dateTag)
		return encodeUint64(buf, uint64(time.Time(v).UnixNano())), nil
	case fx.OptionValue:
		buf = append(buf, optionTag)
		return encodeUint64(buf, uint64(int64(v))), nil
	case *fx.ErrorValue:
		buf = append(buf, errorTag, byte(v.Kind))
		return encodeString(buf, v.Msg), nil
	case *fx.Record:
		buf = append(buf, recordTag)
		var n [binary.MaxVarintLen64]byte
		buf = append(buf, n[:binary.PutUvarint(n[:], uint64(v.Len()))]...)
		for _, fld := range v.Fields() {
			buf = encodeString(buf, fld.Name)
			var err error
			buf, err = encodeValue(buf, fld.Value)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	}
	return nil, fmt.Errorf("bolt: unable to encode value: %v", fx.Format(v))
}

func DecodeRow(buf []byte) (fx.Value, error) {
	v, buf, ok := decodeValue(buf)
	if !ok || len(buf) != 0 {
		return nil, fmt.Errorf("bolt: unable to decode row")
	}
	return v, nil
}

func decodeValue(buf []byte) (fx.Value, []byte, bool) {
	if len(buf) == 0 {
		return nil, nil, false
	}

	tag := buf[0]
	buf = buf[1:]
	switch tag {
	case blankTag:
		return fx.Blank, buf, true
	case boolTag:
		if len(buf) < 1 {
			return nil, nil, false
		}
		return fx.BoolValue(buf[0] != 0), buf[1:], true
	case numberTag:
		if len(buf) < 8 {
			return nil, nil, false
		}
		u := binary.BigEndian.Uint64(buf)
		return fx.NumberValue(math.Float64frombits(u)), buf[8:], true
	case stringTag:
		buf, s, ok := decodeString(buf)
		if !ok {
			return nil, nil, false
		}
		return fx.StringValue(s), buf, true
	case dateTimeTag:
		if len(buf) < 8 {
			return nil, nil, false
		}
		u := binary.BigEndian.Uint64(buf)
		return fx.DateTimeValue(time.Unix(0, int64(u)).UTC()), buf[8:], true
	case dateTag:
		if len(buf) < 8 {
			return nil, nil, false
		}
		u := binary.BigEndian.Uint64(buf)
		return fx.DateValue(time.Unix(0, int64(u)).UTC()), buf[8:], true
	case optionTag:
		if len(buf) < 8 {
			return nil, nil, false
		}
		u := binary.BigEndian.Uint64(buf)
		return fx.OptionValue(int64(u)), buf[8:], true
	case errorTag:
		if len(buf) < 1 {
			return nil, nil, false
		}
		ek := fx.ErrorKind(buf[0])
		buf, msg, ok := decodeString(buf[1:])
		if !ok {
			return nil, nil, false
		}
		return &fx.ErrorValue{Kind: ek, Msg: msg}, buf, true
	case recordTag:
		u, n := binary.Uvarint(buf)
		if n <= 0 {
			return nil, nil, false
		}
		buf = buf[n:]
		fields := make([]fx.Field, 0, u)
		for fdx := uint64(0); fdx < u; fdx++ {
			var nam string
			var ok bool
			buf, nam, ok = decodeString(buf)
			if !ok {
				return nil, nil, false
			}
			var val fx.Value
			val, buf, ok = decodeValue(buf)
			if !ok {
				return nil, nil, false
			}
			fields = append(fields, fx.Field{Name: nam, Value: val})
		}
		return fx.NewRecord(fields...), buf, true
	}
	return nil, nil, false
}
