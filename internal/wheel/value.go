package wheel

import "strconv"

// Meridiem is the AM/PM half of a 12-hour clock reading.
type Meridiem int

const (
	AM Meridiem = iota
	PM
)

// String returns the literal label of the meridiem.
func (m Meridiem) String() string {
	if m == PM {
		return "PM"
	}
	return "AM"
}

// Value is one selectable entry of a wheel.
// A wheel carries either numeric values or meridiem values, never both.
type Value struct {
	meridiem bool
	n        int
}

// Numeric wraps an integer as a wheel value.
func Numeric(n int) Value {
	return Value{n: n}
}

// MeridiemValue wraps AM or PM as a wheel value.
func MeridiemValue(m Meridiem) Value {
	return Value{meridiem: true, n: int(m)}
}

// IsMeridiem reports whether v holds AM/PM rather than a number.
func (v Value) IsMeridiem() bool {
	return v.meridiem
}

// Int returns the numeric payload. For meridiem values it is 0 for AM and 1 for PM.
func (v Value) Int() int {
	return v.n
}

// Meridiem returns the meridiem payload. Numeric values report AM.
func (v Value) Meridiem() Meridiem {
	if !v.meridiem {
		return AM
	}
	return Meridiem(v.n)
}

// Equal compares variant and payload.
func (v Value) Equal(o Value) bool {
	return v.meridiem == o.meridiem && v.n == o.n
}

// String renders the raw value without any label policy applied.
func (v Value) String() string {
	if v.meridiem {
		return Meridiem(v.n).String()
	}
	return strconv.Itoa(v.n)
}

// Range builds the inclusive numeric list [from, to].
// An inverted range yields an empty list.
func Range(from, to int) []Value {
	if to < from {
		return nil
	}
	out := make([]Value, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, Numeric(i))
	}
	return out
}

// Meridiems is the fixed AM/PM list.
func Meridiems() []Value {
	return []Value{MeridiemValue(AM), MeridiemValue(PM)}
}

// IndexOf returns the position of v in list, or -1 when absent.
func IndexOf(list []Value, v Value) int {
	for i, item := range list {
		if item.Equal(v) {
			return i
		}
	}
	return -1
}
