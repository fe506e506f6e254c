package picker

import (
	"time"

	"github.com/tartampluch/go-datewheel/internal/wheel"
)

// Lists holds the value list of every wheel, derived from State and Constraints.
type Lists struct {
	Days      []wheel.Value
	Months    []wheel.Value
	Years     []wheel.Value
	Hours     []wheel.Value
	Minutes   []wheel.Value
	Meridiems []wheel.Value
}

// For returns the list feeding the wheel of field.
func (l Lists) For(field wheel.Field) []wheel.Value {
	switch field {
	case wheel.FieldDay:
		return l.Days
	case wheel.FieldMonth:
		return l.Months
	case wheel.FieldYear:
		return l.Years
	case wheel.FieldHours:
		return l.Hours
	case wheel.FieldMinutes:
		return l.Minutes
	case wheel.FieldMeridiem:
		return l.Meridiems
	}
	return nil
}

// Derive computes every value list. It is a pure function of the selected
// year/month/day, the time format and the constraints.
// Narrowing that would leave a list empty falls back to the full list.
func Derive(s State, c Constraints) Lists {
	return Lists{
		Days:      deriveDays(s, c),
		Months:    deriveMonths(c),
		Years:     deriveYears(c),
		Hours:     deriveHours(s, c),
		Minutes:   wheel.Range(0, 59),
		Meridiems: wheel.Meridiems(),
	}
}

func deriveDays(s State, c Constraints) []wheel.Value {
	lo, hi := 1, DaysInMonth(s.Year, s.Month)
	full := wheel.Range(lo, hi)
	if lower, ok := c.min(); ok && sameMonth(lower, s) {
		lo = lower.Day()
	}
	if upper, ok := c.max(); ok && sameMonth(upper, s) {
		hi = upper.Day()
	}
	return narrowed(full, lo, hi)
}

// deriveMonths narrows by the bounds' months only; the bound year is not consulted.
func deriveMonths(c Constraints) []wheel.Value {
	lo, hi := 1, 12
	full := wheel.Range(lo, hi)
	if lower, ok := c.min(); ok {
		lo = int(lower.Month())
	}
	if upper, ok := c.max(); ok {
		hi = int(upper.Month())
	}
	return narrowed(full, lo, hi)
}

func deriveYears(c Constraints) []wheel.Value {
	win := c.years()
	lo, hi := win.From, win.To
	if lower, ok := c.min(); ok {
		lo = lower.Year()
	}
	if upper, ok := c.max(); ok {
		hi = upper.Year()
	}
	if lo > hi {
		return wheel.Range(win.From, win.To)
	}
	return wheel.Range(lo, hi)
}

func deriveHours(s State, c Constraints) []wheel.Value {
	lo, hi := 0, 23
	if lower, ok := c.min(); ok && sameDay(lower, s) {
		lo = lower.Hour()
	}
	if upper, ok := c.max(); ok && sameDay(upper, s) {
		hi = upper.Hour()
	}

	if s.TimeFormat != wheel.Clock12 {
		return narrowed(wheel.Range(0, 23), lo, hi)
	}

	full := make([]wheel.Value, 0, 12)
	full = append(full, wheel.Numeric(12))
	full = append(full, wheel.Range(1, 11)...)
	if lo == 0 && hi == 23 {
		return full
	}

	var out []wheel.Value
	for _, v := range full {
		if h := To24(v.Int(), s.Meridiem); h >= lo && h <= hi {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return full
	}
	return out
}

func narrowed(full []wheel.Value, lo, hi int) []wheel.Value {
	var out []wheel.Value
	for _, v := range full {
		if v.Int() >= lo && v.Int() <= hi {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return full
	}
	return out
}

func sameMonth(t time.Time, s State) bool {
	return t.Year() == s.Year && int(t.Month()) == s.Month
}

func sameDay(t time.Time, s State) bool {
	return sameMonth(t, s) && t.Day() == s.Day
}
