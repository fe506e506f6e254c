package picker

import (
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/wheel"
)

// State is the full selection owned by a picker.
// Hour is 0..23 on a 24-hour clock and 1..12 on a 12-hour clock.
type State struct {
	Day        int
	Month      int
	Year       int
	Hour       int
	Minutes    int
	Meridiem   wheel.Meridiem
	TimeFormat wheel.TimeFormat
}

// Event is one committed wheel value.
type Event struct {
	Field wheel.Field
	Value wheel.Value
}

// Value returns the current value of field as a wheel value.
func (s State) Value(field wheel.Field) wheel.Value {
	switch field {
	case wheel.FieldDay:
		return wheel.Numeric(s.Day)
	case wheel.FieldMonth:
		return wheel.Numeric(s.Month)
	case wheel.FieldYear:
		return wheel.Numeric(s.Year)
	case wheel.FieldHours:
		return wheel.Numeric(s.Hour)
	case wheel.FieldMinutes:
		return wheel.Numeric(s.Minutes)
	case wheel.FieldMeridiem:
		return wheel.MeridiemValue(s.Meridiem)
	}
	return wheel.Value{}
}

// With returns a copy of s with field replaced by v.
func (s State) With(field wheel.Field, v wheel.Value) State {
	switch field {
	case wheel.FieldDay:
		s.Day = v.Int()
	case wheel.FieldMonth:
		s.Month = v.Int()
	case wheel.FieldYear:
		s.Year = v.Int()
	case wheel.FieldHours:
		s.Hour = v.Int()
	case wheel.FieldMinutes:
		s.Minutes = v.Int()
	case wheel.FieldMeridiem:
		s.Meridiem = v.Meridiem()
	}
	return s
}

// Hour24 returns the hour on a 24-hour clock regardless of the time format.
func (s State) Hour24() int {
	if s.TimeFormat == wheel.Clock12 {
		return To24(s.Hour, s.Meridiem)
	}
	return s.Hour
}

// Compose builds the instant (year, month, day, hour, minutes, 0) in loc.
func Compose(s State, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(s.Year, time.Month(s.Month), s.Day, s.Hour24(), s.Minutes, 0, 0, loc)
}

// Decompose splits t into picker fields using the hour representation of tf.
func Decompose(t time.Time, tf wheel.TimeFormat) State {
	h := t.Hour()
	s := State{
		Day:        t.Day(),
		Month:      int(t.Month()),
		Year:       t.Year(),
		Hour:       h,
		Minutes:    t.Minute(),
		Meridiem:   MeridiemOf(h),
		TimeFormat: tf,
	}
	if tf == wheel.Clock12 {
		s.Hour = To12(h)
	}
	return s
}

// WithTimeFormat switches the hour representation without moving the instant.
func (s State) WithTimeFormat(tf wheel.TimeFormat) State {
	if s.TimeFormat == tf {
		return s
	}
	h := s.Hour24()
	s.TimeFormat = tf
	s.Meridiem = MeridiemOf(h)
	s.Hour = h
	if tf == wheel.Clock12 {
		s.Hour = To12(h)
	}
	return s
}

// To24 converts a 12-hour reading to 0..23.
func To24(h12 int, m wheel.Meridiem) int {
	if m == wheel.AM {
		if h12 == 12 {
			return 0
		}
		return h12
	}
	if h12 == 12 {
		return 12
	}
	return h12 + 12
}

// To12 converts 0..23 to 1..12.
func To12(h24 int) int {
	if h := h24 % 12; h != 0 {
		return h
	}
	return 12
}

// MeridiemOf returns PM from noon onward.
func MeridiemOf(h24 int) wheel.Meridiem {
	if h24 >= 12 {
		return wheel.PM
	}
	return wheel.AM
}

// DaysInMonth returns the length of month in year.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// YearWindow is the year range used when no date bound narrows it.
type YearWindow struct {
	From int
	To   int
}

// DefaultYearWindow returns 2020..2050.
func DefaultYearWindow() YearWindow {
	return YearWindow{From: config.DefaultYearFrom, To: config.DefaultYearTo}
}

// Bounds holds the optional selectable range. A zero time means unbounded.
type Bounds struct {
	Min time.Time
	Max time.Time
}

// Clamp returns t moved onto the nearest violated bound.
func (b Bounds) Clamp(t time.Time) time.Time {
	if !b.Min.IsZero() && t.Before(b.Min) {
		return b.Min
	}
	if !b.Max.IsZero() && t.After(b.Max) {
		return b.Max
	}
	return t
}

// Constraints is everything besides State that the reducer needs.
type Constraints struct {
	Bounds   Bounds
	Years    YearWindow
	Location *time.Location
}

func (c Constraints) loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

func (c Constraints) years() YearWindow {
	if c.Years.From == 0 && c.Years.To == 0 {
		return DefaultYearWindow()
	}
	return c.Years
}

func (c Constraints) min() (time.Time, bool) {
	if c.Bounds.Min.IsZero() {
		return time.Time{}, false
	}
	return c.Bounds.Min.In(c.loc()), true
}

func (c Constraints) max() (time.Time, bool) {
	if c.Bounds.Max.IsZero() {
		return time.Time{}, false
	}
	return c.Bounds.Max.In(c.loc()), true
}
