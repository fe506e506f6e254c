package wheel

import (
	"strings"
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// Field tags which piece of the picker a wheel edits.
type Field string

const (
	FieldDay      Field = "day"
	FieldMonth    Field = "month"
	FieldYear     Field = "year"
	FieldHours    Field = "hours"
	FieldMinutes  Field = "minutes"
	FieldMeridiem Field = "meridiem"
)

// Fields lists every field in display order.
var Fields = []Field{FieldDay, FieldMonth, FieldYear, FieldHours, FieldMinutes, FieldMeridiem}

type (
	DayFormat    string
	MonthFormat  string
	YearFormat   string
	HourFormat   string
	MinuteFormat string
	TimeFormat   int
)

// An empty format string disables the corresponding wheel.
const (
	DayNumeric      DayFormat = "numeric"
	DayAlphabetical DayFormat = "alphabetical"

	MonthNumeric MonthFormat = "numeric"
	MonthShort   MonthFormat = "alphabeticalShort"
	MonthLong    MonthFormat = "alphabeticalLong"

	YearShort YearFormat = "short"
	YearLong  YearFormat = "long"

	HoursPadded HourFormat = "hh"
	HoursPlain  HourFormat = "h"

	MinutesPadded MinuteFormat = "mm"
	MinutesPlain  MinuteFormat = "m"

	Clock24 TimeFormat = 24
	Clock12 TimeFormat = 12
)

// Format selects the labeling and range policy of every field.
type Format struct {
	Day        DayFormat
	Month      MonthFormat
	Year       YearFormat
	TimeFormat TimeFormat
	Hours      HourFormat
	Minutes    MinuteFormat
}

// DefaultFormat enables every field with the richest labels and a 24-hour clock.
func DefaultFormat() Format {
	return Format{
		Day:        DayAlphabetical,
		Month:      MonthShort,
		Year:       YearShort,
		TimeFormat: Clock24,
		Hours:      HoursPadded,
		Minutes:    MinutesPadded,
	}
}

// Is12Hour reports whether hours are shown on a 12-hour clock.
func (f Format) Is12Hour() bool {
	return f.TimeFormat == Clock12
}

// Enabled reports whether the wheel for field is shown.
func (f Format) Enabled(field Field) bool {
	switch field {
	case FieldDay:
		return f.Day != ""
	case FieldMonth:
		return f.Month != ""
	case FieldYear:
		return f.Year != ""
	case FieldHours:
		return f.Hours != ""
	case FieldMinutes:
		return f.Minutes != ""
	case FieldMeridiem:
		return f.Is12Hour()
	}
	return false
}

// LabelPolicy turns raw wheel values into display strings.
type LabelPolicy struct {
	Format Format
	Names  Names

	// Year and Month give weekday labels their calendar context.
	// Zero values fall back to the current date.
	Year  int
	Month int
	Now   func() time.Time
}

// Label renders v for the wheel bound to field.
// Lookup misses degrade to the raw value.
func (p LabelPolicy) Label(field Field, v Value) string {
	raw := v.String()
	if v.IsMeridiem() {
		return raw
	}

	switch field {
	case FieldDay:
		if p.Format.Day == DayAlphabetical {
			year, month := p.context()
			wd := time.Date(year, time.Month(month), v.Int(), 0, 0, 0, 0, time.UTC).Weekday()
			if name, ok := p.names().ShortWeekday(wd); ok {
				return name + " " + raw
			}
		}
	case FieldMonth:
		switch p.Format.Month {
		case MonthShort:
			if name, ok := p.names().ShortMonth(v.Int()); ok {
				return name
			}
		case MonthLong:
			if name, ok := p.names().LongMonth(v.Int()); ok {
				return name
			}
		}
	case FieldYear:
		if p.Format.Year == YearShort && len(raw) > 2 {
			return raw[len(raw)-2:]
		}
	case FieldHours:
		if p.Format.Hours == HoursPadded {
			return p.clockLabel(raw, config.SuffixHours)
		}
	case FieldMinutes:
		if p.Format.Minutes == MinutesPadded {
			return p.clockLabel(raw, config.SuffixMinutes)
		}
	}
	return raw
}

func (p LabelPolicy) clockLabel(raw, suffix string) string {
	if len(raw) < 2 {
		raw = strings.Repeat("0", 2-len(raw)) + raw
	}
	if p.Format.TimeFormat == Clock24 {
		return raw + suffix
	}
	return raw
}

func (p LabelPolicy) context() (int, int) {
	year, month := p.Year, p.Month
	if year == 0 || month == 0 {
		now := time.Now
		if p.Now != nil {
			now = p.Now
		}
		t := now()
		if year == 0 {
			year = t.Year()
		}
		if month == 0 {
			month = int(t.Month())
		}
	}
	return year, month
}

func (p LabelPolicy) names() Names {
	if p.Names == nil {
		return EnglishNames{}
	}
	return p.Names
}
