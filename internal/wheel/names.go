package wheel

import "time"

// Names looks up weekday and month names for labels.
// Months are numbered 1..12. A false result means no entry exists.
type Names interface {
	ShortWeekday(d time.Weekday) (string, bool)
	ShortMonth(month int) (string, bool)
	LongMonth(month int) (string, bool)
}

var (
	englishWeekdays = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	englishMonths   = [...]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
)

// EnglishNames is the built-in table used when no localizer is wired.
type EnglishNames struct{}

func (EnglishNames) ShortWeekday(d time.Weekday) (string, bool) {
	if d < time.Sunday || d > time.Saturday {
		return "", false
	}
	return englishWeekdays[d], true
}

func (EnglishNames) ShortMonth(month int) (string, bool) {
	name, ok := EnglishNames{}.LongMonth(month)
	if !ok {
		return "", false
	}
	return name[:3], true
}

func (EnglishNames) LongMonth(month int) (string, bool) {
	if month < 1 || month > 12 {
		return "", false
	}
	return englishMonths[month-1], true
}
