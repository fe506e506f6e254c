package wheel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datewheel/internal/wheel"
)

// emptyNames has no entries, so every lookup misses.
type emptyNames struct{}

func (emptyNames) ShortWeekday(time.Weekday) (string, bool) { return "", false }
func (emptyNames) ShortMonth(int) (string, bool)            { return "", false }
func (emptyNames) LongMonth(int) (string, bool)             { return "", false }

func TestLabel(t *testing.T) {
	full := wheel.DefaultFormat()
	twelve := full
	twelve.TimeFormat = wheel.Clock12
	long := full
	long.Month = wheel.MonthLong
	plain := wheel.Format{
		Day:        wheel.DayNumeric,
		Month:      wheel.MonthNumeric,
		Year:       wheel.YearLong,
		TimeFormat: wheel.Clock24,
		Hours:      wheel.HoursPlain,
		Minutes:    wheel.MinutesPlain,
	}

	tests := []struct {
		name   string
		format wheel.Format
		field  wheel.Field
		value  wheel.Value
		want   string
	}{
		// 2024-06-10 is a Monday.
		{"Day_Alphabetical", full, wheel.FieldDay, wheel.Numeric(10), "Mon 10"},
		{"Day_Numeric", plain, wheel.FieldDay, wheel.Numeric(10), "10"},
		{"Month_Short", full, wheel.FieldMonth, wheel.Numeric(6), "Jun"},
		{"Month_Long", long, wheel.FieldMonth, wheel.Numeric(6), "June"},
		{"Month_Numeric", plain, wheel.FieldMonth, wheel.Numeric(6), "6"},
		{"Month_OutOfTable", full, wheel.FieldMonth, wheel.Numeric(13), "13"},
		{"Year_Short", full, wheel.FieldYear, wheel.Numeric(2024), "24"},
		{"Year_Long", plain, wheel.FieldYear, wheel.Numeric(2024), "2024"},
		{"Hours_Padded24", full, wheel.FieldHours, wheel.Numeric(7), "07 hrs"},
		{"Hours_Padded12", twelve, wheel.FieldHours, wheel.Numeric(7), "07"},
		{"Hours_Plain", plain, wheel.FieldHours, wheel.Numeric(7), "7"},
		{"Minutes_Padded24", full, wheel.FieldMinutes, wheel.Numeric(5), "05 min"},
		{"Minutes_Padded12", twelve, wheel.FieldMinutes, wheel.Numeric(45), "45"},
		{"Minutes_Plain", plain, wheel.FieldMinutes, wheel.Numeric(5), "5"},
		{"Meridiem_Raw", twelve, wheel.FieldMeridiem, wheel.MeridiemValue(wheel.PM), "PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := wheel.LabelPolicy{Format: tt.format, Year: 2024, Month: 6}
			assert.Equal(t, tt.want, p.Label(tt.field, tt.value))
		})
	}
}

func TestLabel_DayDefaultsToCurrentMonth(t *testing.T) {
	// 2025-02-01 is a Saturday.
	p := wheel.LabelPolicy{
		Format: wheel.DefaultFormat(),
		Now:    func() time.Time { return time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC) },
	}
	assert.Equal(t, "Sat 1", p.Label(wheel.FieldDay, wheel.Numeric(1)))
}

func TestLabel_LookupMissDegradesToRaw(t *testing.T) {
	p := wheel.LabelPolicy{Format: wheel.DefaultFormat(), Names: emptyNames{}, Year: 2024, Month: 6}

	assert.Equal(t, "10", p.Label(wheel.FieldDay, wheel.Numeric(10)))
	assert.Equal(t, "6", p.Label(wheel.FieldMonth, wheel.Numeric(6)))
}

func TestFormat_Enabled(t *testing.T) {
	f := wheel.DefaultFormat()
	assert.True(t, f.Enabled(wheel.FieldDay))
	assert.False(t, f.Enabled(wheel.FieldMeridiem))

	f.TimeFormat = wheel.Clock12
	f.Minutes = ""
	assert.True(t, f.Enabled(wheel.FieldMeridiem))
	assert.False(t, f.Enabled(wheel.FieldMinutes))
}
