package picker

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// Reduce applies one committed wheel value and reconciles the result.
func Reduce(s State, ev Event, c Constraints) State {
	next, _, _ := Resolve(s.With(ev.Field, ev.Value), c)
	return next
}

// Reconcile returns s with the day clamped to the month length and the
// composed instant clamped into the bounds.
// It is idempotent: reconciling a reconciled state returns it unchanged.
func Reconcile(s State, c Constraints) State {
	next, _, _ := Resolve(s, c)
	return next
}

// Resolve reconciles s and also returns the instant to report.
// When a bound was violated the instant is exactly that bound and clamped is true.
func Resolve(s State, c Constraints) (next State, instant time.Time, clamped bool) {
	s = guardDay(s)
	loc := c.loc()

	composed := Compose(s, loc)
	bounded := c.Bounds.Clamp(composed)
	if bounded.Equal(composed) {
		return s, composed, false
	}

	candidate := Decompose(bounded.In(loc), s.TimeFormat)
	if Compose(candidate, loc).Equal(composed) {
		// Already at the fixed point; writing again would only loop.
		return s, bounded, true
	}

	slog.Debug(config.MsgPickerClamped,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyInstant, composed,
		config.LogKeyBound, bounded,
	)
	return candidate, bounded, true
}

func guardDay(s State) State {
	if s.Month < 1 || s.Month > 12 {
		return s
	}
	if last := DaysInMonth(s.Year, s.Month); s.Day > last {
		slog.Debug(config.MsgPickerDayGuard,
			config.LogKeyComponent, config.CompPicker,
			config.LogKeyValue, s.Day,
			config.LogKeyCount, last,
		)
		s.Day = last
	}
	return s
}
