package picker

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/wheel"
)

// Options configures a Picker.
type Options struct {
	// Initial seeds the selection. The zero value means Clock.Now().
	Initial time.Time
	Bounds  Bounds
	Format  wheel.Format
	Years   YearWindow

	Location *time.Location
	Clock    Clock

	// OnChange receives the composed, bound-clamped instant after every change.
	// It may fire with an unchanged instant.
	OnChange func(time.Time)
}

// Snapshot is what the wheels need to render after a state transition.
type Snapshot struct {
	State   State
	Lists   Lists
	Instant time.Time
	Clamped bool
}

// Picker owns the selection state and keeps the six fields consistent.
// It is not safe for concurrent use; all calls belong on the UI thread.
type Picker struct {
	state    State
	c        Constraints
	format   wheel.Format
	snap     Snapshot
	onChange func(time.Time)
	clock    Clock
}

// New seeds a picker from opts and reconciles the initial selection.
// No callback fires until Sync or Apply.
func New(opts Options) *Picker {
	clock := opts.Clock
	if clock == nil {
		clock = RealClock{}
	}
	format := opts.Format
	if format.TimeFormat != wheel.Clock12 {
		format.TimeFormat = wheel.Clock24
	}

	p := &Picker{
		c: Constraints{
			Bounds:   opts.Bounds,
			Years:    opts.Years,
			Location: opts.Location,
		},
		format:   format,
		onChange: opts.OnChange,
		clock:    clock,
	}

	initial := opts.Initial
	if initial.IsZero() {
		initial = clock.Now()
	}
	p.commit(Decompose(initial.In(p.c.loc()), format.TimeFormat))
	return p
}

// Apply commits a settled wheel value, reconciles all fields in one step and
// reports the resulting instant.
func (p *Picker) Apply(field wheel.Field, v wheel.Value) Snapshot {
	slog.Debug(config.MsgWheelSettled,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyField, string(field),
		config.LogKeyValue, v.String(),
	)
	p.commit(p.state.With(field, v))
	p.emit()
	return p.snap
}

// Sync reports the current instant without changing anything.
func (p *Picker) Sync() Snapshot {
	p.emit()
	return p.snap
}

// SetBounds replaces the selectable range and reconciles.
func (p *Picker) SetBounds(b Bounds) Snapshot {
	p.c.Bounds = b
	p.commit(p.state)
	p.emit()
	return p.snap
}

// SetFormat changes the field formats. Switching the time format keeps the
// instant and converts the hour representation.
func (p *Picker) SetFormat(f wheel.Format) Snapshot {
	if f.TimeFormat != wheel.Clock12 {
		f.TimeFormat = wheel.Clock24
	}
	p.format = f
	p.commit(p.state.WithTimeFormat(f.TimeFormat))
	p.emit()
	return p.snap
}

// Snapshot returns the last committed state.
func (p *Picker) Snapshot() Snapshot {
	return p.snap
}

// State returns the committed fields.
func (p *Picker) State() State {
	return p.state
}

// Format returns the active field formats.
func (p *Picker) Format() wheel.Format {
	return p.format
}

// Bounds returns the active selectable range.
func (p *Picker) Bounds() Bounds {
	return p.c.Bounds
}

// Instant returns the last reported instant.
func (p *Picker) Instant() time.Time {
	return p.snap.Instant
}

// Now exposes the picker clock for labels that need a default date.
func (p *Picker) Now() time.Time {
	return p.clock.Now()
}

// commit is the only writer of p.state; every field changes together.
func (p *Picker) commit(s State) {
	next, instant, clamped := Resolve(s, p.c)
	p.state = next
	p.snap = Snapshot{
		State:   next,
		Lists:   Derive(next, p.c),
		Instant: instant,
		Clamped: clamped,
	}
}

func (p *Picker) emit() {
	slog.Debug(config.MsgPickerChanged,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyInstant, p.snap.Instant,
	)
	if p.onChange != nil {
		p.onChange(p.snap.Instant)
	}
}
