package wheel

import (
	"log/slog"
	"math"

	"github.com/tartampluch/go-datewheel/internal/config"
)

// LoopMultiplier is how many copies of the base list a looping wheel displays.
// Three copies leave a full list of headroom on each side of the middle copy.
const LoopMultiplier = 3

// Options configures the geometry and looping behavior of a Wheel.
type Options struct {
	ItemExtent  float32 // Fixed row pitch.
	VisibleRows int     // Rows shown in the viewport.
	Loop        bool
}

// CenterRow is the viewport row that holds the selected item.
func (o Options) CenterRow() int {
	return o.VisibleRows / 2
}

// Normalized fills unset geometry with the stock defaults.
func (o Options) Normalized() Options {
	if o.ItemExtent <= 0 {
		o.ItemExtent = config.DefaultItemHeight
	}
	if o.VisibleRows <= 0 {
		o.VisibleRows = config.DefaultVisibleRows
	}
	return o
}

// Command tells the host scroll primitive where to go.
// The engine never touches a live scroll handle; the host executes commands.
type Command struct {
	Index    int
	Offset   float32
	Animated bool
}

// Wheel is the selection engine behind one scrollable column.
// Item i of the displayed list sits on the center row when the scroll
// offset equals i * ItemExtent (the host pads the content by CenterRow rows).
type Wheel struct {
	opts    Options
	base    []Value
	items   []Value
	current Value
	center  int
}

// New builds a wheel and returns the command that anchors it on current.
// ok is false when current is not in base, in which case nothing moves.
func New(base []Value, current Value, opts Options) (w *Wheel, cmd Command, ok bool) {
	w = &Wheel{opts: opts.Normalized()}
	cmd, ok = w.SetList(base, current)
	return w, cmd, ok
}

// Options returns the normalized options the wheel was built with.
func (w *Wheel) Options() Options {
	return w.opts
}

// Base returns the caller's list.
func (w *Wheel) Base() []Value {
	return w.base
}

// Items returns the displayed list: the base list, or its looped repetition.
func (w *Wheel) Items() []Value {
	return w.items
}

// Current returns the value the wheel is anchored on.
func (w *Wheel) Current() Value {
	return w.current
}

// Center returns the tracked index nearest the viewport center.
func (w *Wheel) Center() int {
	return w.center
}

// IsActive reports whether displayed row i gets the active styling.
func (w *Wheel) IsActive(i int) bool {
	return i == w.center
}

// SetList replaces the base list and re-anchors on current.
func (w *Wheel) SetList(base []Value, current Value) (Command, bool) {
	w.base = append([]Value(nil), base...)
	w.items = w.base
	if w.opts.Loop && len(w.base) > 0 {
		w.items = make([]Value, 0, len(w.base)*LoopMultiplier)
		for i := 0; i < LoopMultiplier; i++ {
			w.items = append(w.items, w.base...)
		}
	}
	w.current = current
	return w.anchor()
}

// SetValue re-anchors the wheel on a value pushed down by its owner.
// Pushing the value the wheel already holds is a no-op.
func (w *Wheel) SetValue(v Value) (Command, bool) {
	if v.Equal(w.current) {
		return Command{}, false
	}
	w.current = v
	return w.anchor()
}

// Scroll tracks a live offset during a drag and reports whether the
// active row changed.
func (w *Wheel) Scroll(offset float32) bool {
	idx := w.indexAt(offset)
	changed := idx != w.center
	w.center = idx
	return changed
}

// Settle commits the offset where scroll momentum ended.
// For looping wheels a settle inside the first or last copy is silently moved
// by one list length into the middle copy before the value is read, so the
// reported value always matches the committed center index.
func (w *Wheel) Settle(offset float32) (Value, Command, bool) {
	n := len(w.base)
	if n == 0 {
		return Value{}, Command{}, false
	}

	idx := w.indexAt(offset)
	wrapped := false
	if w.opts.Loop {
		switch {
		case idx < n:
			idx += n
			wrapped = true
		case idx >= 2*n:
			idx -= n
			wrapped = true
		}
	}

	if wrapped {
		slog.Debug(config.MsgWheelWrap,
			config.LogKeyComponent, config.CompWheel,
			config.LogKeyIndex, idx,
			config.LogKeyCount, n,
		)
	}

	w.center = idx
	w.current = w.base[idx%n]

	return w.current, Command{
		Index:    idx,
		Offset:   w.offsetOf(idx),
		Animated: !wrapped,
	}, true
}

// ContentHeight is the full scrollable height including center padding.
func (w *Wheel) ContentHeight() float32 {
	return float32(len(w.items)+2*w.opts.CenterRow()) * w.opts.ItemExtent
}

// ViewportHeight is the height of the visible window.
func (w *Wheel) ViewportHeight() float32 {
	return float32(w.opts.VisibleRows) * w.opts.ItemExtent
}

// RowOffset is the content y-position of displayed row i.
func (w *Wheel) RowOffset(i int) float32 {
	return float32(i+w.opts.CenterRow()) * w.opts.ItemExtent
}

func (w *Wheel) anchor() (Command, bool) {
	idx := IndexOf(w.base, w.current)
	if idx < 0 {
		slog.Debug(config.MsgWheelNoAnchor,
			config.LogKeyComponent, config.CompWheel,
			config.LogKeyValue, w.current.String(),
		)
		return Command{}, false
	}
	if w.opts.Loop {
		idx += len(w.base)
	}
	w.center = idx
	return Command{Index: idx, Offset: w.offsetOf(idx)}, true
}

func (w *Wheel) indexAt(offset float32) int {
	if len(w.items) == 0 {
		return 0
	}
	idx := int(math.Round(float64(offset / w.opts.ItemExtent)))
	if idx < 0 {
		return 0
	}
	if idx >= len(w.items) {
		return len(w.items) - 1
	}
	return idx
}

func (w *Wheel) offsetOf(idx int) float32 {
	return float32(idx) * w.opts.ItemExtent
}

// WidthClass describes how the host should size a column.
type WidthClass int

const (
	WidthNone     WidthClass = iota // Empty list, zero width.
	WidthFixed                      // Two items or fewer, narrow fixed column.
	WidthFlexible                   // Shares the remaining space.
)

// Width returns the sizing class for a list of n items.
func Width(n int) WidthClass {
	switch {
	case n == 0:
		return WidthNone
	case n <= 2:
		return WidthFixed
	default:
		return WidthFlexible
	}
}
