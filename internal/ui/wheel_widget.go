package ui

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/wheel"
)

// Style holds the text styling shared by every wheel of a picker.
type Style struct {
	TextSizeActive   float32
	TextSizeInactive float32
	InactiveOpacity  float64
	Monospace        bool
}

// DefaultStyle returns the stock wheel text styling.
func DefaultStyle() Style {
	return Style{
		TextSizeActive:   config.DefaultTextSizeActive,
		TextSizeInactive: config.DefaultTextSizeInactive,
		InactiveOpacity:  config.InactiveOpacity,
	}
}

// WheelWidget renders a wheel.Wheel inside a vertical scroll container.
// It translates scroll events into engine calls and executes the commands
// the engine returns. All methods must run on the Fyne main goroutine.
type WheelWidget struct {
	widget.BaseWidget

	// OnSettle receives the committed value after scrolling comes to rest.
	OnSettle func(wheel.Value)

	engine *wheel.Wheel
	label  func(wheel.Value) string
	style  Style

	rows   []*canvas.Text
	strip  *fyne.Container
	scroll *container.Scroll
	anim   *fyne.Animation

	// programmatic is set while a command moves the scroll container,
	// so the resulting scroll callbacks are not mistaken for a drag.
	programmatic bool

	timerMu sync.Mutex
	timer   *time.Timer
}

// NewWheelWidget creates a wheel showing base and anchored on current.
func NewWheelWidget(base []wheel.Value, current wheel.Value, opts wheel.Options, style Style, label func(wheel.Value) string) *WheelWidget {
	w := &WheelWidget{style: style, label: label}
	if w.label == nil {
		w.label = wheel.Value.String
	}

	var cmd wheel.Command
	var ok bool
	w.engine, cmd, ok = wheel.New(base, current, opts)

	w.strip = container.New(&stripLayout{engine: w.engine})
	w.scroll = container.NewVScroll(w.strip)
	w.scroll.OnScrolled = w.scrolled
	w.rebuildRows()

	w.ExtendBaseWidget(w)
	if ok {
		w.execute(cmd)
	}
	return w
}

// Engine exposes the underlying selection state.
func (w *WheelWidget) Engine() *wheel.Wheel {
	return w.engine
}

// Offset returns the current scroll offset of the wheel.
func (w *WheelWidget) Offset() float32 {
	return w.scroll.Offset.Y
}

// Update pushes a list and value down from the owner. An unchanged list only
// re-anchors on the value; labels are always refreshed since they may depend
// on other fields.
func (w *WheelWidget) Update(base []wheel.Value, current wheel.Value, label func(wheel.Value) string) {
	if label != nil {
		w.label = label
	}

	var cmd wheel.Command
	var ok bool
	if sameValues(w.engine.Base(), base) {
		cmd, ok = w.engine.SetValue(current)
	} else {
		cmd, ok = w.engine.SetList(base, current)
		w.rebuildRows()
	}

	if ok {
		w.execute(cmd)
	}
	w.restyle()
}

// CreateRenderer implements fyne.Widget.
func (w *WheelWidget) CreateRenderer() fyne.WidgetRenderer {
	return &wheelRenderer{w: w}
}

// scrolled lets the engine track the live center row while the user drags.
func (w *WheelWidget) scrolled(pos fyne.Position) {
	if w.programmatic {
		return
	}
	if w.engine.Scroll(pos.Y) {
		w.restyle()
	}
	w.scheduleSettle()
}

// scheduleSettle restarts the idle timer; the wheel settles once scrolling
// has been quiet for config.SettleDelay.
func (w *WheelWidget) scheduleSettle() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(config.SettleDelay, func() {
		fyne.Do(w.settle)
	})
}

func (w *WheelWidget) settle() {
	v, cmd, ok := w.engine.Settle(w.scroll.Offset.Y)
	if !ok {
		return
	}
	w.execute(cmd)
	w.restyle()

	if w.OnSettle != nil {
		w.OnSettle(v)
	}
}

// execute moves the scroll container as the engine instructs.
func (w *WheelWidget) execute(cmd wheel.Command) {
	if w.anim != nil {
		w.anim.Stop()
		w.anim = nil
	}
	if !cmd.Animated {
		w.jump(cmd.Offset)
		return
	}

	from := w.scroll.Offset.Y
	to := cmd.Offset
	w.anim = fyne.NewAnimation(config.SnapDuration, func(p float32) {
		w.jump(from + (to-from)*p)
	})
	w.anim.Curve = fyne.AnimationEaseOut
	w.anim.Start()
}

func (w *WheelWidget) jump(y float32) {
	w.programmatic = true
	w.scroll.Offset = fyne.NewPos(0, y)
	w.scroll.Refresh()
	w.programmatic = false
}

func (w *WheelWidget) rebuildRows() {
	items := w.engine.Items()
	w.rows = make([]*canvas.Text, len(items))
	objects := make([]fyne.CanvasObject, len(items))
	for i := range items {
		t := canvas.NewText("", nil)
		t.Alignment = fyne.TextAlignCenter
		w.rows[i] = t
		objects[i] = t
	}
	w.strip.Objects = objects
	w.restyle()
}

// restyle applies active or inactive styling to every row.
func (w *WheelWidget) restyle() {
	items := w.engine.Items()
	fg := theme.Color(theme.ColorNameForeground)
	dim := fade(fg, w.style.InactiveOpacity)

	for i, t := range w.rows {
		if i >= len(items) {
			break
		}
		t.Text = w.label(items[i])
		t.TextStyle = fyne.TextStyle{Monospace: w.style.Monospace}
		if w.engine.IsActive(i) {
			t.TextSize = w.style.TextSizeActive
			t.TextStyle.Bold = true
			t.Color = fg
		} else {
			t.TextSize = w.style.TextSizeInactive
			t.Color = dim
		}
	}
	w.strip.Refresh()
}

func fade(c color.Color, opacity float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * opacity)
	return n
}

func sameValues(a, b []wheel.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// stripLayout stacks rows at a fixed pitch, padded by the center row above
// and below so every item can reach the center of the viewport.
type stripLayout struct {
	engine *wheel.Wheel
}

func (l *stripLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	extent := l.engine.Options().ItemExtent
	for i, o := range objects {
		h := o.MinSize().Height
		o.Move(fyne.NewPos(0, l.engine.RowOffset(i)+(extent-h)/2))
		o.Resize(fyne.NewSize(size.Width, h))
	}
}

func (l *stripLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width float32
	for _, o := range objects {
		width = fyne.Max(width, o.MinSize().Width)
	}
	return fyne.NewSize(width, l.engine.ContentHeight())
}

type wheelRenderer struct {
	w *WheelWidget
}

func (r *wheelRenderer) Layout(size fyne.Size) {
	r.w.scroll.Resize(size)
}

func (r *wheelRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.w.strip.MinSize().Width, r.w.engine.ViewportHeight())
}

func (r *wheelRenderer) Refresh() {
	r.w.scroll.Refresh()
}

func (r *wheelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.w.scroll}
}

func (r *wheelRenderer) Destroy() {
	r.w.timerMu.Lock()
	defer r.w.timerMu.Unlock()
	if r.w.timer != nil {
		r.w.timer.Stop()
	}
}
