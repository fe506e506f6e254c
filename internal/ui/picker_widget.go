package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datewheel/internal/config"
	"github.com/tartampluch/go-datewheel/internal/picker"
	"github.com/tartampluch/go-datewheel/internal/wheel"
)

// DateTimePicker lays out one WheelWidget per enabled field over a shared
// selection band and routes settled values through a picker.Picker.
type DateTimePicker struct {
	widget.BaseWidget

	picker   *picker.Picker
	names    wheel.Names
	geometry wheel.Options
	style    Style

	wheels  map[wheel.Field]*WheelWidget
	order   []wheel.Field
	band    *canvas.Rectangle
	content *fyne.Container
}

// NewDateTimePicker builds the wheels for every field p has enabled.
func NewDateTimePicker(p *picker.Picker, names wheel.Names, geometry wheel.Options, style Style) *DateTimePicker {
	d := &DateTimePicker{
		picker:   p,
		names:    names,
		geometry: geometry.Normalized(),
		style:    style,
	}
	d.band = canvas.NewRectangle(rgba(config.SelectionBandColor))
	d.band.CornerRadius = config.SelectionBandRadius
	d.content = container.New(&pickerLayout{d: d})
	d.build()

	d.ExtendBaseWidget(d)
	return d
}

// Picker returns the controller behind the wheels.
func (d *DateTimePicker) Picker() *picker.Picker {
	return d.picker
}

// Wheel returns the widget bound to field, or nil when it is disabled.
func (d *DateTimePicker) Wheel(field wheel.Field) *WheelWidget {
	return d.wheels[field]
}

// Fields lists the enabled fields in display order.
func (d *DateTimePicker) Fields() []wheel.Field {
	return d.order
}

// Configure swaps geometry, style and name tables and rebuilds every wheel.
func (d *DateTimePicker) Configure(geometry wheel.Options, style Style, names wheel.Names) {
	d.geometry = geometry.Normalized()
	d.style = style
	d.names = names
	d.Reload()
}

// Reload rebuilds the wheels after the picker format or bounds changed.
func (d *DateTimePicker) Reload() {
	d.build()
	d.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (d *DateTimePicker) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.content)
}

func (d *DateTimePicker) build() {
	snap := d.picker.Snapshot()
	format := d.picker.Format()

	d.wheels = make(map[wheel.Field]*WheelWidget)
	d.order = d.order[:0]
	objects := []fyne.CanvasObject{d.band}

	for _, f := range wheel.Fields {
		if !format.Enabled(f) {
			continue
		}
		field := f
		opts := d.geometry
		opts.Loop = field != wheel.FieldMeridiem

		w := NewWheelWidget(snap.Lists.For(field), snap.State.Value(field), opts, d.style, d.labeler(field, snap.State))
		w.OnSettle = func(v wheel.Value) {
			d.push(d.picker.Apply(field, v))
		}

		d.wheels[field] = w
		d.order = append(d.order, field)
		objects = append(objects, w)
	}

	d.content.Objects = objects
}

// push hands a reconciled snapshot down to every wheel.
func (d *DateTimePicker) push(snap picker.Snapshot) {
	for _, f := range d.order {
		d.wheels[f].Update(snap.Lists.For(f), snap.State.Value(f), d.labeler(f, snap.State))
	}
	d.content.Refresh()
}

func (d *DateTimePicker) labeler(field wheel.Field, s picker.State) func(wheel.Value) string {
	policy := wheel.LabelPolicy{
		Format: d.picker.Format(),
		Names:  d.names,
		Year:   s.Year,
		Month:  s.Month,
		Now:    d.picker.Now,
	}
	return func(v wheel.Value) string {
		return policy.Label(field, v)
	}
}

func rgba(c uint32) color.NRGBA {
	return color.NRGBA{R: uint8(c >> 24), G: uint8(c >> 16), B: uint8(c >> 8), A: uint8(c)}
}

// pickerLayout places the wheels side by side. Wheels of two values or fewer
// get a fixed narrow column, empty wheels collapse and the rest share the
// remaining width. The band covers the center row across all columns.
type pickerLayout struct {
	d *DateTimePicker
}

func (l *pickerLayout) widths(total float32) []float32 {
	d := l.d
	out := make([]float32, len(d.order))
	var fixed float32
	flexible := 0
	for i, f := range d.order {
		switch wheel.Width(len(d.wheels[f].Engine().Base())) {
		case wheel.WidthFixed:
			out[i] = config.FixedWheelWidth
			fixed += config.FixedWheelWidth
		case wheel.WidthFlexible:
			out[i] = -1
			flexible++
		}
	}
	if flexible == 0 {
		return out
	}

	share := fyne.Max((total-fixed)/float32(flexible), config.FlexibleWheelMinWidth)
	for i := range out {
		if out[i] < 0 {
			out[i] = share
		}
	}
	return out
}

func (l *pickerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	geo := l.d.geometry
	height := float32(geo.VisibleRows) * geo.ItemExtent
	top := fyne.Max((size.Height-height)/2, 0)

	l.d.band.Move(fyne.NewPos(0, top+float32(geo.CenterRow())*geo.ItemExtent))
	l.d.band.Resize(fyne.NewSize(size.Width, geo.ItemExtent))

	var x float32
	for i, width := range l.widths(size.Width) {
		w := l.d.wheels[l.d.order[i]]
		w.Move(fyne.NewPos(x, top))
		w.Resize(fyne.NewSize(width, height))
		x += width
	}
}

func (l *pickerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	geo := l.d.geometry
	var width float32
	for _, f := range l.d.order {
		w := l.d.wheels[f]
		switch wheel.Width(len(w.Engine().Base())) {
		case wheel.WidthFixed:
			width += config.FixedWheelWidth
		case wheel.WidthFlexible:
			width += fyne.Max(w.MinSize().Width, config.FlexibleWheelMinWidth)
		}
	}
	return fyne.NewSize(width, float32(geo.VisibleRows)*geo.ItemExtent)
}
