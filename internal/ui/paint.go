package ui

import (
	"image"
	"image/color"

	"TapAndPaint/internal/render"
	"TapAndPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// PaintWidget turns pointer input into dots on a state.Drawing and shows the
// result.
type PaintWidget struct {
	widget.BaseWidget
	drawing *state.Drawing
	radius  float32

	device  state.DeviceKind
	pressed bool
}

var _ fyne.Widget = (*PaintWidget)(nil)
var _ fyne.Draggable = (*PaintWidget)(nil)
var _ desktop.Mouseable = (*PaintWidget)(nil)
var _ desktop.Hoverable = (*PaintWidget)(nil)
var _ mobile.Touchable = (*PaintWidget)(nil)

func NewPaintWidget(d *state.Drawing, radius float32) *PaintWidget {
	p := &PaintWidget{
		drawing: d,
		radius:  radius,
	}
	p.ExtendBaseWidget(p)
	return p
}

func toPoint(pos fyne.Position) state.Point {
	return state.Point{X: pos.X, Y: pos.Y}
}

// CanvasSize is the drawable area in canvas units.
func (p *PaintWidget) CanvasSize() state.Size {
	s := p.Size()
	return state.Size{Width: s.Width, Height: s.Height}
}

// PixelScale is the number of device pixels per canvas unit.
func (p *PaintWidget) PixelScale() float32 {
	app := fyne.CurrentApp()
	if app == nil {
		return 1
	}
	if c := app.Driver().CanvasForObject(p); c != nil {
		return c.Scale()
	}
	return 1
}

func (p *PaintWidget) MouseDown(e *desktop.MouseEvent) {
	p.device = state.DeviceMouse
	p.pressed = e.Button == desktop.MouseButtonPrimary
	if p.pressed {
		p.drawing.OnPointerEvent(toPoint(e.Position), state.DeviceMouse, state.ActionPressed, true)
	}
}

func (p *PaintWidget) MouseUp(e *desktop.MouseEvent) {
	p.pressed = false
	p.drawing.OnPointerEvent(toPoint(e.Position), state.DeviceMouse, state.ActionReleased, false)
}

func (p *PaintWidget) MouseMoved(e *desktop.MouseEvent) {
	p.drawing.OnPointerEvent(toPoint(e.Position), state.DeviceMouse, state.ActionMoved, p.pressed)
}

func (p *PaintWidget) MouseIn(*desktop.MouseEvent) {}
func (p *PaintWidget) MouseOut() {}

func (p *PaintWidget) TouchDown(e *mobile.TouchEvent) {
	p.device = state.DeviceTouch
	p.pressed = true
	p.drawing.OnPointerEvent(toPoint(e.Position), state.DeviceTouch, state.ActionPressed, true)
}

func (p *PaintWidget) TouchUp(e *mobile.TouchEvent) {
	p.pressed = false
	p.drawing.OnPointerEvent(toPoint(e.Position), state.DeviceTouch, state.ActionReleased, false)
}

func (p *PaintWidget) TouchCancel(e *mobile.TouchEvent) {
	p.pressed = false
	p.drawing.OnPointerEvent(toPoint(e.Position), state.DeviceTouch, state.ActionCancelled, false)
}

// Dragged reports movement of whichever device started the gesture.
func (p *PaintWidget) Dragged(e *fyne.DragEvent) {
	p.drawing.OnPointerEvent(toPoint(e.Position), p.device, state.ActionMoved, p.pressed)
}

func (p *PaintWidget) DragEnd() {
	if p.device == state.DeviceMouse {
		p.pressed = false
	}
}

func (p *PaintWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &paintWidgetRenderer{board: p}
	r.raster = canvas.NewRaster(r.draw)
	return r
}

type paintWidgetRenderer struct {
	board   *PaintWidget
	raster  *canvas.Raster
	painter render.Painter
}

func (r *paintWidgetRenderer) draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scale := float32(1)
	if width := r.board.Size().Width; width > 0 {
		scale = float32(w) / width
	}
	r.painter.Draw(img, r.board.drawing.Points(), render.Options{
		Background: color.Transparent,
		Radius:     r.board.radius,
		Scale:      scale,
	})
	return img
}

func (r *paintWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *paintWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *paintWidgetRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *paintWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *paintWidgetRenderer) Destroy() {}
