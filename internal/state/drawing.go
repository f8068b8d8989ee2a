package state

import (
	"image/color"
	"sync"
)

// DefaultColor is the ink the canvas starts with.
var DefaultColor color.Color = color.NRGBA{R: 255, A: 255}

// Drawing is the ordered list of dots on the paint canvas together with the
// ink used for the next ones.
type Drawing struct {
	mu     sync.RWMutex
	points []StrokePoint
	active color.Color

	OnRedraw func()
}

func NewDrawing() *Drawing {
	return &Drawing{
		points: make([]StrokePoint, 0),
		active: DefaultColor,
	}
}

// OnPointerEvent records a dot for press and drag samples.
//
// Mouse input reports movement with no button held, so a mouse move only
// counts while pressed. Touch and pen input only move while in contact.
// The event is always reported as consumed.
func (d *Drawing) OnPointerEvent(at Point, device DeviceKind, action ActionKind, pressed bool) bool {
	if !shouldAppend(device, action, pressed) {
		return true
	}

	d.mu.Lock()
	d.points = append(d.points, StrokePoint{Point: at, Color: d.active})
	d.mu.Unlock()

	d.redraw()
	return true
}

func shouldAppend(device DeviceKind, action ActionKind, pressed bool) bool {
	switch action {
	case ActionPressed:
		return true
	case ActionMoved:
		return device != DeviceMouse || pressed
	}
	return false
}

// SetColor changes the ink for dots recorded from now on.
func (d *Drawing) SetColor(c color.Color) {
	if c == nil {
		return
	}
	d.mu.Lock()
	d.active = c
	d.mu.Unlock()
}

func (d *Drawing) ActiveColor() color.Color {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.active
}

// Clear removes every dot.
func (d *Drawing) Clear() {
	d.mu.Lock()
	d.points = make([]StrokePoint, 0)
	d.mu.Unlock()

	d.redraw()
}

// Points returns a copy of the dots in draw order.
func (d *Drawing) Points() []StrokePoint {
	d.mu.RLock()
	defer d.mu.RUnlock()
	points := make([]StrokePoint, len(d.points))
	copy(points, d.points)
	return points
}

func (d *Drawing) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.points)
}

func (d *Drawing) redraw() {
	if d.OnRedraw != nil {
		d.OnRedraw()
	}
}
