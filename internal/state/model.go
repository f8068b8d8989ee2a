package state

import (
	"image/color"
)

type Point struct{ X, Y float32 }

// StrokePoint is one recorded touch sample. It keeps the colour that was
// active when it was recorded.
type StrokePoint struct {
	Point
	Color color.Color
}

// Size is the live size of a drawing surface in canvas units.
type Size struct{ Width, Height float32 }

type DeviceKind int

const (
	DeviceTouch DeviceKind = iota
	DeviceMouse
	DevicePen
)

func (d DeviceKind) String() string {
	switch d {
	case DeviceMouse:
		return "mouse"
	case DevicePen:
		return "pen"
	default:
		return "touch"
	}
}

type ActionKind int

const (
	ActionPressed ActionKind = iota
	ActionMoved
	ActionReleased
	ActionCancelled
)

func (a ActionKind) String() string {
	switch a {
	case ActionPressed:
		return "pressed"
	case ActionMoved:
		return "moved"
	case ActionReleased:
		return "released"
	default:
		return "cancelled"
	}
}
