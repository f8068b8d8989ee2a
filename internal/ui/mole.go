package ui

import (
	"image"
	"image/color"
	"time"

	"TapAndPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

var (
	fieldColor = color.NRGBA{R: 144, G: 238, B: 144, A: 255}
	hitColor   = color.NRGBA{R: 214, G: 255, B: 214, A: 255}
)

// MoleWidget is the play field: a green lawn with the mole drawn at the
// game's current position.
type MoleWidget struct {
	widget.BaseWidget
	game       *state.Game
	mole       image.Image
	background *canvas.Rectangle
}

var _ fyne.Widget = (*MoleWidget)(nil)
var _ desktop.Mouseable = (*MoleWidget)(nil)
var _ mobile.Touchable = (*MoleWidget)(nil)

// NewMoleWidget creates the field. A nil mole image leaves the field empty
// but still playable.
func NewMoleWidget(g *state.Game, mole image.Image) *MoleWidget {
	m := &MoleWidget{
		game:       g,
		mole:       mole,
		background: canvas.NewRectangle(fieldColor),
	}
	m.ExtendBaseWidget(m)
	return m
}

func (m *MoleWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		m.game.OnTouch(toPoint(e.Position))
	}
}

func (m *MoleWidget) MouseUp(*desktop.MouseEvent) {}

func (m *MoleWidget) TouchDown(e *mobile.TouchEvent) {
	m.game.OnTouch(toPoint(e.Position))
}

func (m *MoleWidget) TouchUp(*mobile.TouchEvent) {}
func (m *MoleWidget) TouchCancel(*mobile.TouchEvent) {}

// Flash briefly lightens the lawn. Used as hit feedback where the device has
// no vibration motor.
func (m *MoleWidget) Flash() {
	anim := canvas.NewColorRGBAAnimation(hitColor, fieldColor, 150*time.Millisecond, func(c color.Color) {
		m.background.FillColor = c
		m.background.Refresh()
	})
	anim.Start()
}

func (m *MoleWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &moleWidgetRenderer{field: m}
	if m.mole != nil {
		r.image = canvas.NewImageFromImage(m.mole)
		r.image.FillMode = canvas.ImageFillContain
	}
	r.Refresh()
	return r
}

type moleWidgetRenderer struct {
	field *MoleWidget
	image *canvas.Image
}

func (r *moleWidgetRenderer) Objects() []fyne.CanvasObject {
	if r.image == nil {
		return []fyne.CanvasObject{r.field.background}
	}
	return []fyne.CanvasObject{r.field.background, r.image}
}

func (r *moleWidgetRenderer) Layout(size fyne.Size) {
	r.field.background.Resize(size)
	r.field.game.SetCanvasSize(state.Size{Width: size.Width, Height: size.Height})
}

func (r *moleWidgetRenderer) Refresh() {
	if r.image == nil {
		return
	}
	s := r.field.game.Snapshot()
	r.image.Move(fyne.NewPos(s.Mole.X, s.Mole.Y))
	r.image.Resize(fyne.NewSize(s.MoleSize, s.MoleSize))
	r.image.Refresh()
}

func (r *moleWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *moleWidgetRenderer) Destroy() {}
