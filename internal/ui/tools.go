package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Palette is the fixed set of inks offered by the paint toolbar.
var Palette = []color.Color{
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{G: 128, A: 255},         // Green
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
	color.Black,
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(40, 40))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// PaintActions are the callbacks behind the paint toolbar buttons.
type PaintActions struct {
	SetColor func(color.Color)
	Clear    func()
	Save     func()
	SavePDF  func()
}

// NewPaintToolbar builds the palette row and the clear/save row.
func NewPaintToolbar(a PaintActions) fyne.CanvasObject {
	swatches := make([]fyne.CanvasObject, 0, len(Palette))
	for _, c := range Palette {
		swatches = append(swatches, newColorSwatch(c, a.SetColor))
	}
	colorBox := container.NewHBox(swatches...)

	actions := container.NewHBox(
		widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), a.Clear),
		layout.NewSpacer(),
		widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), a.Save),
		widget.NewButtonWithIcon("Save PDF", theme.FileIcon(), a.SavePDF),
	)

	return container.NewVBox(
		container.NewHBox(widget.NewLabel("Color:"), colorBox),
		actions,
	)
}

// MoleLabels are the text readouts above the play field.
type MoleLabels struct {
	Score     *widget.Label
	Time      *widget.Label
	HighScore *widget.Label
}

func NewMoleLabels(timeLeft int) MoleLabels {
	l := MoleLabels{
		Score:     widget.NewLabel(""),
		Time:      widget.NewLabel(""),
		HighScore: widget.NewLabel(""),
	}
	l.SetScore(0)
	l.SetTime(timeLeft)
	l.SetHighScore(0)
	return l
}

func (l MoleLabels) SetScore(score int) { l.Score.SetText(scoreText(score)) }
func (l MoleLabels) SetTime(timeLeft int) { l.Time.SetText(timeText(timeLeft)) }
func (l MoleLabels) SetHighScore(high int) { l.HighScore.SetText(highScoreText(high)) }
