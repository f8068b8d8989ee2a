package ui

import (
	"context"
	"image"
	"log"
	"time"

	"TapAndPaint/internal/assets"
	"TapAndPaint/internal/config"
	"TapAndPaint/internal/export"
	"TapAndPaint/internal/haptics"
	"TapAndPaint/internal/loop"
	"TapAndPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const saveTimeout = 30 * time.Second

// MoleScreen wires a game to its widgets.
type MoleScreen struct {
	Game   *state.Game
	Field  *MoleWidget
	Labels MoleLabels
	Reset  *widget.Button

	win fyne.Window
}

// NewMoleScreen builds the game screen. sched delivers timer ticks on the UI
// thread.
func NewMoleScreen(win fyne.Window, cfg state.GameConfig, sched loop.Scheduler, mole image.Image) *MoleScreen {
	s := &MoleScreen{win: win}
	s.Game = state.NewGame(cfg, sched, haptics.Flash(func() { s.Field.Flash() }), nil)
	s.Field = NewMoleWidget(s.Game, mole)
	s.Labels = NewMoleLabels(cfg.Seconds)
	s.Reset = widget.NewButton("Reset", s.Game.Start)

	s.Game.OnRedraw = s.Field.Refresh
	s.Game.OnScoreChanged = s.Labels.SetScore
	s.Game.OnTimeChanged = s.Labels.SetTime
	s.Game.OnGameOver = func(score, high int) {
		s.Labels.SetHighScore(high)
		if s.win != nil {
			dialog.ShowInformation("Game Over", gameOverText(score), s.win)
		}
	}
	return s
}

func (s *MoleScreen) Content() fyne.CanvasObject {
	header := container.NewHBox(s.Labels.Score, s.Labels.Time, s.Labels.HighScore)
	return container.NewBorder(header, s.Reset, nil, nil, s.Field)
}

// PaintScreen wires a drawing to its widgets.
type PaintScreen struct {
	Drawing *state.Drawing
	Board   *PaintWidget
	Toolbar fyne.CanvasObject

	win    fyne.Window
	dir    string
	radius float32
	clock  *state.TokenClock
	post   loop.Poster
}

// NewPaintScreen builds the paint screen. Exports land in dir; post hands
// their result back to the UI thread.
func NewPaintScreen(win fyne.Window, dir string, radius float32, post loop.Poster) *PaintScreen {
	if post == nil {
		post = loop.Immediate
	}
	s := &PaintScreen{
		Drawing: state.NewDrawing(),
		win:     win,
		dir:     dir,
		radius:  radius,
		clock:   state.NewTokenClock(nil),
		post:    post,
	}
	s.Board = NewPaintWidget(s.Drawing, radius)
	s.Drawing.OnRedraw = s.Board.Refresh
	s.Toolbar = NewPaintToolbar(PaintActions{
		SetColor: s.Drawing.SetColor,
		Clear:    s.Drawing.Clear,
		Save:     func() { s.Save(false, nil) },
		SavePDF:  func() { s.Save(true, nil) },
	})
	return s
}

func (s *PaintScreen) Content() fyne.CanvasObject {
	return container.NewBorder(nil, s.Toolbar, nil, nil, s.Board)
}

// Save exports the current drawing in the background. The outcome is shown
// in a dialog and, when done is set, passed to it on the UI thread.
func (s *PaintScreen) Save(asPDF bool, done func(path string, err error)) {
	opts := export.Options{
		Dir:    s.dir,
		Size:   s.Board.CanvasSize(),
		Scale:  s.Board.PixelScale(),
		Radius: s.radius,
		Clock:  s.clock,
	}
	points := s.Drawing.Points()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		write := export.PNG
		if asPDF {
			write = export.PDF
		}
		path, err := write(ctx, opts, points)

		s.post(func() {
			if err != nil {
				log.Printf("[PAINT] Save failed: %v", err)
				if s.win != nil {
					dialog.ShowError(err, s.win)
				}
			} else if s.win != nil {
				dialog.ShowInformation("Saved", savedText(path), s.win)
			}
			if done != nil {
				done(path, err)
			}
		})
	}()
}

// RunMole starts the MoleMash app and blocks until it quits.
func RunMole(cfg config.Config, mole image.Image) {
	a := app.NewWithID("com.tapandpaint.molemash")
	if icon, err := assets.Resource(assets.MoleName); err == nil {
		a.SetIcon(icon)
	}
	w := a.NewWindow("MoleMash")
	w.Resize(fyne.NewSize(480, 800))

	screen := NewMoleScreen(w, cfg.Game(), loop.NewScheduler(fyne.Do), mole)
	w.SetContent(screen.Content())
	a.Lifecycle().SetOnStarted(screen.Game.Start)
	a.Lifecycle().SetOnStopped(screen.Game.Stop)

	w.ShowAndRun()
}

// RunPaint starts the PaintPot app and blocks until it quits.
func RunPaint(cfg config.Config) {
	a := app.NewWithID("com.tapandpaint.paintpot")
	w := a.NewWindow("PaintPot")
	w.Resize(fyne.NewSize(480, 800))

	dir := cfg.SaveDir
	if dir == "" {
		dir = a.Storage().RootURI().Path()
	}
	log.Printf("[PAINT] Saving drawings to %s", dir)

	screen := NewPaintScreen(w, dir, cfg.DotRadius, fyne.Do)
	w.SetContent(screen.Content())
	w.ShowAndRun()
}
