package ui

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"TapAndPaint/internal/loop"
	"TapAndPaint/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTicker struct {
	d       time.Duration
	fn      func()
	stopped bool
}

func (t *manualTicker) Stop() { t.stopped = true }

type manualScheduler struct{ tickers []*manualTicker }

func (s *manualScheduler) Every(d time.Duration, fn func()) loop.Ticker {
	t := &manualTicker{d: d, fn: fn}
	s.tickers = append(s.tickers, t)
	return t
}

func (s *manualScheduler) fire(d time.Duration) {
	for _, t := range s.tickers {
		if t.d == d && !t.stopped {
			t.fn()
		}
	}
}

func primaryAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func newMoleScreen(t *testing.T) (*MoleScreen, *manualScheduler) {
	t.Helper()
	test.NewTempApp(t)
	sched := &manualScheduler{}
	mole := image.NewRGBA(image.Rect(0, 0, 8, 8))
	s := NewMoleScreen(nil, state.DefaultGameConfig(), sched, mole)
	test.WidgetRenderer(s.Field)
	s.Field.Resize(fyne.NewSize(400, 500))
	return s, sched
}

func TestMoleFieldReportsCanvasSize(t *testing.T) {
	s, sched := newMoleScreen(t)
	s.Game.Start()
	for i := 0; i < 100; i++ {
		sched.fire(800 * time.Millisecond)
		m := s.Game.Snapshot().Mole
		require.LessOrEqual(t, m.X, float32(300))
		require.LessOrEqual(t, m.Y, float32(400))
	}
}

func TestMoleFieldScoresPrimaryPress(t *testing.T) {
	s, _ := newMoleScreen(t)
	s.Game.Start()

	s.Field.MouseDown(primaryAt(10, 10))
	assert.Equal(t, 1, s.Game.Snapshot().Score)
	assert.Equal(t, "Score: 1", s.Labels.Score.Text)

	secondary := primaryAt(10, 10)
	secondary.Button = desktop.MouseButtonSecondary
	s.Field.MouseDown(secondary)
	assert.Equal(t, 1, s.Game.Snapshot().Score)

	s.Field.TouchDown(touchAt(50, 50))
	assert.Equal(t, 2, s.Game.Snapshot().Score)
}

func TestMoleLabelsFollowGame(t *testing.T) {
	s, sched := newMoleScreen(t)
	assert.Equal(t, "Time: 30", s.Labels.Time.Text)
	assert.Equal(t, "High Score: 0", s.Labels.HighScore.Text)

	s.Game.Start()
	s.Field.MouseDown(primaryAt(1, 1))
	sched.fire(time.Second)
	assert.Equal(t, "Time: 29", s.Labels.Time.Text)

	for i := 0; i < 29; i++ {
		sched.fire(time.Second)
	}
	assert.Equal(t, "Time: 0", s.Labels.Time.Text)
	assert.Equal(t, "High Score: 1", s.Labels.HighScore.Text)

	test.Tap(s.Reset)
	assert.Equal(t, "Score: 0", s.Labels.Score.Text)
	assert.Equal(t, "Time: 30", s.Labels.Time.Text)
	assert.Equal(t, "High Score: 1", s.Labels.HighScore.Text)
}

func TestMoleFieldWithoutImage(t *testing.T) {
	test.NewTempApp(t)
	g := state.NewGame(state.DefaultGameConfig(), &manualScheduler{}, nil, nil)
	field := NewMoleWidget(g, nil)
	r := test.WidgetRenderer(field)
	assert.Len(t, r.Objects(), 1)
	assert.NotPanics(t, field.Refresh)
}

func newPaintScreen(t *testing.T) *PaintScreen {
	t.Helper()
	test.NewTempApp(t)
	s := NewPaintScreen(nil, t.TempDir(), 10, loop.Immediate)
	w := test.NewWindow(s.Content())
	t.Cleanup(w.Close)
	s.Board.Resize(fyne.NewSize(120, 90))
	return s
}

func TestPaintMouseHoverDoesNotDraw(t *testing.T) {
	s := newPaintScreen(t)
	s.Board.MouseMoved(primaryAt(5, 5))
	assert.Zero(t, s.Drawing.Len())

	s.Board.MouseDown(primaryAt(5, 5))
	s.Board.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(6, 6)}})
	s.Board.DragEnd()
	s.Board.MouseUp(primaryAt(6, 6))
	s.Board.MouseMoved(primaryAt(7, 7))
	assert.Equal(t, 2, s.Drawing.Len())
}

func TestPaintTouchDragDraws(t *testing.T) {
	s := newPaintScreen(t)
	s.Board.TouchDown(touchAt(10, 10))
	s.Board.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(12, 12)}})
	s.Board.TouchUp(touchAt(12, 12))
	assert.Equal(t, 2, s.Drawing.Len())
}

func TestSwatchSelectsColor(t *testing.T) {
	s := newPaintScreen(t)
	blue := color.NRGBA{B: 255, A: 255}
	test.Tap(newColorSwatch(blue, s.Drawing.SetColor))
	assert.Equal(t, blue, s.Drawing.ActiveColor())
}

func TestPaintSaveWritesPNG(t *testing.T) {
	s := newPaintScreen(t)
	s.Board.TouchDown(touchAt(20, 20))

	type result struct {
		path string
		err  error
	}
	done := make(chan result, 1)
	s.Save(false, func(path string, err error) { done <- result{path, err} })

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, s.dir, filepath.Dir(r.path))
		_, err := os.Stat(r.path)
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("save did not finish")
	}
}

func TestPaintSaveReportsFailure(t *testing.T) {
	s := newPaintScreen(t)
	blocker := filepath.Join(s.dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	s.dir = blocker

	done := make(chan error, 1)
	s.Save(true, func(_ string, err error) { done <- err })

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("save did not finish")
	}
}
