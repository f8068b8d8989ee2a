package state

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"TapAndPaint/internal/haptics"
	"TapAndPaint/internal/loop"

	"github.com/google/uuid"
)

// GameConfig holds the tunables of a mole session.
type GameConfig struct {
	Seconds           int
	MoveInterval      time.Duration
	CountdownInterval time.Duration
	MoleSize          float32
}

func DefaultGameConfig() GameConfig {
	return GameConfig{
		Seconds:           30,
		MoveInterval:      800 * time.Millisecond,
		CountdownInterval: time.Second,
		MoleSize:          100,
	}
}

// Session is a read-only copy of the game state.
type Session struct {
	ID        string
	Score     int
	HighScore int
	TimeLeft  int
	Mole      Point
	MoleSize  float32
	Active    bool
}

// Game owns one mole session at a time. Every method is expected to run on
// the UI thread; the scheduler takes care of posting timer ticks there.
type Game struct {
	cfg      GameConfig
	sched    loop.Scheduler
	vibrator haptics.Vibrator
	rnd      *rand.Rand

	mu        sync.Mutex
	sessionID string
	canvas    Size
	score     int
	highScore int
	timeLeft  int
	mole      Point
	active    bool
	gen       uint64

	moveTicker      loop.Ticker
	countdownTicker loop.Ticker

	OnRedraw       func()
	OnScoreChanged func(score int)
	OnTimeChanged  func(timeLeft int)
	OnGameOver     func(score, highScore int)
}

func NewGame(cfg GameConfig, sched loop.Scheduler, v haptics.Vibrator, rnd *rand.Rand) *Game {
	def := DefaultGameConfig()
	if cfg.Seconds <= 0 {
		cfg.Seconds = def.Seconds
	}
	if cfg.MoveInterval <= 0 {
		cfg.MoveInterval = def.MoveInterval
	}
	if cfg.CountdownInterval <= 0 {
		cfg.CountdownInterval = def.CountdownInterval
	}
	if cfg.MoleSize <= 0 {
		cfg.MoleSize = def.MoleSize
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if v == nil {
		v = haptics.None
	}
	return &Game{
		cfg:      cfg,
		sched:    sched,
		vibrator: v,
		rnd:      rnd,
		timeLeft: cfg.Seconds,
	}
}

// SetCanvasSize records the live size of the play field.
func (g *Game) SetCanvasSize(s Size) {
	g.mu.Lock()
	g.canvas = s
	g.mu.Unlock()
}

// Start begins a fresh session, cancelling whatever was running.
func (g *Game) Start() {
	g.mu.Lock()
	loop.StopAll(g.moveTicker, g.countdownTicker)
	g.gen++
	gen := g.gen
	g.sessionID = uuid.NewString()
	g.score = 0
	g.timeLeft = g.cfg.Seconds
	g.active = true
	g.moveTicker = g.sched.Every(g.cfg.MoveInterval, func() { g.positionTick(gen) })
	g.countdownTicker = g.sched.Every(g.cfg.CountdownInterval, func() { g.countdownTick(gen) })
	id, timeLeft := g.sessionID, g.timeLeft
	g.mu.Unlock()

	log.Printf("[GAME] Session %s started (%ds)", id, timeLeft)
	g.notifyScore(0)
	g.notifyTime(timeLeft)
}

// Stop cancels the timers without touching the score.
func (g *Game) Stop() {
	g.mu.Lock()
	loop.StopAll(g.moveTicker, g.countdownTicker)
	g.active = false
	g.mu.Unlock()
}

// OnPositionTick moves the mole to a random spot inside the current canvas.
func (g *Game) OnPositionTick() {
	g.mu.Lock()
	gen := g.gen
	g.mu.Unlock()
	g.positionTick(gen)
}

func (g *Game) positionTick(gen uint64) {
	g.mu.Lock()
	if gen != g.gen {
		g.mu.Unlock()
		return
	}
	g.mole = RandomOrigin(g.rnd, g.canvas, g.cfg.MoleSize)
	g.mu.Unlock()

	if g.OnRedraw != nil {
		g.OnRedraw()
	}
}

// OnCountdownTick takes one second off the clock and ends the session when
// it runs out.
func (g *Game) OnCountdownTick() {
	g.mu.Lock()
	gen := g.gen
	g.mu.Unlock()
	g.countdownTick(gen)
}

func (g *Game) countdownTick(gen uint64) {
	g.mu.Lock()
	if gen != g.gen || !g.active {
		g.mu.Unlock()
		return
	}
	g.timeLeft--
	timeLeft := g.timeLeft
	if timeLeft > 0 {
		g.mu.Unlock()
		g.notifyTime(timeLeft)
		return
	}

	loop.StopAll(g.moveTicker, g.countdownTicker)
	g.active = false
	if g.score > g.highScore {
		g.highScore = g.score
	}
	id, score, high := g.sessionID, g.score, g.highScore
	g.mu.Unlock()

	log.Printf("[GAME] Session %s over: score=%d high=%d", id, score, high)
	g.notifyTime(timeLeft)
	if g.OnGameOver != nil {
		g.OnGameOver(score, high)
	}
}

// OnTouch scores a hit when p lands on the mole during an active session.
// The event is always reported as consumed.
func (g *Game) OnTouch(p Point) bool {
	g.mu.Lock()
	if !g.active || !HitTest(p, g.mole, g.cfg.MoleSize) {
		g.mu.Unlock()
		return true
	}
	g.score++
	score := g.score
	g.mu.Unlock()

	g.notifyScore(score)
	haptics.Buzz(g.vibrator)
	return true
}

// Snapshot returns a copy of the current session.
func (g *Game) Snapshot() Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Session{
		ID:        g.sessionID,
		Score:     g.score,
		HighScore: g.highScore,
		TimeLeft:  g.timeLeft,
		Mole:      g.mole,
		MoleSize:  g.cfg.MoleSize,
		Active:    g.active,
	}
}

func (g *Game) notifyScore(score int) {
	if g.OnScoreChanged != nil {
		g.OnScoreChanged(score)
	}
}

func (g *Game) notifyTime(timeLeft int) {
	if g.OnTimeChanged != nil {
		g.OnTimeChanged(timeLeft)
	}
}
