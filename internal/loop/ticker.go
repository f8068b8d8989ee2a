// Package loop runs periodic timers and hands each tick to the goroutine that
// owns the UI.
package loop

import (
	"sync"
	"time"
)

// Poster runs fn on the thread that owns the presentation surface.
// In the apps this is fyne.Do.
type Poster func(fn func())

// Immediate runs fn on the calling goroutine. Useful in tests and headless
// tools where there is no UI thread to marshal onto.
func Immediate(fn func()) { fn() }

// Ticker is a running periodic timer.
type Ticker interface {
	// Stop cancels the timer. Stopping twice is a no-op.
	Stop()
}

// Scheduler arms periodic timers.
type Scheduler interface {
	Every(d time.Duration, fn func()) Ticker
}

type scheduler struct {
	post Poster
}

// NewScheduler returns a Scheduler whose ticks are delivered through post.
func NewScheduler(post Poster) Scheduler {
	if post == nil {
		post = Immediate
	}
	return &scheduler{post: post}
}

func (s *scheduler) Every(d time.Duration, fn func()) Ticker {
	t := &ticker{
		t:    time.NewTicker(d),
		done: make(chan struct{}),
	}
	go func() {
		for {
			select {
			case <-t.done:
				return
			case <-t.t.C:
				s.post(func() {
					if t.stopped() {
						return
					}
					fn()
				})
			}
		}
	}()
	return t
}

type ticker struct {
	t    *time.Ticker
	done chan struct{}
	once sync.Once
}

func (t *ticker) Stop() {
	t.once.Do(func() {
		t.t.Stop()
		close(t.done)
	})
}

func (t *ticker) stopped() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// StopAll stops every non-nil ticker.
func StopAll(ts ...Ticker) {
	for _, t := range ts {
		if t != nil {
			t.Stop()
		}
	}
}
