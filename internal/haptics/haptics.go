// Package haptics wraps best-effort tactile feedback.
package haptics

import (
	"fmt"
	"log"
)

// Vibrator produces a short tactile pulse.
type Vibrator interface {
	Vibrate() error
}

// VibratorFunc adapts a plain function to Vibrator.
type VibratorFunc func() error

func (f VibratorFunc) Vibrate() error { return f() }

// None is used on devices without a vibration motor.
var None Vibrator = VibratorFunc(func() error { return nil })

// Buzz triggers v and discards any failure, including a panic from the
// platform layer. Scoring must never depend on it.
func Buzz(v Vibrator) {
	if v == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[HAPTICS] vibrate panicked: %v", r)
		}
	}()
	if err := v.Vibrate(); err != nil {
		log.Printf("[HAPTICS] vibrate failed: %v", err)
	}
}

// Flash is a visual stand-in for devices without haptics: it calls pulse on
// every vibrate.
func Flash(pulse func()) Vibrator {
	return VibratorFunc(func() error {
		if pulse == nil {
			return fmt.Errorf("flash: no pulse target")
		}
		pulse()
		return nil
	})
}
