// Package feedback delivers tactile-style cues for game events.
//
// A terminal has no vibration motor, so the cues become a terminal bell and log
// lines. Delivery is best-effort: a failing notifier never affects the game.
package feedback

import (
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// Event is a feedback cue.
type Event int

const (
	// Light accompanies a new game or a move without merges.
	Light Event = iota
	// Medium accompanies a move that merged tiles.
	Medium
	// Success is sent once when the win tile first appears.
	Success
	// Error is sent when no move remains.
	Error
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Notifier delivers feedback events.
type Notifier interface {
	Notify(e Event) error
}

// Send delivers e and discards any failure after logging it at debug level.
func Send(n Notifier, e Event, logger *log.Logger) {
	if n == nil {
		return
	}
	if err := n.Notify(e); err != nil && logger != nil {
		logger.Debug("feedback dropped", "event", e, "error", err)
	}
}

// Nop ignores every event.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(Event) error { return nil }

// Bell rings the terminal bell for Success and Error.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell returns a Bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Notify implements Notifier.
func (b *Bell) Notify(e Event) error {
	if e != Success && e != Error {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.w.Write([]byte{'\a'})
	return err
}

// LogNotifier records every event at debug level.
type LogNotifier struct {
	Logger *log.Logger
}

// Notify implements Notifier.
func (l LogNotifier) Notify(e Event) error {
	if l.Logger == nil {
		return nil
	}
	l.Logger.Debug("feedback", "event", e)
	return nil
}

// Multi fans an event out to several notifiers.
type Multi []Notifier

// Notify delivers e to every notifier, even after a failure, and joins the errors.
func (m Multi) Notify(e Event) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
