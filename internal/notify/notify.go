// Package notify implements the transient notifications ("toasts") raised by
// page actions.
package notify

import (
	"time"

	"github.com/google/uuid"
)

// Notifier is the capability page actions use to raise a notification.
// It is fire-and-forget.
type Notifier interface {
	Notify(title, description string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(title, description string)

func (f NotifierFunc) Notify(title, description string) { f(title, description) }

// Event is a single notification.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether e is no longer displayed at now.
func (e Event) Expired(now time.Time) bool {
	return !now.Before(e.ExpiresAt)
}

// Remaining is how long e stays on screen after now.
func (e Event) Remaining(now time.Time) time.Duration {
	if e.Expired(now) {
		return 0
	}
	return e.ExpiresAt.Sub(now)
}

type Option func(*Dispatcher)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithEvents seeds the queue, typically with events carried over from a
// previous request. Expired events are dropped.
func WithEvents(events []Event) Option {
	return func(d *Dispatcher) { d.queue = append(d.queue, events...) }
}

// Dispatcher is a FIFO notification queue with a display duration and a
// bound on simultaneously visible events. The zero value is not usable; use
// New.
type Dispatcher struct {
	ttl   time.Duration
	limit int
	now   func() time.Time
	queue []Event
}

func New(ttl time.Duration, limit int, opts ...Option) *Dispatcher {
	if limit < 1 {
		limit = 1
	}
	d := &Dispatcher{ttl: ttl, limit: limit, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	d.Prune(d.now())
	d.trim()
	return d
}

// Notify enqueues a new event. The oldest events are evicted when the queue
// exceeds its limit.
func (d *Dispatcher) Notify(title, description string) {
	now := d.now()
	d.Prune(now)
	d.queue = append(d.queue, Event{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		ExpiresAt:   now.Add(d.ttl),
	})
	d.trim()
}

// Prune drops events that have expired at now.
func (d *Dispatcher) Prune(now time.Time) {
	kept := d.queue[:0]
	for _, e := range d.queue {
		if !e.Expired(now) {
			kept = append(kept, e)
		}
	}
	d.queue = kept
}

// Active returns the events still displayed at now, oldest first.
func (d *Dispatcher) Active(now time.Time) []Event {
	out := make([]Event, 0, len(d.queue))
	for _, e := range d.queue {
		if !e.Expired(now) {
			out = append(out, e)
		}
	}
	return out
}

// Now is the dispatcher's clock.
func (d *Dispatcher) Now() time.Time { return d.now() }

func (d *Dispatcher) trim() {
	if n := len(d.queue) - d.limit; n > 0 {
		d.queue = append([]Event(nil), d.queue[n:]...)
	}
}
