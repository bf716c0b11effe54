// Package notification keeps the short-lived popups shown over the game.
// Every notification dismisses itself after a per-kind duration measured
// against the injected clock.
package notification

import (
	"fmt"
	"time"

	"github.com/automoto/tower-climb/clock"
	cfg "github.com/automoto/tower-climb/config"
)

type Kind string

const (
	Stat        Kind = "stat"
	Badge       Kind = "badge"
	Info        Kind = "info"
	Achievement Kind = "achievement"
)

// Duration is how long a notification of this kind stays up by default.
func (k Kind) Duration() time.Duration {
	switch k {
	case Stat:
		return cfg.Notification.Stat
	case Badge:
		return cfg.Notification.Badge
	case Achievement:
		return cfg.Notification.Achievement
	default:
		return cfg.Notification.Info
	}
}

type Notification struct {
	ID       string
	Kind     Kind
	Title    string
	Message  string
	Icon     string
	Duration time.Duration

	expires time.Time
}

type Queue struct {
	clock   clock.Clock
	items   []Notification
	counter int
}

func NewQueue(c clock.Clock) *Queue {
	if c == nil {
		c = clock.Real{}
	}
	return &Queue{clock: c}
}

// Show queues a notification with the default duration for its kind and
// returns its id.
func (q *Queue) Show(kind Kind, title, message string) string {
	return q.ShowFor(kind, title, message, kind.Duration())
}

// ShowFor queues a notification that stays up for d.
func (q *Queue) ShowFor(kind Kind, title, message string, d time.Duration) string {
	q.counter++
	n := Notification{
		ID:       fmt.Sprintf("notification-%d", q.counter),
		Kind:     kind,
		Title:    title,
		Message:  message,
		Duration: d,
		expires:  q.clock.Now().Add(d),
	}
	q.items = append(q.items, n)
	return n.ID
}

func (q *Queue) Dismiss(id string) {
	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			return
		}
	}
}

func (q *Queue) ClearAll() {
	q.items = nil
}

// Tick drops every expired notification and returns how many went.
func (q *Queue) Tick() int {
	now := q.clock.Now()
	kept := q.items[:0]
	for _, n := range q.items {
		if now.Before(n.expires) {
			kept = append(kept, n)
		}
	}
	removed := len(q.items) - len(kept)
	q.items = kept
	return removed
}

// Active returns a copy of the queued notifications, oldest first.
func (q *Queue) Active() []Notification {
	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

// Current is the notification on screen, the oldest one.
func (q *Queue) Current() (Notification, bool) {
	if len(q.items) == 0 {
		return Notification{}, false
	}
	return q.items[0], true
}

// Remaining is the time left before n expires.
func (q *Queue) Remaining(n Notification) time.Duration {
	left := n.expires.Sub(q.clock.Now())
	if left < 0 {
		return 0
	}
	return left
}
