// Package notify implements the transient status-message surface of the
// client. At most one notification is visible; each new one preempts the
// previous and schedules its own dismissal. There is no queue: when several
// actions complete in quick succession only the latest message survives,
// which is an accepted tradeoff, not a bug.
package notify

import (
	"sync"
	"time"
)

// Kind tags a notification for styling by the rendering layer.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Dismissal delays per message class.
const (
	// SessionNoticeTTL applies to session-lifecycle messages
	// (login/logout outcomes).
	SessionNoticeTTL = 3 * time.Second

	// RosterNoticeTTL applies to roster-action outcomes
	// (signup/unregister success or failure).
	RosterNoticeTTL = 5 * time.Second
)

// Notification is one ephemeral status message.
type Notification struct {
	Text      string
	Kind      Kind
	ExpiresAt time.Time
}

// Channel holds the single visible notification and its dismissal timer.
// Safe for concurrent use.
type Channel struct {
	mu       sync.Mutex
	current  *Notification
	timer    *time.Timer
	gen      uint64
	listener func(Notification)

	now func() time.Time // test seam
}

func NewChannel() *Channel {
	return &Channel{now: time.Now}
}

// SetListener registers a callback invoked on every Show, letting the
// rendering layer print or display the message as it arrives. Expiry does
// not invoke the listener; readers poll Current instead.
func (c *Channel) SetListener(fn func(Notification)) {
	c.mu.Lock()
	c.listener = fn
	c.mu.Unlock()
}

// Show replaces the current notification and restarts the dismissal timer.
func (c *Channel) Show(text string, kind Kind, ttl time.Duration) {
	c.mu.Lock()

	c.gen++
	gen := c.gen
	n := Notification{Text: text, Kind: kind, ExpiresAt: c.now().Add(ttl)}
	c.current = &n

	if c.timer != nil {
		c.timer.Stop()
	}
	// The generation guard keeps a stale timer from clearing a newer
	// notification.
	c.timer = time.AfterFunc(ttl, func() { c.expire(gen) })

	listener := c.listener
	c.mu.Unlock()

	if listener != nil {
		listener(n)
	}
}

// Current returns the visible notification, if any.
func (c *Channel) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

// Clear dismisses the current notification immediately.
func (c *Channel) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.current = nil
}

func (c *Channel) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == gen {
		c.current = nil
	}
}
