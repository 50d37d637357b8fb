// Package notify holds the transient one-line notification shown at the
// bottom of the dashboard. Only one message exists at a time; setting a new
// one replaces the old one and restarts its lifetime.
package notify

import "time"

// Notice is a single transient message with a deadline.
type Notice struct {
	message  string
	deadline time.Time
	now      func() time.Time
}

// New returns an empty Notice using the wall clock.
func New() *Notice {
	return &Notice{now: time.Now}
}

// NewWithClock returns a Notice using the supplied clock. Tests use this.
func NewWithClock(now func() time.Time) *Notice {
	return &Notice{now: now}
}

// Set replaces the current message and arms it for ttl from now.
func (n *Notice) Set(message string, ttl time.Duration) {
	n.message = message
	n.deadline = n.now().Add(ttl)
}

// Clear drops the current message immediately.
func (n *Notice) Clear() {
	n.message = ""
	n.deadline = time.Time{}
}

// ExpireIfDue clears the message once its deadline has passed. It reports
// whether a message remains visible.
func (n *Notice) ExpireIfDue() bool {
	if n.message == "" {
		return false
	}
	if !n.now().Before(n.deadline) {
		n.Clear()
		return false
	}
	return true
}

// Message returns the visible message, or "" when nothing is showing.
func (n *Notice) Message() string {
	if !n.ExpireIfDue() {
		return ""
	}
	return n.message
}
