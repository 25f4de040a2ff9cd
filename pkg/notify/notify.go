// Package notify provides a minimal change notification mechanism used by the
// frame decoders to tell a display layer that their raster has new content.
package notify

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Handle identifies a subscription.
type Handle uuid.UUID

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Subject is implemented by anything that publishes change notifications.
type Subject interface {
	Subscribe(fn func() error) Handle
	Unsubscribe(h Handle) bool
}

// SubscriberError wraps an error returned by a subscriber callback.
type SubscriberError struct {
	Handle Handle
	Err    error
}

func (e *SubscriberError) Error() string {
	return fmt.Sprintf("subscriber %s: %v", e.Handle, e.Err)
}

func (e *SubscriberError) Unwrap() error {
	return e.Err
}

type subscription struct {
	handle Handle
	fn     func() error
}

// Notifier keeps subscribers in registration order. The zero value is ready to use.
type Notifier struct {
	mu   sync.Mutex
	subs []subscription
}

// Subscribe registers fn and returns a handle that can be passed to Unsubscribe.
func (n *Notifier) Subscribe(fn func() error) Handle {
	h := Handle(uuid.New())

	n.mu.Lock()
	n.subs = append(n.subs, subscription{handle: h, fn: fn})
	n.mu.Unlock()

	return h
}

// Unsubscribe removes the subscription identified by h. It reports whether the
// subscription existed.
func (n *Notifier) Unsubscribe(h Handle) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, sub := range n.subs {
		if sub.handle == h {
			n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

// NotifyChanged calls every subscriber synchronously, in registration order,
// on the caller's goroutine. The first subscriber to return an error stops
// the chain and its error is returned as a *SubscriberError. Panics are not
// recovered.
func (n *Notifier) NotifyChanged() error {
	n.mu.Lock()
	subs := n.subs
	n.mu.Unlock()

	for _, sub := range subs {
		if err := sub.fn(); err != nil {
			return &SubscriberError{Handle: sub.handle, Err: err}
		}
	}
	return nil
}
