package store

import (
	"sync"
	"time"
)

// DefaultNotifyTTL is how long a notification stays visible before
// auto-hiding.
const DefaultNotifyTTL = 3000 * time.Millisecond

type Notification struct {
	Open    bool
	Message string
	Item    any
}

// Notifier is a single-slot feedback channel, not a queue: a second Show
// within the window replaces the first atomically and the first is never
// seen again. Each Show restarts the auto-hide timer.
//
// The generation counter guards against a timer callback that has already
// fired and is waiting on the mutex while a new Show replaces the slot:
// Stop cannot cancel such a callback, so the callback re-checks that no
// Show or Hide superseded it before closing the slot.
type Notifier struct {
	mu    sync.Mutex
	cur   Notification
	timer *time.Timer
	gen   uint64
	ttl   time.Duration
}

func NewNotifier() *Notifier {
	return &Notifier{ttl: DefaultNotifyTTL}
}

func (n *Notifier) Show(message string, item any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.cur = Notification{Open: true, Message: message, Item: item}
	n.timer = time.AfterFunc(n.ttl, func() { n.expire(gen) })
}

// expire closes the slot only if the timer that fired it is still current.
func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if gen != n.gen {
		return
	}
	n.timer = nil
	n.cur = Notification{}
}

func (n *Notifier) Hide() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.gen++
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.cur = Notification{}
}

func (n *Notifier) Snapshot() Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cur
}
