// Copyright (c) 2026 Bookdex. All rights reserved.
// Author: dev@bookdex.app

package favorites

import "sync"

// subscriberBuffer bounds each subscriber channel. A subscriber that falls
// this far behind starts losing events; favorite toggles are infrequent
// enough that this is a non-issue in practice.
const subscriberBuffer = 16

// Notifier fans [Change] events out to every subscriber.
//
// # Delivery
//
// Publish never blocks: a full subscriber channel drops the event for that
// subscriber only. Consumers that must not miss state changes (none today)
// would re-read membership through the store instead.
type Notifier struct {
	mu          sync.Mutex
	nextID      int
	subscribers map[int]chan Change
}

func NewNotifier() *Notifier {
	return &Notifier{subscribers: make(map[int]chan Change)}
}

// Subscribe registers a new listener and returns its channel plus a cancel
// function. The cancel function closes the channel; callers must stop
// receiving after cancelling.
func (n *Notifier) Subscribe() (<-chan Change, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	ch := make(chan Change, subscriberBuffer)
	n.subscribers[id] = ch

	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		if existing, found := n.subscribers[id]; found {
			delete(n.subscribers, id)
			close(existing)
		}
	}
	return ch, cancel
}

// Publish delivers the change to all current subscribers without blocking.
func (n *Notifier) Publish(change Change) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subscribers {
		select {
		case ch <- change:
		default:
			// Slow subscriber; drop rather than stall the toggle path.
		}
	}
}

// SubscriberCount reports the number of active listeners.
func (n *Notifier) SubscriberCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subscribers)
}
