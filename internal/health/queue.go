package health

import (
	"sync"
	"time"
)

// queuedItem is one message parked while the circuit is open.
type queuedItem struct {
	payload    any
	enqueuedAt time.Time
}

// OfflineQueue is a bounded FIFO with per-item TTL. Overflow drops the
// oldest item; expiry is enforced lazily on Drain.
type OfflineQueue struct {
	mu       sync.Mutex
	items    []queuedItem
	capacity int
	ttl      time.Duration
	dropped  int
}

// NewOfflineQueue creates a queue with the given bounds.
func NewOfflineQueue(capacity int, ttl time.Duration) *OfflineQueue {
	if capacity <= 0 {
		capacity = 64
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &OfflineQueue{capacity: capacity, ttl: ttl}
}

// Push parks a message. Returns true if an older message was dropped to
// make room.
func (q *OfflineQueue) Push(payload any) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	dropped := false
	if len(q.items) >= q.capacity {
		q.items = q.items[1:]
		q.dropped++
		dropped = true
	}
	q.items = append(q.items, queuedItem{payload: payload, enqueuedAt: time.Now()})
	return dropped
}

// Drain removes and returns all still-fresh messages, discarding expired
// ones.
func (q *OfflineQueue) Drain() []any {
	q.mu.Lock()
	defer q.mu.Unlock()
	cutoff := time.Now().Add(-q.ttl)
	out := make([]any, 0, len(q.items))
	for _, item := range q.items {
		if item.enqueuedAt.After(cutoff) {
			out = append(out, item.payload)
		} else {
			q.dropped++
		}
	}
	q.items = nil
	return out
}

// Len returns the number of parked messages.
func (q *OfflineQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Dropped returns the total number of messages lost to overflow or TTL.
func (q *OfflineQueue) Dropped() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
