package health

import (
	"testing"
	"time"
)

func TestOfflineQueue_FIFO(t *testing.T) {
	q := NewOfflineQueue(8, time.Minute)
	q.Push("a")
	q.Push("b")
	q.Push("c")

	out := q.Drain()
	if len(out) != 3 {
		t.Fatalf("Drained %d items, want 3", len(out))
	}
	if out[0] != "a" || out[2] != "c" {
		t.Errorf("Order not preserved: %v", out)
	}
	if q.Len() != 0 {
		t.Errorf("Queue not emptied by Drain, len=%d", q.Len())
	}
}

func TestOfflineQueue_OverflowDropsOldest(t *testing.T) {
	q := NewOfflineQueue(2, time.Minute)
	q.Push("a")
	q.Push("b")
	if dropped := q.Push("c"); !dropped {
		t.Error("Overflow push should report a drop")
	}

	out := q.Drain()
	if len(out) != 2 || out[0] != "b" || out[1] != "c" {
		t.Errorf("Expected [b c] after drop-oldest, got %v", out)
	}
	if q.Dropped() != 1 {
		t.Errorf("Dropped = %d, want 1", q.Dropped())
	}
}

func TestOfflineQueue_TTLExpiry(t *testing.T) {
	q := NewOfflineQueue(8, 10*time.Millisecond)
	q.Push("stale")
	time.Sleep(20 * time.Millisecond)
	q.Push("fresh")

	out := q.Drain()
	if len(out) != 1 || out[0] != "fresh" {
		t.Errorf("Expected only the fresh message, got %v", out)
	}
	if q.Dropped() != 1 {
		t.Errorf("Dropped = %d, want 1", q.Dropped())
	}
}
