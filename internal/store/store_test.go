package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"quicktab/internal/entity"
)

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func sealedSnapshot(revision int64, urls ...string) *entity.Snapshot {
	s := entity.NewSnapshot()
	for i, u := range urls {
		id := entity.NewID()
		s.Entities[id] = &entity.QuickTab{ID: id, URL: u, ZIndex: i + 1}
	}
	s.Revision = revision
	s.SaveID = entity.NewSaveID()
	s.Seal()
	return s
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	snap, err := s.Get(context.Background(), "ns/default")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if snap != nil {
		t.Errorf("Expected nil for unwritten key, got %+v", snap)
	}
}

func TestMemoryStore_CompareAndSet(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	first := sealedSnapshot(1, "https://a.example")
	if err := s.CompareAndSet(ctx, "k", first, 0); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	// A second writer that also read revision 0 must lose.
	rival := sealedSnapshot(1, "https://b.example")
	if err := s.CompareAndSet(ctx, "k", rival, 0); !errors.Is(err, ErrStaleWrite) {
		t.Errorf("Expected ErrStaleWrite for conflicting write, got %v", err)
	}

	second := sealedSnapshot(2, "https://a.example", "https://b.example")
	if err := s.CompareAndSet(ctx, "k", second, 1); err != nil {
		t.Fatalf("Follow-up write failed: %v", err)
	}

	got, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Revision != 2 {
		t.Errorf("Stored revision = %d, want 2", got.Revision)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	if err := s.CompareAndSet(ctx, "k", sealedSnapshot(1, "https://a.example"), 0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, _ := s.Get(ctx, "k")
	for _, q := range got.Entities {
		q.URL = "https://mutated.example"
	}

	again, _ := s.Get(ctx, "k")
	for _, q := range again.Entities {
		if q.URL == "https://mutated.example" {
			t.Error("Get exposed internal snapshot to caller mutation")
		}
	}
}

func TestMemoryStore_Quota(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	s.QuotaBytes = 64

	err := s.CompareAndSet(context.Background(), "k",
		sealedSnapshot(1, "https://a.example/long/enough/to/blow/the/tiny/quota"), 0)
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("Expected ErrQuotaExceeded, got %v", err)
	}
}

func TestMemoryStore_SubscribeNotifies(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	var calls atomic.Int32
	var sawNilOld atomic.Bool
	cancel := s.Subscribe("k", func(old, new *entity.Snapshot) {
		calls.Add(1)
		if old == nil {
			sawNilOld.Store(true)
		}
	})
	defer cancel()

	if err := s.CompareAndSet(ctx, "k", sealedSnapshot(1, "https://a.example"), 0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	waitFor(t, func() bool { return calls.Load() == 1 }, "first notification not delivered")
	if !sawNilOld.Load() {
		t.Error("First write should notify with nil old snapshot")
	}

	if err := s.CompareAndSet(ctx, "k", sealedSnapshot(2, "https://b.example"), 1); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	waitFor(t, func() bool { return calls.Load() == 2 }, "second notification not delivered")

	cancel()
	if err := s.CompareAndSet(ctx, "k", sealedSnapshot(3), 2); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != 2 {
		t.Errorf("Cancelled subscriber still notified, calls=%d", calls.Load())
	}
}

func TestMemoryStore_SubscribeOtherKeySilent(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	var calls atomic.Int32
	cancel := s.Subscribe("other", func(old, new *entity.Snapshot) { calls.Add(1) })
	defer cancel()

	if err := s.CompareAndSet(context.Background(), "k", sealedSnapshot(1), 0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != 0 {
		t.Error("Subscriber for another key was notified")
	}
}

func TestMemoryStore_Closed(t *testing.T) {
	s := NewMemoryStore()
	s.Close()

	if _, err := s.Get(context.Background(), "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed from Get, got %v", err)
	}
	if err := s.CompareAndSet(context.Background(), "k", sealedSnapshot(1), 0); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed from CompareAndSet, got %v", err)
	}
}
