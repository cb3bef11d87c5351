package store

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"quicktab/internal/entity"
)

func TestChecked_PassesValidSnapshots(t *testing.T) {
	inner := NewMemoryStore()
	c := NewChecked(inner, "ctx-1")
	defer c.Close()
	ctx := context.Background()

	if err := c.CompareAndSet(ctx, "k", sealedSnapshot(1, "https://a.example"), 0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Revision != 1 {
		t.Errorf("Expected revision 1, got %+v", got)
	}
}

func TestChecked_FallsBackToLastKnownGood(t *testing.T) {
	inner := NewMemoryStore()
	c := NewChecked(inner, "ctx-1")
	defer c.Close()
	ctx := context.Background()

	var corrupt atomic.Int32
	c.OnCorrupt = func(key string) { corrupt.Add(1) }

	good := sealedSnapshot(1, "https://a.example")
	if err := c.CompareAndSet(ctx, "k", good, 0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	// Corrupt the stored copy behind the wrapper's back.
	bad := good.Clone()
	bad.Revision = 2
	bad.SaveID = entity.NewSaveID()
	bad.Seal()
	for _, q := range bad.Entities {
		q.URL = "https://tampered.example" // after Seal: checksum no longer matches
	}
	if err := inner.CompareAndSet(ctx, "k", bad, 1); err != nil {
		t.Fatalf("Direct write failed: %v", err)
	}

	got, err := c.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get should fall back, not fail: %v", err)
	}
	if got.Revision != 1 {
		t.Errorf("Expected fallback to revision 1, got %d", got.Revision)
	}
	if corrupt.Load() == 0 {
		t.Error("Corruption was not flagged")
	}
}

func TestChecked_NoFallbackAvailable(t *testing.T) {
	inner := NewMemoryStore()
	c := NewChecked(inner, "ctx-1")
	defer c.Close()
	ctx := context.Background()

	bad := sealedSnapshot(1, "https://a.example")
	for _, q := range bad.Entities {
		q.URL = "https://tampered.example"
	}
	if err := inner.CompareAndSet(ctx, "k", bad, 0); err != nil {
		t.Fatalf("Direct write failed: %v", err)
	}

	_, err := c.Get(ctx, "k")
	if !errors.Is(err, ErrCorruptSnapshot) {
		t.Errorf("Expected ErrCorruptSnapshot with no fallback, got %v", err)
	}
}

func TestChecked_SubscribeDropsCorruptNotifications(t *testing.T) {
	inner := NewMemoryStore()
	c := NewChecked(inner, "ctx-1")
	defer c.Close()
	ctx := context.Background()

	var delivered atomic.Int32
	var flagged atomic.Int32
	c.OnCorrupt = func(string) { flagged.Add(1) }
	cancel := c.Subscribe("k", func(old, new *entity.Snapshot) { delivered.Add(1) })
	defer cancel()

	if err := inner.CompareAndSet(ctx, "k", sealedSnapshot(1), 0); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	waitFor(t, func() bool { return delivered.Load() == 1 }, "valid notification not delivered")

	bad := sealedSnapshot(2, "https://a.example")
	for _, q := range bad.Entities {
		q.URL = "https://tampered.example"
	}
	if err := inner.CompareAndSet(ctx, "k", bad, 1); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	waitFor(t, func() bool { return flagged.Load() == 1 }, "corrupt notification not flagged")
	time.Sleep(20 * time.Millisecond)
	if delivered.Load() != 1 {
		t.Errorf("Corrupt notification was delivered, count=%d", delivered.Load())
	}
}
