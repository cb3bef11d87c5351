package store

import (
	"context"
	"log"
	"sync"

	"quicktab/internal/entity"
)

// Checked wraps a Store and verifies the content checksum on every read
// and every incoming change notification. A snapshot that fails the check
// is never handed to the caller: the wrapper falls back to the last
// snapshot that verified, logs the corruption, and invokes OnCorrupt so a
// recovery path can be triggered. Silent acceptance of a corrupt
// snapshot is the one thing this type exists to prevent.
type Checked struct {
	inner     Store
	contextID string

	// OnCorrupt, when set, is called with the key whose snapshot failed
	// verification.
	OnCorrupt func(key string)

	mu       sync.Mutex
	lastGood map[string]*entity.Snapshot
}

// NewChecked wraps inner with checksum verification. contextID is used
// only for log attribution.
func NewChecked(inner Store, contextID string) *Checked {
	return &Checked{
		inner:     inner,
		contextID: contextID,
		lastGood:  make(map[string]*entity.Snapshot),
	}
}

// Get reads through to the inner store. On checksum mismatch it returns
// the last-known-good snapshot, or ErrCorruptSnapshot if none exists.
func (c *Checked) Get(ctx context.Context, key string) (*entity.Snapshot, error) {
	snap, err := c.inner.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, nil
	}
	if snap.ChecksumOK() {
		c.remember(key, snap)
		return snap, nil
	}

	log.Printf("[%s] Corrupt snapshot for key %s (revision=%d): falling back to last known good",
		c.contextID, key, snap.Revision)
	c.flagCorrupt(key)

	c.mu.Lock()
	good := c.lastGood[key].Clone()
	c.mu.Unlock()
	if good == nil {
		return nil, ErrCorruptSnapshot
	}
	return good, nil
}

// CompareAndSet writes through and remembers the written snapshot as the
// last known good for its key.
func (c *Checked) CompareAndSet(ctx context.Context, key string, snap *entity.Snapshot, expectedRevision int64) error {
	if err := c.inner.CompareAndSet(ctx, key, snap, expectedRevision); err != nil {
		return err
	}
	c.remember(key, snap)
	return nil
}

// Subscribe registers fn behind a verification shim: notifications whose
// new snapshot fails the checksum are dropped and flagged, never
// delivered.
func (c *Checked) Subscribe(key string, fn ChangeFunc) func() {
	return c.inner.Subscribe(key, func(old, new *entity.Snapshot) {
		if new != nil && !new.ChecksumOK() {
			log.Printf("[%s] Dropping corrupt change notification for key %s (revision=%d)",
				c.contextID, key, new.Revision)
			c.flagCorrupt(key)
			return
		}
		if new != nil {
			c.remember(key, new)
		}
		fn(old, new)
	})
}

// Close closes the inner store.
func (c *Checked) Close() error {
	return c.inner.Close()
}

func (c *Checked) remember(key string, snap *entity.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current := c.lastGood[key]
	// Keep the newest verified snapshot; a late stale read must not
	// replace a newer cached copy.
	if current == nil || snap.Revision >= current.Revision {
		c.lastGood[key] = snap.Clone()
	}
}

func (c *Checked) flagCorrupt(key string) {
	if c.OnCorrupt != nil {
		c.OnCorrupt(key)
	}
}
