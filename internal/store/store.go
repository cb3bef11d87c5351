package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"quicktab/internal/entity"
)

var (
	// ErrStaleWrite is returned by CompareAndSet when the expected
	// revision no longer matches the stored one.
	ErrStaleWrite = errors.New("stale write: revision conflict")
	// ErrQuotaExceeded is returned when the backend refuses a write for
	// lack of space. Permanent; callers must not retry.
	ErrQuotaExceeded = errors.New("storage quota exceeded")
	// ErrCorruptSnapshot is returned when a read snapshot fails its
	// checksum and no last-known-good copy exists.
	ErrCorruptSnapshot = errors.New("corrupt snapshot: checksum mismatch")
	// ErrClosed is returned for operations on a closed store.
	ErrClosed = errors.New("store closed")
)

// ChangeFunc receives an asynchronous change notification for one key.
// old is nil for the first write of a key. Both arguments are private
// copies the subscriber may retain.
type ChangeFunc func(old, new *entity.Snapshot)

// Store is the replicated state backend. Get returns nil without error
// for a key that has never been written. CompareAndSet succeeds only when
// the stored revision still equals expectedRevision (0 for an absent
// key); it is the sole write path for mutating contexts.
type Store interface {
	Get(ctx context.Context, key string) (*entity.Snapshot, error)
	CompareAndSet(ctx context.Context, key string, snap *entity.Snapshot, expectedRevision int64) error
	Subscribe(key string, fn ChangeFunc) (cancel func())
	Close() error
}

// notifier implements subscriber fan-out shared by the backends.
// Delivery is asynchronous and per-subscriber; order across concurrent
// writers is not guaranteed, matching the backend contract.
type notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]ChangeFunc
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[string]map[int]ChangeFunc)}
}

func (n *notifier) subscribe(key string, fn ChangeFunc) func() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs[key] == nil {
		n.subs[key] = make(map[int]ChangeFunc)
	}
	id := n.nextID
	n.nextID++
	n.subs[key][id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[key], id)
	}
}

func (n *notifier) notify(key string, old, new *entity.Snapshot) {
	n.mu.Lock()
	fns := make([]ChangeFunc, 0, len(n.subs[key]))
	for _, fn := range n.subs[key] {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		go fn(old.Clone(), new.Clone())
	}
}

// MemoryStore is an in-memory Store. Thread-safe. QuotaBytes, when
// positive, bounds the encoded size of any one snapshot the way browser
// extension storage bounds a key, surfacing ErrQuotaExceeded.
type MemoryStore struct {
	mu         sync.RWMutex
	data       map[string]*entity.Snapshot
	closed     bool
	QuotaBytes int

	*notifier
}

// NewMemoryStore creates an empty in-memory store with no quota.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data:     make(map[string]*entity.Snapshot),
		notifier: newNotifier(),
	}
}

// Get retrieves the snapshot for a key, or nil if never written.
func (s *MemoryStore) Get(ctx context.Context, key string) (*entity.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	return s.data[key].Clone(), nil
}

// CompareAndSet stores snap iff the current revision equals
// expectedRevision. Subscribers are notified on success.
func (s *MemoryStore) CompareAndSet(ctx context.Context, key string, snap *entity.Snapshot, expectedRevision int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.QuotaBytes > 0 {
		encoded, err := json.Marshal(snap)
		if err != nil {
			return err
		}
		if len(encoded) > s.QuotaBytes {
			return ErrQuotaExceeded
		}
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	current := s.data[key]
	currentRev := int64(0)
	if current != nil {
		currentRev = current.Revision
	}
	if currentRev != expectedRevision {
		s.mu.Unlock()
		return ErrStaleWrite
	}
	old := current
	s.data[key] = snap.Clone()
	s.mu.Unlock()

	s.notify(key, old, snap)
	return nil
}

// Subscribe registers a change callback for a key.
func (s *MemoryStore) Subscribe(key string, fn ChangeFunc) func() {
	return s.subscribe(key, fn)
}

// Close marks the store closed. Pending notification goroutines are not
// interrupted.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
