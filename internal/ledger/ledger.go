package ledger

import (
	"sync"

	"quicktab/internal/entity"
)

// Unknown marks an authoritative revision that has never been observed,
// e.g. before the first read of the store key. Distinct from 0, which is
// the revision of an existing empty snapshot.
const Unknown int64 = -1

// RevisionUndefined marks an incoming notification that carries no
// revision at all (malformed or pre-protocol writer).
const RevisionUndefined int64 = 0

// AcceptResult is the verdict on a candidate write against the
// authoritative revision.
type AcceptResult int

const (
	// Accepted means the candidate is exactly authoritative+1.
	Accepted AcceptResult = iota
	// RejectStale means the candidate does not advance the revision.
	RejectStale
	// RejectConflict means the candidate skips ahead; the writer must
	// re-read and retry.
	RejectConflict
)

// String returns the string representation of AcceptResult.
func (r AcceptResult) String() string {
	switch r {
	case Accepted:
		return "ACCEPT"
	case RejectStale:
		return "REJECT_STALE"
	case RejectConflict:
		return "REJECT_CONFLICT"
	default:
		return "UNKNOWN"
	}
}

// NextRevision returns the revision a new write over the given snapshot
// must carry. A nil snapshot counts as never-written.
func NextRevision(s *entity.Snapshot) int64 {
	if s == nil {
		return 1
	}
	return s.Revision + 1
}

// Accept validates a candidate revision against the authoritative one.
// Accepted iff candidate == authoritative+1, or authoritative is Unknown.
func Accept(candidate, authoritative int64) AcceptResult {
	if authoritative == Unknown {
		return Accepted
	}
	switch {
	case candidate == authoritative+1:
		return Accepted
	case candidate <= authoritative:
		return RejectStale
	default:
		return RejectConflict
	}
}

// ownWriteCapacity bounds the self-write memory. Deep enough to cover any
// realistic burst of in-flight writes before their echoes arrive.
const ownWriteCapacity = 128

// Ledger tracks the locally applied revision for one context and the save
// ids of writes that context produced itself.
type Ledger struct {
	mu           sync.Mutex
	applied      int64
	lastSaveID   string
	lastChecksum string

	ownSaveIDs map[string]int64
	ownOrder   []string
}

// New creates a ledger with nothing applied yet.
func New() *Ledger {
	return &Ledger{
		applied:    Unknown,
		ownSaveIDs: make(map[string]int64),
	}
}

// Applied returns the last locally applied revision, or Unknown.
func (l *Ledger) Applied() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.applied
}

// MarkApplied records that the context has applied the given write. Calls
// with a revision at or below the current one are ignored, so a late
// MarkApplied can never move the ledger backwards.
func (l *Ledger) MarkApplied(revision int64, saveID, checksum string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if revision != RevisionUndefined && revision <= l.applied {
		return
	}
	if revision != RevisionUndefined {
		l.applied = revision
	}
	l.lastSaveID = saveID
	l.lastChecksum = checksum
}

// RecordOwnWrite remembers a save id this context wrote, so the echoed
// notification can later be identified as self-produced. The memory is
// bounded; oldest entries fall off first.
func (l *Ledger) RecordOwnWrite(revision int64, saveID string) {
	if saveID == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.ownSaveIDs[saveID]; !exists {
		l.ownOrder = append(l.ownOrder, saveID)
		if len(l.ownOrder) > ownWriteCapacity {
			oldest := l.ownOrder[0]
			l.ownOrder = l.ownOrder[1:]
			delete(l.ownSaveIDs, oldest)
		}
	}
	l.ownSaveIDs[saveID] = revision
}

// OwnWrite reports whether the save id belongs to a write this context
// produced.
func (l *Ledger) OwnWrite(saveID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.ownSaveIDs[saveID]
	return ok
}
