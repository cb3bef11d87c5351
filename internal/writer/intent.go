package writer

import (
	"time"

	"quicktab/internal/entity"
)

// Priority selects the lane an intent queues into.
type Priority int

const (
	High Priority = iota
	Medium
	Low
	laneCount
)

// String returns the string representation of Priority.
func (p Priority) String() string {
	switch p {
	case High:
		return "HIGH"
	case Medium:
		return "MEDIUM"
	case Low:
		return "LOW"
	default:
		return "UNKNOWN"
	}
}

// PriorityFor maps an operation kind to its lane. Minimize, restore and
// close are user-blocking and go high; everything else the user initiates
// goes medium. Low is reserved for background maintenance such as orphan
// cleanup.
func PriorityFor(op entity.Op) Priority {
	switch op {
	case entity.OpMinimize, entity.OpRestore, entity.OpClose:
		return High
	default:
		return Medium
	}
}

// Intent is one queued write. Mutate receives a private draft of the
// current snapshot's entities and applies the delta; returning an error
// fails the intent permanently. Mutate may run more than once when a
// revision conflict forces a re-read, so it must be safe to reapply to a
// fresh draft.
type Intent struct {
	Op         entity.Op
	EntityID   string
	Priority   Priority
	EnqueuedAt time.Time
	Mutate     func(draft *entity.Snapshot) error
}

// Result is the definitive outcome of one intent.
type Result struct {
	Op       entity.Op
	EntityID string
	Revision int64
	SaveID   string
	// Snapshot is the committed snapshot on success, nil on failure.
	Snapshot *entity.Snapshot
	Err      error
}

// OK reports whether the write committed.
func (r Result) OK() bool {
	return r.Err == nil
}
