package entity

import (
	"github.com/google/uuid"
)

// Op identifies one kind of mutation request coming from the rendering
// layer. The set is closed; anything else is rejected at the boundary.
type Op string

const (
	OpCreate   Op = "create"
	OpMove     Op = "move"
	OpResize   Op = "resize"
	OpMinimize Op = "minimize"
	OpRestore  Op = "restore"
	OpClose    Op = "close"
	OpFocus    Op = "focus"
	OpAdopt    Op = "adopt"
)

// Valid reports whether op is one of the known operation kinds.
func (op Op) Valid() bool {
	switch op {
	case OpCreate, OpMove, OpResize, OpMinimize, OpRestore, OpClose, OpFocus, OpAdopt:
		return true
	}
	return false
}

// Position is the top-left corner of a quick-tab window in page coordinates.
type Position struct {
	Left int `json:"left"`
	Top  int `json:"top"`
}

// Size is the outer dimensions of a quick-tab window.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// QuickTab is the persisted state of one floating window.
// OwnerContextID empty means a legacy record written before ownership
// stamping existed; see the ownership package for how those are treated.
type QuickTab struct {
	ID               string   `json:"id"`
	URL              string   `json:"url"`
	Position         Position `json:"position"`
	Size             Size     `json:"size"`
	Minimized        bool     `json:"minimized"`
	ZIndex           int      `json:"zIndex"`
	OwnerContextID   string   `json:"ownerContextId,omitempty"`
	OwnerNamespaceID string   `json:"ownerNamespaceId,omitempty"`
	Revision         int64    `json:"revision"`
	LastWriterID     string   `json:"lastWriterId,omitempty"`
}

// Legacy reports whether this record predates ownership stamping.
func (q *QuickTab) Legacy() bool {
	return q.OwnerContextID == ""
}

// Clone returns a deep copy.
func (q *QuickTab) Clone() *QuickTab {
	if q == nil {
		return nil
	}
	c := *q
	return &c
}

// Snapshot is the full replicated state for one namespace key. Exactly one
// snapshot is authoritative at any instant; accepted writes supersede it
// with Revision+1 and a fresh SaveID.
type Snapshot struct {
	Entities map[string]*QuickTab `json:"entities"`
	Revision int64                `json:"revision"`
	SaveID   string               `json:"saveId"`
	Checksum string               `json:"checksum"`
}

// NewSnapshot returns an empty snapshot at revision 0.
func NewSnapshot() *Snapshot {
	return &Snapshot{Entities: make(map[string]*QuickTab)}
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	c := &Snapshot{
		Entities: make(map[string]*QuickTab, len(s.Entities)),
		Revision: s.Revision,
		SaveID:   s.SaveID,
		Checksum: s.Checksum,
	}
	for id, q := range s.Entities {
		c.Entities[id] = q.Clone()
	}
	return c
}

// Get returns the entity with the given id, or nil.
func (s *Snapshot) Get(id string) *QuickTab {
	if s == nil {
		return nil
	}
	return s.Entities[id]
}

// MaxZIndex returns the highest z-index present, or 0 for an empty snapshot.
func (s *Snapshot) MaxZIndex() int {
	max := 0
	for _, q := range s.Entities {
		if q.ZIndex > max {
			max = q.ZIndex
		}
	}
	return max
}

// NamespaceKey returns the store key holding the snapshot for one
// isolation namespace.
func NamespaceKey(namespaceID string) string {
	return "quicktabs/" + namespaceID
}

// NewID returns a globally unique entity id.
func NewID() string {
	return uuid.NewString()
}

// NewSaveID returns the random per-write dedup key.
func NewSaveID() string {
	return uuid.NewString()
}
