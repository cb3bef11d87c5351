package engine

import (
	"quicktab/internal/entity"
	"quicktab/internal/ownership"
)

// EventKind names a working-set change visible to the rendering layer.
type EventKind int

const (
	EntityCreated EventKind = iota
	EntityUpdated
	EntityRemoved
)

// String returns the string representation of EventKind.
func (k EventKind) String() string {
	switch k {
	case EntityCreated:
		return "entityCreated"
	case EntityUpdated:
		return "entityUpdated"
	case EntityRemoved:
		return "entityRemoved"
	default:
		return "unknown"
	}
}

// Event is one rendering-layer notification. Entity is a private copy.
type Event struct {
	Kind   EventKind
	Entity *entity.QuickTab
	Reason string
}

// Handler consumes events. Called sequentially per engine, never
// concurrently.
type Handler func(Event)

// diffWorkingSet computes the events that turn the current working set
// into the one the new snapshot implies for this identity. The returned
// next map becomes the new working set.
func diffWorkingSet(current map[string]*entity.QuickTab, snap *entity.Snapshot, id ownership.Identity, reason string) (next map[string]*entity.QuickTab, events []Event) {
	next = make(map[string]*entity.QuickTab)
	if snap != nil {
		for entityID, q := range snap.Entities {
			if ownership.Owned(q, id) {
				next[entityID] = q.Clone()
			}
		}
	}

	for entityID, q := range next {
		prev, existed := current[entityID]
		switch {
		case !existed:
			events = append(events, Event{Kind: EntityCreated, Entity: q.Clone(), Reason: reason})
		case *prev != *q:
			events = append(events, Event{Kind: EntityUpdated, Entity: q.Clone(), Reason: reason})
		}
	}
	for entityID, prev := range current {
		if _, still := next[entityID]; !still {
			events = append(events, Event{Kind: EntityRemoved, Entity: prev.Clone(), Reason: reason})
		}
	}
	return next, events
}
