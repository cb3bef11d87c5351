package engine

import (
	"fmt"

	"quicktab/internal/entity"
	"quicktab/internal/ownership"
	"quicktab/internal/writer"
)

// OpRequest is one mutation request from the rendering layer.
type OpRequest struct {
	Op       entity.Op
	EntityID string
	URL      string
	Position *entity.Position
	Size     *entity.Size
}

// ErrUnknownOp rejects a request outside the closed operation set.
var ErrUnknownOp = fmt.Errorf("unknown operation")

// buildIntent turns a request into a queued write whose mutation enforces
// the ownership rules under the acting identity. The closure re-runs on
// every optimistic-concurrency retry against a fresh draft, so each
// attempt re-checks ownership against the latest state.
func buildIntent(id ownership.Identity, req OpRequest) (*writer.Intent, error) {
	if !req.Op.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, req.Op)
	}

	if req.Op == entity.OpCreate {
		entityID := req.EntityID
		if entityID == "" {
			entityID = entity.NewID()
		}
		if req.URL == "" {
			return nil, fmt.Errorf("create without url")
		}
		return &writer.Intent{
			Op:       entity.OpCreate,
			EntityID: entityID,
			Priority: writer.PriorityFor(entity.OpCreate),
			Mutate: func(draft *entity.Snapshot) error {
				if !id.Known() {
					return ownership.Decision{Allowed: false, Reason: ownership.ReasonUnknownIdentity}.Err()
				}
				q := &entity.QuickTab{
					ID:        entityID,
					URL:       req.URL,
					Minimized: false,
					ZIndex:    draft.MaxZIndex() + 1,
				}
				if req.Position != nil {
					q.Position = *req.Position
				}
				if req.Size != nil {
					q.Size = *req.Size
				}
				ownership.Stamp(q, id)
				draft.Entities[entityID] = q
				return nil
			},
		}, nil
	}

	if req.EntityID == "" {
		return nil, fmt.Errorf("%s without entity id", req.Op)
	}

	mutate := func(draft *entity.Snapshot) error {
		q := draft.Get(req.EntityID)
		if q == nil {
			return fmt.Errorf("entity %s not found", req.EntityID)
		}
		if err := ownership.CanMutate(q, id, req.Op).Err(); err != nil {
			return err
		}
		wasLegacy := q.Legacy()

		switch req.Op {
		case entity.OpMove:
			if req.Position == nil {
				return fmt.Errorf("move without position")
			}
			q.Position = *req.Position
		case entity.OpResize:
			if req.Size == nil || req.Size.Width <= 0 || req.Size.Height <= 0 {
				return fmt.Errorf("resize without valid size")
			}
			q.Size = *req.Size
		case entity.OpMinimize:
			q.Minimized = true
		case entity.OpRestore:
			q.Minimized = false
		case entity.OpFocus:
			q.ZIndex = draft.MaxZIndex() + 1
		case entity.OpClose:
			delete(draft.Entities, req.EntityID)
			return nil
		case entity.OpAdopt:
			// Reassignment is an ordinary serialized write, not a side
			// channel; the stamp below does the whole job.
		}

		// The first successful mutation of a legacy entity claims it.
		if wasLegacy || req.Op == entity.OpAdopt {
			ownership.Stamp(q, id)
		}
		return nil
	}

	return &writer.Intent{
		Op:       req.Op,
		EntityID: req.EntityID,
		Priority: writer.PriorityFor(req.Op),
		Mutate:   mutate,
	}, nil
}

// orphanCleanupIntent removes entities in this namespace whose owning
// context is confirmed gone. The owner match is deliberately skipped: the
// owner no longer exists to consent, and a dead owner cannot leak. The
// namespace boundary still holds, and the write is serialized like any
// other.
func orphanCleanupIntent(id ownership.Identity, isLive func(contextID string) bool) *writer.Intent {
	return &writer.Intent{
		Op:       entity.OpClose,
		EntityID: "orphan-cleanup",
		Priority: writer.Low,
		Mutate: func(draft *entity.Snapshot) error {
			if !id.Known() {
				return ownership.Decision{Allowed: false, Reason: ownership.ReasonUnknownIdentity}.Err()
			}
			for entityID, q := range draft.Entities {
				if q.Legacy() || q.OwnerNamespaceID != id.NamespaceID {
					continue
				}
				if !isLive(q.OwnerContextID) {
					delete(draft.Entities, entityID)
				}
			}
			return nil
		},
	}
}
