package hydrate

import (
	"log"
	"sort"

	"quicktab/internal/entity"
	"quicktab/internal/ownership"
)

// Decision records the hydration verdict for one entity.
type Decision struct {
	EntityID string
	Accepted bool
	Reason   string
}

// Result is the outcome of hydrating one snapshot.
type Result struct {
	// Entities is the local working set: deep copies of every accepted
	// entity, ordered by z-index so the caller can render back-to-front.
	Entities []*entity.QuickTab
	// Decisions holds one record per entity in the snapshot.
	Decisions []Decision
}

// Accepted returns the number of accepted entities.
func (r Result) Accepted() int {
	return len(r.Entities)
}

// Rejected returns the number of rejected entities.
func (r Result) Rejected() int {
	return len(r.Decisions) - len(r.Entities)
}

// Hydrate filters the snapshot through the ownership rules for the given
// identity. The snapshot itself is never modified. A nil snapshot
// hydrates to an empty working set.
func Hydrate(snap *entity.Snapshot, id ownership.Identity) Result {
	if snap == nil {
		return Result{}
	}

	res := Result{
		Decisions: make([]Decision, 0, len(snap.Entities)),
	}
	for entityID, e := range snap.Entities {
		d := ownership.Check(e, id)
		res.Decisions = append(res.Decisions, Decision{
			EntityID: entityID,
			Accepted: d.Allowed,
			Reason:   d.Reason,
		})
		if d.Allowed {
			res.Entities = append(res.Entities, e.Clone())
		}
	}

	sort.Slice(res.Entities, func(i, j int) bool {
		return res.Entities[i].ZIndex < res.Entities[j].ZIndex
	})
	sort.Slice(res.Decisions, func(i, j int) bool {
		return res.Decisions[i].EntityID < res.Decisions[j].EntityID
	})

	for _, d := range res.Decisions {
		verdict := "REJECTED"
		if d.Accepted {
			verdict = "ACCEPTED"
		}
		log.Printf("[%s] Hydrate %s: entity=%s reason=%s", id.ContextID, verdict, d.EntityID, d.Reason)
	}
	return res
}
