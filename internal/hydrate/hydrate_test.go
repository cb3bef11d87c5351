package hydrate

import (
	"testing"

	"quicktab/internal/entity"
	"quicktab/internal/ownership"
)

func snapshotWith(tabs ...*entity.QuickTab) *entity.Snapshot {
	s := entity.NewSnapshot()
	for _, q := range tabs {
		s.Entities[q.ID] = q
	}
	s.Revision = int64(len(tabs))
	s.Seal()
	return s
}

func TestHydrate_FiltersByOwnership(t *testing.T) {
	ctx7 := ownership.Identity{ContextID: "7", NamespaceID: "ns-1"}
	snap := snapshotWith(
		&entity.QuickTab{ID: "mine-a", OwnerContextID: "7", OwnerNamespaceID: "ns-1", ZIndex: 2},
		&entity.QuickTab{ID: "mine-b", OwnerContextID: "7", OwnerNamespaceID: "ns-1", ZIndex: 1},
		&entity.QuickTab{ID: "theirs", OwnerContextID: "9", OwnerNamespaceID: "ns-1"},
		&entity.QuickTab{ID: "other-ns", OwnerContextID: "7", OwnerNamespaceID: "ns-2"},
		&entity.QuickTab{ID: "legacy"},
	)

	res := Hydrate(snap, ctx7)

	if res.Accepted() != 3 {
		t.Errorf("Accepted = %d, want 3 (two owned + one legacy)", res.Accepted())
	}
	if res.Rejected() != 2 {
		t.Errorf("Rejected = %d, want 2", res.Rejected())
	}
	if len(res.Decisions) != len(snap.Entities) {
		t.Errorf("Expected one decision per entity, got %d for %d entities",
			len(res.Decisions), len(snap.Entities))
	}

	// Working set comes back ordered by z-index.
	if res.Entities[0].ID != "legacy" && res.Entities[0].ZIndex > res.Entities[1].ZIndex {
		t.Error("Entities not ordered by z-index")
	}

	reasons := make(map[string]string)
	for _, d := range res.Decisions {
		reasons[d.EntityID] = d.Reason
	}
	if reasons["theirs"] != ownership.ReasonForeignContext {
		t.Errorf("theirs rejected with %q", reasons["theirs"])
	}
	if reasons["other-ns"] != ownership.ReasonForeignNamespace {
		t.Errorf("other-ns rejected with %q", reasons["other-ns"])
	}
	if reasons["legacy"] != ownership.ReasonLegacyAdoptable {
		t.Errorf("legacy accepted with %q", reasons["legacy"])
	}
}

func TestHydrate_UnknownIdentityAcceptsNothing(t *testing.T) {
	snap := snapshotWith(
		&entity.QuickTab{ID: "a", OwnerContextID: "7", OwnerNamespaceID: "ns-1"},
		&entity.QuickTab{ID: "legacy"},
	)

	res := Hydrate(snap, ownership.Identity{NamespaceID: "ns-1"})
	if res.Accepted() != 0 {
		t.Errorf("Unknown identity hydrated %d entities, want 0", res.Accepted())
	}
	for _, d := range res.Decisions {
		if d.Reason != ownership.ReasonUnknownIdentity {
			t.Errorf("Entity %s rejected with %q, want unknown-identity", d.EntityID, d.Reason)
		}
	}
}

func TestHydrate_AdoptedEntityFollowsCurrentIdentityOnly(t *testing.T) {
	oldOwner := ownership.Identity{ContextID: "7", NamespaceID: "ns-1"}
	newOwner := ownership.Identity{ContextID: "9", NamespaceID: "ns-1"}

	adopted := &entity.QuickTab{ID: "moved", OwnerContextID: "9", OwnerNamespaceID: "ns-1"}
	snap := snapshotWith(adopted)

	if got := Hydrate(snap, newOwner).Accepted(); got != 1 {
		t.Errorf("New owner hydrated %d entities, want 1", got)
	}
	if got := Hydrate(snap, oldOwner).Accepted(); got != 0 {
		t.Errorf("Old owner hydrated %d entities after adoption, want 0", got)
	}
}

func TestHydrate_LeavesSnapshotUntouched(t *testing.T) {
	ctx7 := ownership.Identity{ContextID: "7", NamespaceID: "ns-1"}
	snap := snapshotWith(
		&entity.QuickTab{ID: "mine", OwnerContextID: "7", OwnerNamespaceID: "ns-1"},
		&entity.QuickTab{ID: "theirs", OwnerContextID: "9", OwnerNamespaceID: "ns-1"},
	)

	res := Hydrate(snap, ctx7)
	res.Entities[0].URL = "https://mutated.example"

	if snap.Entities["mine"].URL == "https://mutated.example" {
		t.Error("Hydrate returned shared pointers into the snapshot")
	}
	if len(snap.Entities) != 2 {
		t.Error("Hydrate removed entities from the snapshot")
	}
}

func TestHydrate_NilSnapshot(t *testing.T) {
	res := Hydrate(nil, ownership.Identity{ContextID: "7"})
	if res.Accepted() != 0 || len(res.Decisions) != 0 {
		t.Errorf("Nil snapshot should hydrate empty, got %+v", res)
	}
}
