package ownership

import (
	"errors"
	"testing"

	"quicktab/internal/entity"
)

var (
	self    = Identity{ContextID: "7", NamespaceID: "ns-1", Kind: KindPage}
	unknown = Identity{NamespaceID: "ns-1", Kind: KindPage}
)

func TestCheck_TruthTable(t *testing.T) {
	cases := []struct {
		name    string
		e       *entity.QuickTab
		id      Identity
		allowed bool
		reason  string
	}{
		{
			name:    "owned entity",
			e:       &entity.QuickTab{OwnerContextID: "7", OwnerNamespaceID: "ns-1"},
			id:      self,
			allowed: true,
			reason:  ReasonOwned,
		},
		{
			name:    "legacy entity under known identity",
			e:       &entity.QuickTab{},
			id:      self,
			allowed: true,
			reason:  ReasonLegacyAdoptable,
		},
		{
			name:    "legacy entity under unknown identity fails closed",
			e:       &entity.QuickTab{},
			id:      unknown,
			allowed: false,
			reason:  ReasonUnknownIdentity,
		},
		{
			name:    "owned entity under unknown identity fails closed",
			e:       &entity.QuickTab{OwnerContextID: "7", OwnerNamespaceID: "ns-1"},
			id:      unknown,
			allowed: false,
			reason:  ReasonUnknownIdentity,
		},
		{
			name:    "foreign context",
			e:       &entity.QuickTab{OwnerContextID: "9", OwnerNamespaceID: "ns-1"},
			id:      self,
			allowed: false,
			reason:  ReasonForeignContext,
		},
		{
			name:    "right context, foreign namespace",
			e:       &entity.QuickTab{OwnerContextID: "7", OwnerNamespaceID: "ns-2"},
			id:      self,
			allowed: false,
			reason:  ReasonForeignNamespace,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := Check(tc.e, tc.id)
			if d.Allowed != tc.allowed {
				t.Errorf("Check allowed=%v, want %v", d.Allowed, tc.allowed)
			}
			if d.Reason != tc.reason {
				t.Errorf("Check reason=%q, want %q", d.Reason, tc.reason)
			}
			if Owned(tc.e, tc.id) != tc.allowed {
				t.Errorf("Owned disagrees with Check")
			}
		})
	}
}

func TestCanMutate_SameRulesForEveryOp(t *testing.T) {
	ops := []entity.Op{
		entity.OpCreate, entity.OpMove, entity.OpResize, entity.OpMinimize,
		entity.OpRestore, entity.OpClose, entity.OpFocus, entity.OpAdopt,
	}
	foreign := &entity.QuickTab{OwnerContextID: "9", OwnerNamespaceID: "ns-1"}
	legacy := &entity.QuickTab{}

	for _, op := range ops {
		if CanMutate(foreign, self, op).Allowed {
			t.Errorf("Op %q allowed on foreign entity", op)
		}
		if !CanMutate(legacy, self, op).Allowed {
			t.Errorf("Op %q denied on legacy entity under known identity", op)
		}
		if CanMutate(legacy, unknown, op).Allowed {
			t.Errorf("Op %q allowed under unknown identity", op)
		}
	}
}

func TestDecision_Err(t *testing.T) {
	if err := (Decision{Allowed: true, Reason: ReasonOwned}).Err(); err != nil {
		t.Errorf("Allowed decision produced error: %v", err)
	}
	err := (Decision{Allowed: false, Reason: ReasonForeignContext}).Err()
	if !errors.Is(err, ErrDenied) {
		t.Errorf("Denied decision should wrap ErrDenied, got %v", err)
	}
}

func TestStamp(t *testing.T) {
	e := &entity.QuickTab{}
	Stamp(e, self)
	if e.OwnerContextID != "7" || e.OwnerNamespaceID != "ns-1" {
		t.Errorf("Stamp wrote %q/%q", e.OwnerContextID, e.OwnerNamespaceID)
	}
	if e.Legacy() {
		t.Error("Stamped entity should no longer be legacy")
	}
}
