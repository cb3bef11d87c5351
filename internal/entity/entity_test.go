package entity

import (
	"testing"
)

func TestOp_Valid(t *testing.T) {
	valid := []Op{OpCreate, OpMove, OpResize, OpMinimize, OpRestore, OpClose, OpFocus, OpAdopt}
	for _, op := range valid {
		if !op.Valid() {
			t.Errorf("Expected %q to be valid", op)
		}
	}
	for _, op := range []Op{"", "destroy", "CREATE", "move "} {
		if op.Valid() {
			t.Errorf("Expected %q to be invalid", op)
		}
	}
}

func TestSnapshot_Clone_Independent(t *testing.T) {
	s := NewSnapshot()
	s.Entities["a"] = &QuickTab{ID: "a", URL: "https://example.com", ZIndex: 3}
	s.Revision = 7
	s.SaveID = "save-1"

	c := s.Clone()
	c.Entities["a"].ZIndex = 99
	c.Entities["b"] = &QuickTab{ID: "b"}
	c.Revision = 8

	if s.Entities["a"].ZIndex != 3 {
		t.Errorf("Clone mutated original entity, zIndex=%d", s.Entities["a"].ZIndex)
	}
	if _, exists := s.Entities["b"]; exists {
		t.Error("Clone shares entity map with original")
	}
	if s.Revision != 7 {
		t.Errorf("Clone mutated original revision: %d", s.Revision)
	}
}

func TestSnapshot_MaxZIndex(t *testing.T) {
	s := NewSnapshot()
	if s.MaxZIndex() != 0 {
		t.Errorf("Empty snapshot should have max z-index 0, got %d", s.MaxZIndex())
	}
	s.Entities["a"] = &QuickTab{ID: "a", ZIndex: 2}
	s.Entities["b"] = &QuickTab{ID: "b", ZIndex: 5}
	if s.MaxZIndex() != 5 {
		t.Errorf("Expected max z-index 5, got %d", s.MaxZIndex())
	}
}

func TestQuickTab_Legacy(t *testing.T) {
	q := &QuickTab{ID: "x"}
	if !q.Legacy() {
		t.Error("Entity without owner context should be legacy")
	}
	q.OwnerContextID = "7"
	if q.Legacy() {
		t.Error("Entity with owner context should not be legacy")
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("Duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
