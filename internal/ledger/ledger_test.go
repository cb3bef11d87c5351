package ledger

import (
	"testing"

	"quicktab/internal/entity"
)

func TestNextRevision(t *testing.T) {
	if got := NextRevision(nil); got != 1 {
		t.Errorf("NextRevision(nil) = %d, want 1", got)
	}

	s := entity.NewSnapshot()
	if got := NextRevision(s); got != 1 {
		t.Errorf("NextRevision(empty) = %d, want 1", got)
	}

	s.Revision = 41
	if got := NextRevision(s); got != 42 {
		t.Errorf("NextRevision(rev=41) = %d, want 42", got)
	}
}

func TestAccept(t *testing.T) {
	cases := []struct {
		name          string
		candidate     int64
		authoritative int64
		want          AcceptResult
	}{
		{"exact successor", 6, 5, Accepted},
		{"first write", 1, 0, Accepted},
		{"unknown authoritative", 9, Unknown, Accepted},
		{"equal is stale", 5, 5, RejectStale},
		{"behind is stale", 3, 5, RejectStale},
		{"gap is conflict", 8, 5, RejectConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Accept(tc.candidate, tc.authoritative); got != tc.want {
				t.Errorf("Accept(%d, %d) = %v, want %v", tc.candidate, tc.authoritative, got, tc.want)
			}
		})
	}
}

func TestLedger_MarkApplied_Monotonic(t *testing.T) {
	l := New()
	if l.Applied() != Unknown {
		t.Errorf("New ledger should have applied=Unknown, got %d", l.Applied())
	}

	l.MarkApplied(5, "s5", "c5")
	if l.Applied() != 5 {
		t.Errorf("Applied = %d, want 5", l.Applied())
	}

	// A late, out-of-order MarkApplied must not move the ledger back.
	l.MarkApplied(3, "s3", "c3")
	if l.Applied() != 5 {
		t.Errorf("Applied regressed to %d after stale MarkApplied", l.Applied())
	}

	l.MarkApplied(6, "s6", "c6")
	if l.Applied() != 6 {
		t.Errorf("Applied = %d, want 6", l.Applied())
	}
}

func TestLedger_OwnWrite_Bounded(t *testing.T) {
	l := New()
	l.RecordOwnWrite(1, "keep-or-evict")
	for i := 0; i < ownWriteCapacity; i++ {
		l.RecordOwnWrite(int64(i+2), entity.NewSaveID())
	}

	if l.OwnWrite("keep-or-evict") {
		t.Error("Oldest own save id should have been evicted")
	}
	if len(l.ownSaveIDs) != ownWriteCapacity {
		t.Errorf("Own write memory grew to %d, cap is %d", len(l.ownSaveIDs), ownWriteCapacity)
	}
}

func TestLedger_RecordOwnWrite_EmptySaveID(t *testing.T) {
	l := New()
	l.RecordOwnWrite(1, "")
	if l.OwnWrite("") {
		t.Error("Empty save id should never register as an own write")
	}
}
