package ledger

import (
	"testing"
)

func TestClassify_RevisionDominates(t *testing.T) {
	l := New()
	l.MarkApplied(12, "save-12", "sum-12")

	cases := []struct {
		name     string
		revision int64
		saveID   string
		checksum string
		want     Outcome
	}{
		{"older revision dropped", 10, "save-10", "sum-10", DropStale},
		{"equal revision dropped", 12, "save-other", "sum-other", DropStale},
		{"newer revision applied", 13, "save-13", "sum-13", Apply},
		// Revision dominates: a newer revision is accepted even when the
		// save id repeats the last applied one.
		{"newer revision with repeated save id", 14, "save-12", "sum-14", Apply},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.Classify(tc.revision, tc.saveID, tc.checksum); got != tc.want {
				t.Errorf("Classify(%d, %q, %q) = %v, want %v",
					tc.revision, tc.saveID, tc.checksum, got, tc.want)
			}
		})
	}
}

func TestClassify_SelfEcho(t *testing.T) {
	l := New()
	l.RecordOwnWrite(13, "mine-13")
	l.MarkApplied(13, "mine-13", "sum-13")

	if got := l.Classify(13, "mine-13", "sum-13"); got != DropSelfEcho {
		t.Errorf("Echo of own write classified %v, want DropSelfEcho", got)
	}

	// Same revision from another writer is stale, not a self echo.
	if got := l.Classify(13, "theirs-13", "sum-x"); got != DropStale {
		t.Errorf("Foreign write at applied revision classified %v, want DropStale", got)
	}
}

func TestClassify_SaveIDFallback(t *testing.T) {
	l := New()
	l.MarkApplied(RevisionUndefined, "save-a", "sum-a")

	if got := l.Classify(RevisionUndefined, "save-a", "sum-a"); got != DropDuplicateSave {
		t.Errorf("Repeated save id without revision classified %v, want DropDuplicateSave", got)
	}
	if got := l.Classify(RevisionUndefined, "save-b", "sum-b"); got != Apply {
		t.Errorf("Fresh save id without revision classified %v, want Apply", got)
	}
}

func TestClassify_ChecksumOnlySkipsRender(t *testing.T) {
	l := New()
	l.MarkApplied(5, "save-5", "sum-same")

	// A newer revision with identical content is applied, just not
	// re-rendered. It must never be rejected on the checksum alone.
	got := l.Classify(6, "save-6", "sum-same")
	if got != ApplySkipRender {
		t.Errorf("Identical content at newer revision classified %v, want ApplySkipRender", got)
	}
	if !got.Applies() {
		t.Error("ApplySkipRender must still count as applied")
	}
}

func TestClassify_UnknownAppliedAcceptsAnyRevision(t *testing.T) {
	l := New()
	if got := l.Classify(1, "save-1", "sum-1"); got != Apply {
		t.Errorf("First notification classified %v, want Apply", got)
	}
}

// TestClassify_Property_StaleIsIdempotent re-applies a batch of stale
// notifications and checks the ledger never moves.
func TestClassify_Property_StaleIsIdempotent(t *testing.T) {
	l := New()
	l.MarkApplied(20, "save-20", "sum-20")

	for rev := int64(1); rev <= 20; rev++ {
		for i := 0; i < 3; i++ {
			got := l.Classify(rev, "any", "any")
			if got.Applies() {
				t.Fatalf("Revision %d (≤ applied) must not apply, got %v", rev, got)
			}
		}
	}
	if l.Applied() != 20 {
		t.Errorf("Applied moved to %d while classifying stale notifications", l.Applied())
	}
}

// TestClassify_Property_OutOfOrderDeliveryConverges delivers revisions in
// a scrambled order and checks exactly the in-order suffix applies.
func TestClassify_Property_OutOfOrderDeliveryConverges(t *testing.T) {
	l := New()
	order := []int64{3, 1, 4, 2, 7, 5, 6, 10, 8, 9}
	applied := 0
	for _, rev := range order {
		out := l.Classify(rev, "", "")
		if out.Applies() {
			applied++
			l.MarkApplied(rev, "", "")
		}
	}
	// 3, 4, 7, 10 advance; everything else arrives late.
	if applied != 4 {
		t.Errorf("Expected 4 applied notifications, got %d", applied)
	}
	if l.Applied() != 10 {
		t.Errorf("Final applied revision = %d, want 10", l.Applied())
	}
}
