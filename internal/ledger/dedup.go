package ledger

// Outcome classifies one incoming change notification.
type Outcome int

const (
	// Apply means the notification is newer and must be applied and
	// rendered.
	Apply Outcome = iota
	// ApplySkipRender means the notification is newer but its content is
	// identical to what is already shown; apply the revision bookkeeping
	// and skip the redundant UI work.
	ApplySkipRender
	// DropStale means the notification is older than what was already
	// applied.
	DropStale
	// DropSelfEcho means the notification is the echo of a write this
	// context produced itself and already applied.
	DropSelfEcho
	// DropDuplicateSave means a revision-less notification repeated the
	// last applied save id.
	DropDuplicateSave
)

// String returns the string representation of Outcome.
func (o Outcome) String() string {
	switch o {
	case Apply:
		return "APPLY"
	case ApplySkipRender:
		return "APPLY_SKIP_RENDER"
	case DropStale:
		return "DROP_STALE"
	case DropSelfEcho:
		return "DROP_SELF_ECHO"
	case DropDuplicateSave:
		return "DROP_DUPLICATE_SAVE"
	default:
		return "UNKNOWN"
	}
}

// Applies reports whether the outcome admits the notification into local
// state (with or without a render).
func (o Outcome) Applies() bool {
	return o == Apply || o == ApplySkipRender
}

// Classify runs the dedup cascade over one notification. The checks are a
// strict priority order, never a conjunction:
//
//  1. revision defined and ≤ applied → drop (self-echo if the save id is
//     ours, stale otherwise);
//  2. revision defined and > applied → apply, authoritative regardless of
//     save id or checksum;
//  3. revision undefined → fall back to the save id: apply if it differs
//     from the last applied one, drop the duplicate otherwise.
//
// The checksum participates only after acceptance, to skip redundant
// rendering of byte-identical content.
func (l *Ledger) Classify(revision int64, saveID, checksum string) Outcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	if revision != RevisionUndefined {
		if l.applied != Unknown && revision <= l.applied {
			if _, own := l.ownSaveIDs[saveID]; own {
				return DropSelfEcho
			}
			return DropStale
		}
		if checksum != "" && checksum == l.lastChecksum {
			return ApplySkipRender
		}
		return Apply
	}

	// No revision on the wire: save id is the only dedup signal left.
	if saveID != "" && saveID == l.lastSaveID {
		return DropDuplicateSave
	}
	if checksum != "" && checksum == l.lastChecksum {
		return ApplySkipRender
	}
	return Apply
}
