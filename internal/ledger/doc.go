// Package ledger is the single ordering authority for replicated
// snapshot writes. It assigns and validates monotonically increasing
// revisions, classifies incoming change notifications through the
// revision-first dedup cascade, and remembers which save ids this context
// produced so its own echoed notifications can be proven, not guessed.
//
// Arrival order of notifications carries no meaning; only the revision
// does. The save id is a fallback for notifications that carry no
// revision, and the content checksum can only ever downgrade an accepted
// notification to "apply without re-render"; it never rejects one.
package ledger
