// Package hydrate builds a context's local working set from a persisted
// snapshot at startup. Each entity passes through the ownership filter;
// rejected entities stay untouched in the snapshot for their real owners.
// Every entity produces one decision record so an audit trail can explain
// exactly why a window did or did not appear after reload.
//
// Hydration filters by the context's current identity only. An entity
// reassigned by an adopt operation hydrates under its new owner and never
// again under the old one; no ownership history is consulted.
package hydrate
