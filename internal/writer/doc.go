// Package writer serializes the concurrent write intents of one
// execution context. Intents queue into three priority lanes (high,
// medium, low), FIFO within a lane; a high intent overtakes queued medium
// and low work but never aborts a write already in flight. A write that
// does not complete within the configured timeout is evicted from its
// lane and failed so it cannot block the writes behind it.
//
// Each commit is an optimistic-concurrency round: read the snapshot,
// apply the intent's mutation, stamp the next revision and a fresh save
// id, then compare-and-set against the revision that was read. Revision
// conflicts re-read and retry under the shared backoff policy; quota
// failures are permanent and surface immediately. Every intent resolves
// to a definitive result, success or failure, never a silent no-op.
package writer
