// Package store wraps the durable key-value backend behind get, set and
// subscribe primitives. It holds no business logic: conflict resolution
// belongs to the ledger and write scheduling to the writer. Two backends
// are provided, an in-memory store for tests and short-lived contexts and
// a SQLite store for the coordinator, plus a Checked wrapper that guards
// reads with the snapshot checksum and falls back to the last-known-good
// copy on corruption.
//
// Change notifications are at-least-once and carry no ordering guarantee
// across writers; subscribers must classify them through the ledger.
package store
