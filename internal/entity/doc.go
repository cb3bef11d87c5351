// Package entity defines the persisted data model for quick-tab windows:
// the QuickTab record, the Snapshot that holds all records for one
// namespace key, and the operation kinds that mutate them. The snapshot
// checksum covers entity content only, so two snapshots with equal
// entities compare equal regardless of revision or save id.
package entity
