// Package session assembles one page or panel context: the channel to
// the coordinator, the health monitor driving it, and the sync engine
// running over the remote store. While the channel is healthy,
// operations run through the engine's own write path; while it is not,
// non-critical operations park in the offline queue and replay to the
// coordinator after reconnection.
package session
