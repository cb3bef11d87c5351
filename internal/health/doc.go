// Package health manages the lifecycle of one context's message channel
// to the coordinator: connect, heartbeat, degrade, circuit-break,
// reconnect. A single missed heartbeat only degrades the connection;
// the circuit opens after repeated consecutive misses inside a bounded
// window. While the circuit is open, non-critical outbound messages
// queue locally with a TTL and drop-oldest overflow, and a capped-backoff
// probe looks for the channel to come back.
//
// Reconnection is guarded by a single in-flight flag so a heartbeat
// failure and an explicit retry cannot race to open duplicate channels.
package health
