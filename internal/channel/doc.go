// Package channel carries the message-passing link between execution
// contexts and the coordinator over a bidirectional gRPC stream. Frames
// form a closed variant set and are validated at the boundary before
// anything reaches the core; an unknown or malformed frame never makes it
// past Recv.
//
// The client side implements the health.Transport interface (connect,
// heartbeat, probe, send) and exposes the coordinator's store through
// RemoteStore, so a page or panel context uses the same engine wiring as
// the coordinator itself. Delivery is fire-and-forget; disconnect
// detection is best-effort and the health monitor owns the lifecycle.
package channel
