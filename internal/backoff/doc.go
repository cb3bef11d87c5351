// Package backoff provides the one shared retry policy used by every
// retrying component (write commits, reconnect probes). Delays grow
// exponentially from a base up to a cap; callers decide what counts as a
// retryable error.
package backoff
