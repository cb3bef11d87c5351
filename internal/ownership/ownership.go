package ownership

import (
	"errors"
	"fmt"

	"quicktab/internal/entity"
)

// ErrDenied is the sentinel for any ownership rejection. Denials are
// logged and surfaced, never retried.
var ErrDenied = errors.New("ownership denied")

// Kind names the flavor of execution context.
type Kind string

const (
	KindPage        Kind = "page"
	KindPanel       Kind = "panel"
	KindCoordinator Kind = "coordinator"
)

// Identity is the resolved identity of one execution context. ContextID
// empty means identity resolution has not completed yet; that state denies
// every mutation.
type Identity struct {
	ContextID   string
	NamespaceID string
	Kind        Kind
}

// Known reports whether the context has resolved its own identity.
func (id Identity) Known() bool {
	return id.ContextID != ""
}

// Deny reasons, stable strings used in decision records and logs.
const (
	ReasonOwned            = "owned"
	ReasonLegacyAdoptable  = "legacy entity, implicitly owned"
	ReasonUnknownIdentity  = "context identity unresolved"
	ReasonForeignContext   = "owned by another context"
	ReasonForeignNamespace = "owned by another namespace"
)

// Decision is the outcome of an ownership check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Err returns nil for an allowed decision and a wrapped ErrDenied
// otherwise.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrDenied, d.Reason)
}

// Owned reports whether the entity belongs to this context's working set.
// Legacy entities count as owned by any known context.
func Owned(e *entity.QuickTab, id Identity) bool {
	return Check(e, id).Allowed
}

// CanMutate decides whether the context may apply op to the entity. The
// adopt operation follows the same rules as every other mutation: it is
// allowed on legacy entities and on entities the context already owns,
// and routed through the regular write path by the caller.
func CanMutate(e *entity.QuickTab, id Identity, op entity.Op) Decision {
	return Check(e, id)
}

// Check applies the ownership rules in their fixed order:
// unknown self-identity denies everything, then legacy entities are
// allowed, then owner ids must match exactly.
func Check(e *entity.QuickTab, id Identity) Decision {
	if !id.Known() {
		return Decision{Allowed: false, Reason: ReasonUnknownIdentity}
	}
	if e.Legacy() {
		return Decision{Allowed: true, Reason: ReasonLegacyAdoptable}
	}
	if e.OwnerContextID != id.ContextID {
		return Decision{Allowed: false, Reason: ReasonForeignContext}
	}
	if e.OwnerNamespaceID != id.NamespaceID {
		return Decision{Allowed: false, Reason: ReasonForeignNamespace}
	}
	return Decision{Allowed: true, Reason: ReasonOwned}
}

// Stamp marks the entity as owned by the given identity. Called on the
// next successful mutation of a legacy entity and by the adopt operation.
func Stamp(e *entity.QuickTab, id Identity) {
	e.OwnerContextID = id.ContextID
	e.OwnerNamespaceID = id.NamespaceID
}
