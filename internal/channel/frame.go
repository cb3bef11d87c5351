package channel

import (
	"errors"
	"fmt"
	"time"

	"quicktab/internal/entity"
	"quicktab/internal/ownership"
)

// ErrInvalidFrame rejects a frame at the channel boundary.
var ErrInvalidFrame = errors.New("invalid frame")

// Frame is one message on the sync stream. The set of implementations is
// closed; Validate rejects anything else.
type Frame interface {
	isFrame()
}

// Hello opens a stream and announces the context's identity. It must be
// the first frame a client sends.
type Hello struct {
	ContextID   string
	NamespaceID string
	Kind        ownership.Kind
}

// HelloAck confirms stream registration.
type HelloAck struct {
	CoordinatorID string
}

// Heartbeat is one round-trip liveness check, correlated by Seq.
type Heartbeat struct {
	Seq    uint64
	SentAt time.Time
}

// HeartbeatAck answers a Heartbeat with the same Seq.
type HeartbeatAck struct {
	Seq uint64
}

// OperationRequest carries one mutation request from a thin context to
// the coordinator's mutation entry point, correlated by RequestID.
type OperationRequest struct {
	RequestID string
	Op        entity.Op
	EntityID  string
	URL       string
	Left      int
	Top       int
	Width     int
	Height    int
}

// OperationResult is the definitive answer to an OperationRequest.
type OperationResult struct {
	RequestID    string
	OK           bool
	Revision     int64
	ErrorKind    string
	ErrorMessage string
}

// StateChanged relays a store change notification to connected contexts.
type StateChanged struct {
	NamespaceKey string
	Snapshot     *entity.Snapshot
}

func (Hello) isFrame()            {}
func (HelloAck) isFrame()         {}
func (Heartbeat) isFrame()        {}
func (HeartbeatAck) isFrame()     {}
func (OperationRequest) isFrame() {}
func (OperationResult) isFrame()  {}
func (StateChanged) isFrame()     {}

// Validate checks a frame against the closed variant set and its field
// constraints. Frames failing validation never reach the core.
func Validate(f Frame) error {
	switch fr := f.(type) {
	case Hello:
		if fr.ContextID == "" {
			return fmt.Errorf("%w: hello without context id", ErrInvalidFrame)
		}
		if fr.NamespaceID == "" {
			return fmt.Errorf("%w: hello without namespace id", ErrInvalidFrame)
		}
		switch fr.Kind {
		case ownership.KindPage, ownership.KindPanel, ownership.KindCoordinator:
		default:
			return fmt.Errorf("%w: unknown context kind %q", ErrInvalidFrame, fr.Kind)
		}
		return nil
	case HelloAck:
		if fr.CoordinatorID == "" {
			return fmt.Errorf("%w: hello ack without coordinator id", ErrInvalidFrame)
		}
		return nil
	case Heartbeat, HeartbeatAck:
		return nil
	case OperationRequest:
		if fr.RequestID == "" {
			return fmt.Errorf("%w: operation without request id", ErrInvalidFrame)
		}
		if !fr.Op.Valid() {
			return fmt.Errorf("%w: unknown operation %q", ErrInvalidFrame, fr.Op)
		}
		if fr.Op == entity.OpCreate {
			if fr.URL == "" {
				return fmt.Errorf("%w: create without url", ErrInvalidFrame)
			}
		} else if fr.EntityID == "" {
			return fmt.Errorf("%w: %s without entity id", ErrInvalidFrame, fr.Op)
		}
		if fr.Op == entity.OpResize && (fr.Width <= 0 || fr.Height <= 0) {
			return fmt.Errorf("%w: resize to %dx%d", ErrInvalidFrame, fr.Width, fr.Height)
		}
		return nil
	case OperationResult:
		if fr.RequestID == "" {
			return fmt.Errorf("%w: operation result without request id", ErrInvalidFrame)
		}
		return nil
	case StateChanged:
		if fr.NamespaceKey == "" {
			return fmt.Errorf("%w: state change without namespace key", ErrInvalidFrame)
		}
		if fr.Snapshot == nil {
			return fmt.Errorf("%w: state change without snapshot", ErrInvalidFrame)
		}
		return nil
	case nil:
		return fmt.Errorf("%w: nil frame", ErrInvalidFrame)
	default:
		return fmt.Errorf("%w: unrecognized frame type %T", ErrInvalidFrame, f)
	}
}
