package channel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"quicktab/internal/entity"
	quicktabpb "quicktab/internal/gen/api"
	"quicktab/internal/ownership"
	"quicktab/internal/store"
)

// OperationHandler executes one mutation request on behalf of a remote
// context, under that context's identity. It must return a definitive
// result.
type OperationHandler func(ctx context.Context, from ownership.Identity, req OperationRequest) OperationResult

// Hub is the coordinator side of the message channel. It registers one
// stream per connected context, answers heartbeats, relays store change
// notifications as StateChanged frames, and serves snapshot reads and
// guarded writes for contexts that use the coordinator as their store.
type Hub struct {
	quicktabpb.UnimplementedQuickTabSyncServer

	coordinatorID string
	store         store.Store
	handler       OperationHandler

	mu      sync.Mutex
	conns   map[string]*hubConn // context id -> stream
	watched map[string]func()   // namespace key -> unsubscribe
}

type hubConn struct {
	identity ownership.Identity
	sendMu   sync.Mutex
	stream   quicktabpb.QuickTabSync_SyncServer
}

func (c *hubConn) send(f Frame) error {
	pb, err := toProto(f)
	if err != nil {
		return err
	}
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	return c.stream.Send(pb)
}

// NewHub creates the coordinator hub over the given (already checked)
// store. handler may be nil when no thin contexts are expected.
func NewHub(coordinatorID string, st store.Store, handler OperationHandler) *Hub {
	return &Hub{
		coordinatorID: coordinatorID,
		store:         st,
		handler:       handler,
		conns:         make(map[string]*hubConn),
		watched:       make(map[string]func()),
	}
}

// ContextConnected reports whether a context currently holds a stream.
// Feeds the orphan sweep's liveness check.
func (h *Hub) ContextConnected(contextID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.conns[contextID]
	return ok
}

// Close drops all store subscriptions.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for key, cancel := range h.watched {
		cancel()
		delete(h.watched, key)
	}
}

// Sync implements the bidirectional frame stream.
func (h *Hub) Sync(stream quicktabpb.QuickTabSync_SyncServer) error {
	first, err := stream.Recv()
	if err != nil {
		return err
	}
	frame, err := fromProto(first)
	if err != nil {
		return err
	}
	hello, ok := frame.(Hello)
	if !ok {
		return fmt.Errorf("%w: first frame must be hello, got %T", ErrInvalidFrame, frame)
	}

	identity := ownership.Identity{
		ContextID:   hello.ContextID,
		NamespaceID: hello.NamespaceID,
		Kind:        hello.Kind,
	}
	conn := &hubConn{identity: identity, stream: stream}
	h.register(conn)
	defer h.unregister(conn)

	if err := conn.send(HelloAck{CoordinatorID: h.coordinatorID}); err != nil {
		return err
	}
	log.Printf("[%s] Context %s (%s) connected for namespace %s",
		h.coordinatorID, identity.ContextID, identity.Kind, identity.NamespaceID)

	for {
		pb, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		frame, err := fromProto(pb)
		if err != nil {
			log.Printf("[%s] Dropping frame from %s: %v", h.coordinatorID, identity.ContextID, err)
			continue
		}

		switch fr := frame.(type) {
		case Heartbeat:
			if err := conn.send(HeartbeatAck{Seq: fr.Seq}); err != nil {
				return err
			}
		case OperationRequest:
			h.handleOperation(stream.Context(), conn, fr)
		default:
			log.Printf("[%s] Unexpected %T from %s, ignoring", h.coordinatorID, frame, identity.ContextID)
		}
	}
}

func (h *Hub) handleOperation(ctx context.Context, conn *hubConn, req OperationRequest) {
	var res OperationResult
	if h.handler == nil {
		res = OperationResult{
			RequestID:    req.RequestID,
			ErrorKind:    "unsupported",
			ErrorMessage: "coordinator does not accept relayed operations",
		}
	} else {
		res = h.handler(ctx, conn.identity, req)
		res.RequestID = req.RequestID
	}
	if err := conn.send(res); err != nil {
		log.Printf("[%s] Failed to answer operation %s: %v", h.coordinatorID, req.RequestID, err)
	}
}

// Probe implements the cheap liveness check.
func (h *Hub) Probe(ctx context.Context, req *quicktabpb.ProbeRequest) (*quicktabpb.ProbeResponse, error) {
	return &quicktabpb.ProbeResponse{CoordinatorId: h.coordinatorID}, nil
}

// GetState implements snapshot reads for remote contexts.
func (h *Hub) GetState(ctx context.Context, req *quicktabpb.GetStateRequest) (*quicktabpb.GetStateResponse, error) {
	snap, err := h.store.Get(ctx, req.GetNamespaceKey())
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return &quicktabpb.GetStateResponse{Found: false}, nil
	}
	return &quicktabpb.GetStateResponse{Found: true, Snapshot: snapshotToProto(snap)}, nil
}

// PutState implements guarded snapshot writes for remote contexts. The
// revision check rides on the store's compare-and-set; the hub adds no
// locking of its own.
func (h *Hub) PutState(ctx context.Context, req *quicktabpb.PutStateRequest) (*quicktabpb.PutStateResponse, error) {
	snap := snapshotFromProto(req.GetSnapshot())
	if snap == nil {
		return &quicktabpb.PutStateResponse{
			Status:       quicktabpb.PutStateResponse_ERROR,
			ErrorMessage: "missing snapshot",
		}, nil
	}

	err := h.store.CompareAndSet(ctx, req.GetNamespaceKey(), snap, req.GetExpectedRevision())
	switch {
	case err == nil:
		return &quicktabpb.PutStateResponse{
			Status:   quicktabpb.PutStateResponse_SUCCESS,
			Revision: snap.Revision,
		}, nil
	case errors.Is(err, store.ErrStaleWrite):
		return &quicktabpb.PutStateResponse{
			Status:       quicktabpb.PutStateResponse_STALE,
			ErrorMessage: err.Error(),
		}, nil
	case errors.Is(err, store.ErrQuotaExceeded):
		return &quicktabpb.PutStateResponse{
			Status:       quicktabpb.PutStateResponse_QUOTA_EXCEEDED,
			ErrorMessage: err.Error(),
		}, nil
	default:
		return &quicktabpb.PutStateResponse{
			Status:       quicktabpb.PutStateResponse_ERROR,
			ErrorMessage: err.Error(),
		}, nil
	}
}

func (h *Hub) register(conn *hubConn) {
	key := entity.NamespaceKey(conn.identity.NamespaceID)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn.identity.ContextID] = conn

	// First context in a namespace starts the relay for that key.
	if _, watching := h.watched[key]; !watching {
		h.watched[key] = h.store.Subscribe(key, func(old, new *entity.Snapshot) {
			h.broadcast(key, new)
		})
	}
}

func (h *Hub) unregister(conn *hubConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn.identity.ContextID)
	log.Printf("[%s] Context %s disconnected", h.coordinatorID, conn.identity.ContextID)
}

// broadcast relays one store change to every context in the namespace.
// Send failures are logged and left to each stream's own lifecycle; the
// store remains the source of truth for anyone who missed the frame.
func (h *Hub) broadcast(key string, snap *entity.Snapshot) {
	if snap == nil {
		return
	}
	h.mu.Lock()
	targets := make([]*hubConn, 0, len(h.conns))
	for _, conn := range h.conns {
		if entity.NamespaceKey(conn.identity.NamespaceID) == key {
			targets = append(targets, conn)
		}
	}
	h.mu.Unlock()

	for _, conn := range targets {
		if err := conn.send(StateChanged{NamespaceKey: key, Snapshot: snap}); err != nil {
			log.Printf("[%s] Relay to %s failed: %v", h.coordinatorID, conn.identity.ContextID, err)
		}
	}
}
