package channel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"quicktab/internal/entity"
	quicktabpb "quicktab/internal/gen/api"
	"quicktab/internal/health"
	"quicktab/internal/store"
)

// RemoteStore exposes the coordinator's store to a page or panel context
// through the channel, satisfying store.Store. Reads and guarded writes
// go over unary RPCs; change notifications arrive as relayed StateChanged
// frames on the sync stream, so subscribers see the same at-least-once,
// unordered delivery the local backends provide.
type RemoteStore struct {
	client *Client

	mu       sync.Mutex
	nextID   int
	subs     map[string]map[int]store.ChangeFunc
	lastSeen map[string]*entity.Snapshot
}

// NewRemoteStore wires a remote store over the client. It takes over the
// client's OnStateChanged hook.
func NewRemoteStore(client *Client) *RemoteStore {
	rs := &RemoteStore{
		client:   client,
		subs:     make(map[string]map[int]store.ChangeFunc),
		lastSeen: make(map[string]*entity.Snapshot),
	}
	client.OnStateChanged = rs.dispatch
	return rs
}

// Get reads the snapshot for a key from the coordinator.
func (rs *RemoteStore) Get(ctx context.Context, key string) (*entity.Snapshot, error) {
	rpc := rs.rpc()
	if rpc == nil {
		return nil, health.ErrChannelDead
	}
	resp, err := rpc.GetState(ctx, &quicktabpb.GetStateRequest{NamespaceKey: key})
	if err != nil {
		return nil, fmt.Errorf("remote get %s: %w", key, err)
	}
	if !resp.GetFound() {
		return nil, nil
	}
	return snapshotFromProto(resp.GetSnapshot()), nil
}

// CompareAndSet writes a snapshot guarded by the expected revision.
func (rs *RemoteStore) CompareAndSet(ctx context.Context, key string, snap *entity.Snapshot, expectedRevision int64) error {
	rpc := rs.rpc()
	if rpc == nil {
		return health.ErrChannelDead
	}
	resp, err := rpc.PutState(ctx, &quicktabpb.PutStateRequest{
		NamespaceKey:     key,
		Snapshot:         snapshotToProto(snap),
		ExpectedRevision: expectedRevision,
	})
	if err != nil {
		return fmt.Errorf("remote put %s: %w", key, err)
	}
	switch resp.GetStatus() {
	case quicktabpb.PutStateResponse_SUCCESS:
		return nil
	case quicktabpb.PutStateResponse_STALE:
		return store.ErrStaleWrite
	case quicktabpb.PutStateResponse_QUOTA_EXCEEDED:
		return store.ErrQuotaExceeded
	default:
		return errors.New(resp.GetErrorMessage())
	}
}

// Subscribe registers a change callback fed by relayed StateChanged
// frames.
func (rs *RemoteStore) Subscribe(key string, fn store.ChangeFunc) func() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.subs[key] == nil {
		rs.subs[key] = make(map[int]store.ChangeFunc)
	}
	id := rs.nextID
	rs.nextID++
	rs.subs[key][id] = fn
	return func() {
		rs.mu.Lock()
		defer rs.mu.Unlock()
		delete(rs.subs[key], id)
	}
}

// Close closes the underlying client.
func (rs *RemoteStore) Close() error {
	return rs.client.Close()
}

// dispatch fans one relayed notification out to subscribers, supplying
// the previously seen snapshot as old.
func (rs *RemoteStore) dispatch(key string, snap *entity.Snapshot) {
	rs.mu.Lock()
	old := rs.lastSeen[key]
	rs.lastSeen[key] = snap.Clone()
	fns := make([]store.ChangeFunc, 0, len(rs.subs[key]))
	for _, fn := range rs.subs[key] {
		fns = append(fns, fn)
	}
	rs.mu.Unlock()

	for _, fn := range fns {
		go fn(old.Clone(), snap.Clone())
	}
}

func (rs *RemoteStore) rpc() quicktabpb.QuickTabSyncClient {
	rs.client.mu.Lock()
	defer rs.client.mu.Unlock()
	return rs.client.rpc
}
