package channel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"quicktab/internal/entity"
	quicktabpb "quicktab/internal/gen/api"
	"quicktab/internal/health"
	"quicktab/internal/ownership"
)

const dialTimeout = 5 * time.Second

// Client is the context side of the message channel. It satisfies
// health.Transport, so the health monitor owns when to connect, probe and
// tear down. A single Client is safe for concurrent use.
type Client struct {
	addr     string
	identity ownership.Identity

	// OnStateChanged receives relayed store change notifications. Set
	// before Connect.
	OnStateChanged func(key string, snap *entity.Snapshot)

	mu      sync.Mutex
	conn    *grpc.ClientConn
	rpc     quicktabpb.QuickTabSyncClient
	stream  quicktabpb.QuickTabSync_SyncClient
	seq     uint64
	pending map[uint64]chan struct{}
	results map[string]chan OperationResult
	recvGen int
}

// NewClient creates a client for the coordinator at addr. No connection
// is made until Connect.
func NewClient(addr string, identity ownership.Identity) *Client {
	return &Client{
		addr:     addr,
		identity: identity,
		pending:  make(map[uint64]chan struct{}),
		results:  make(map[string]chan OperationResult),
	}
}

// Connect dials (once) and opens a fresh sync stream, completing the
// hello handshake before returning. A previous stream, if any, is
// abandoned; its receive loop exits on the next Recv error.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
		defer cancel()
		conn, err := grpc.DialContext(dialCtx, c.addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithBlock(),
		)
		if err != nil {
			return fmt.Errorf("dial %s: %w", c.addr, err)
		}
		c.conn = conn
		c.rpc = quicktabpb.NewQuickTabSyncClient(conn)
	}

	stream, err := c.rpc.Sync(context.Background())
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}

	hello, err := toProto(Hello{
		ContextID:   c.identity.ContextID,
		NamespaceID: c.identity.NamespaceID,
		Kind:        c.identity.Kind,
	})
	if err != nil {
		return err
	}
	if err := stream.Send(hello); err != nil {
		return fmt.Errorf("send hello: %w", err)
	}

	first, err := stream.Recv()
	if err != nil {
		return fmt.Errorf("await hello ack: %w", err)
	}
	frame, err := fromProto(first)
	if err != nil {
		return err
	}
	if _, ok := frame.(HelloAck); !ok {
		return fmt.Errorf("%w: expected hello ack, got %T", ErrInvalidFrame, frame)
	}

	c.stream = stream
	c.recvGen++
	go c.recvLoop(stream, c.recvGen)
	return nil
}

// recvLoop dispatches inbound frames until the stream dies. gen guards a
// replaced stream from clearing state the new one owns.
func (c *Client) recvLoop(stream quicktabpb.QuickTabSync_SyncClient, gen int) {
	for {
		pb, err := stream.Recv()
		if err != nil {
			c.mu.Lock()
			if c.recvGen == gen {
				c.stream = nil
			}
			c.mu.Unlock()
			return
		}
		frame, err := fromProto(pb)
		if err != nil {
			log.Printf("[%s] Dropping inbound frame: %v", c.identity.ContextID, err)
			continue
		}

		switch fr := frame.(type) {
		case HeartbeatAck:
			c.mu.Lock()
			if ch, ok := c.pending[fr.Seq]; ok {
				close(ch)
				delete(c.pending, fr.Seq)
			}
			c.mu.Unlock()
		case OperationResult:
			c.mu.Lock()
			ch, ok := c.results[fr.RequestID]
			if ok {
				delete(c.results, fr.RequestID)
			}
			c.mu.Unlock()
			if ok {
				ch <- fr
			}
		case StateChanged:
			if cb := c.OnStateChanged; cb != nil {
				cb(fr.NamespaceKey, fr.Snapshot)
			}
		default:
			log.Printf("[%s] Unexpected inbound %T, ignoring", c.identity.ContextID, frame)
		}
	}
}

// Heartbeat sends one correlated round trip and waits for its ack.
func (c *Client) Heartbeat(ctx context.Context) error {
	c.mu.Lock()
	stream := c.stream
	if stream == nil {
		c.mu.Unlock()
		return health.ErrChannelDead
	}
	c.seq++
	seq := c.seq
	ack := make(chan struct{})
	c.pending[seq] = ack
	c.mu.Unlock()

	pb, err := toProto(Heartbeat{Seq: seq, SentAt: time.Now()})
	if err != nil {
		return err
	}
	if err := stream.Send(pb); err != nil {
		c.forget(seq)
		return err
	}

	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		c.forget(seq)
		return fmt.Errorf("%w: seq %d", health.ErrChannelTimeout, seq)
	}
}

func (c *Client) forget(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, seq)
}

// Probe runs the unary liveness check without touching the stream.
func (c *Client) Probe(ctx context.Context) error {
	c.mu.Lock()
	rpc := c.rpc
	c.mu.Unlock()
	if rpc == nil {
		return health.ErrChannelDead
	}
	_, err := rpc.Probe(ctx, &quicktabpb.ProbeRequest{ContextId: c.identity.ContextID})
	return err
}

// Send delivers one frame, fire-and-forget.
func (c *Client) Send(payload any) error {
	frame, ok := payload.(Frame)
	if !ok {
		return fmt.Errorf("%w: cannot send %T", ErrInvalidFrame, payload)
	}
	if err := Validate(frame); err != nil {
		return err
	}

	c.mu.Lock()
	stream := c.stream
	c.mu.Unlock()
	if stream == nil {
		return health.ErrChannelDead
	}
	pb, err := toProto(frame)
	if err != nil {
		return err
	}
	return stream.Send(pb)
}

// Operation relays one mutation request to the coordinator and waits for
// its definitive result.
func (c *Client) Operation(ctx context.Context, req OperationRequest) (OperationResult, error) {
	if err := Validate(req); err != nil {
		return OperationResult{}, err
	}
	ch := make(chan OperationResult, 1)
	c.mu.Lock()
	c.results[req.RequestID] = ch
	c.mu.Unlock()

	if err := c.Send(req); err != nil {
		c.mu.Lock()
		delete(c.results, req.RequestID)
		c.mu.Unlock()
		return OperationResult{}, err
	}

	select {
	case res := <-ch:
		return res, nil
	case <-ctx.Done():
		c.mu.Lock()
		delete(c.results, req.RequestID)
		c.mu.Unlock()
		return OperationResult{}, ctx.Err()
	}
}

// Close tears down the stream and the underlying connection.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	var err error
	if c.stream != nil {
		err = errors.Join(err, c.stream.CloseSend())
		c.stream = nil
	}
	if c.conn != nil {
		err = errors.Join(err, c.conn.Close())
		c.conn = nil
		c.rpc = nil
	}
	return err
}
