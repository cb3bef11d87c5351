package writer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"quicktab/internal/backoff"
	"quicktab/internal/entity"
	"quicktab/internal/ledger"
	"quicktab/internal/store"
)

var (
	// ErrTimeout marks an intent evicted from its lane after exceeding
	// the write timeout.
	ErrTimeout = errors.New("write evicted: timeout")
	// ErrCancelled marks an intent whose context was cancelled while it
	// was still queued.
	ErrCancelled = errors.New("write cancelled while queued")
	// ErrStopped marks intents drained when the coordinator shut down.
	ErrStopped = errors.New("write coordinator stopped")
	// ErrRetriesExhausted wraps the final conflict after the retry
	// budget ran out.
	ErrRetriesExhausted = errors.New("write failed: retries exhausted")
)

const (
	// DefaultTimeout is the lane-eviction deadline for one write.
	DefaultTimeout   = 2 * time.Second
	defaultRetryBase = 100 * time.Millisecond
	defaultRetryCap  = 400 * time.Millisecond
	defaultAttempts  = 3
)

// Config assembles a Coordinator. Store, Key, WriterID and Ledger are
// required; zero durations fall back to defaults.
type Config struct {
	Store    store.Store
	Key      string
	WriterID string
	Ledger   *ledger.Ledger
	Timeout  time.Duration
	Retry    backoff.Policy
}

// Coordinator owns the write path of one context. One dispatcher
// goroutine drains the lanes; lanes never share a blocking mutex with the
// commit itself, so a slow commit cannot wedge Enqueue.
type Coordinator struct {
	cfg Config

	mu     sync.Mutex
	lanes  [laneCount][]*pending
	closed bool

	signal chan struct{}
	stop   chan struct{}
	done   chan struct{}
}

type pending struct {
	intent *Intent
	ctx    context.Context
	result chan Result
}

// New creates and starts a coordinator.
func New(cfg Config) *Coordinator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retry == (backoff.Policy{}) {
		cfg.Retry = backoff.New(defaultRetryBase, defaultRetryCap, defaultAttempts)
	}
	c := &Coordinator{
		cfg:    cfg,
		signal: make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go c.dispatch()
	return c
}

// Enqueue adds an intent to its lane and returns a channel that resolves
// to exactly one definitive result. ctx cancels the intent only while it
// is still queued; once in flight it runs to completion or failure.
func (c *Coordinator) Enqueue(ctx context.Context, intent *Intent) <-chan Result {
	if intent.EnqueuedAt.IsZero() {
		intent.EnqueuedAt = time.Now()
	}
	p := &pending{intent: intent, ctx: ctx, result: make(chan Result, 1)}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		p.result <- Result{Op: intent.Op, EntityID: intent.EntityID, Err: ErrStopped}
		return p.result
	}
	lane := intent.Priority
	if lane < High || lane >= laneCount {
		lane = Medium
	}
	c.lanes[lane] = append(c.lanes[lane], p)
	c.mu.Unlock()

	select {
	case c.signal <- struct{}{}:
	default:
	}
	return p.result
}

// Depth returns the number of queued (not in-flight) intents.
func (c *Coordinator) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, lane := range c.lanes {
		n += len(lane)
	}
	return n
}

// Stop drains the queue, failing everything still queued, and waits for
// the dispatcher to exit. An in-flight write still runs to completion.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		<-c.done
		return
	}
	c.closed = true
	c.mu.Unlock()

	close(c.stop)
	<-c.done
}

func (c *Coordinator) dispatch() {
	defer close(c.done)
	for {
		p := c.next()
		if p == nil {
			select {
			case <-c.stop:
				c.drain()
				return
			case <-c.signal:
				continue
			}
		}

		if err := p.ctx.Err(); err != nil {
			p.result <- Result{Op: p.intent.Op, EntityID: p.intent.EntityID, Err: ErrCancelled}
			continue
		}
		c.run(p)
	}
}

// next pops the head of the highest non-empty lane.
func (c *Coordinator) next() *pending {
	c.mu.Lock()
	defer c.mu.Unlock()
	for lane := High; lane < laneCount; lane++ {
		if len(c.lanes[lane]) > 0 {
			p := c.lanes[lane][0]
			c.lanes[lane] = c.lanes[lane][1:]
			return p
		}
	}
	return nil
}

func (c *Coordinator) drain() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for lane := High; lane < laneCount; lane++ {
		for _, p := range c.lanes[lane] {
			p.result <- Result{Op: p.intent.Op, EntityID: p.intent.EntityID, Err: ErrStopped}
		}
		c.lanes[lane] = nil
	}
}

// run executes one intent with lane eviction. The commit goroutine is
// never aborted; eviction only stops the lane from waiting on it.
func (c *Coordinator) run(p *pending) {
	committed := make(chan Result, 1)
	go func() {
		// In-flight writes run to completion even if evicted, but not
		// forever: twice the eviction deadline bounds a leaked commit.
		ctx, cancel := context.WithTimeout(context.Background(), 2*c.cfg.Timeout)
		defer cancel()
		committed <- c.commit(ctx, p.intent)
	}()

	evict := time.NewTimer(c.cfg.Timeout)
	defer evict.Stop()

	select {
	case res := <-committed:
		p.result <- res
	case <-evict.C:
		log.Printf("[%s] Evicted %s write for entity %s from %s lane after %v",
			c.cfg.WriterID, p.intent.Op, p.intent.EntityID, p.intent.Priority, c.cfg.Timeout)
		p.result <- Result{Op: p.intent.Op, EntityID: p.intent.EntityID, Err: ErrTimeout}
	}
}

// commit runs the optimistic-concurrency round for one intent.
func (c *Coordinator) commit(ctx context.Context, intent *Intent) Result {
	fail := func(err error) Result {
		return Result{Op: intent.Op, EntityID: intent.EntityID, Err: err}
	}

	var committed *entity.Snapshot
	err := c.cfg.Retry.Retry(ctx, func(attempt int) error {
		current, err := c.cfg.Store.Get(ctx, c.cfg.Key)
		if err != nil {
			return err
		}

		draft := current.Clone()
		if draft == nil {
			draft = entity.NewSnapshot()
		}
		if err := intent.Mutate(draft); err != nil {
			return &mutateError{err: err}
		}

		draft.Revision = ledger.NextRevision(current)
		// Attribution is per entity: only the entities this intent
		// actually changed carry the writer id and the new revision.
		for id, q := range draft.Entities {
			prev := current.Get(id)
			if prev == nil || *prev != *q {
				q.LastWriterID = c.cfg.WriterID
				q.Revision = draft.Revision
			}
		}
		draft.SaveID = entity.NewSaveID()
		draft.Seal()

		expected := int64(0)
		if current != nil {
			expected = current.Revision
		}
		// Recorded before the write so the echoed notification can never
		// outrun the bookkeeping. A save id recorded for a write that
		// then loses the race is harmless: it is never observed again.
		c.cfg.Ledger.RecordOwnWrite(draft.Revision, draft.SaveID)
		if err := c.cfg.Store.CompareAndSet(ctx, c.cfg.Key, draft, expected); err != nil {
			if errors.Is(err, store.ErrStaleWrite) && attempt > 0 {
				log.Printf("[%s] Revision conflict on %s (attempt %d), re-reading",
					c.cfg.WriterID, intent.Op, attempt+1)
			}
			return err
		}
		committed = draft
		return nil
	}, func(err error) bool {
		// Conflicts and transient backend errors retry; quota and
		// mutation errors are permanent. Mutation failures (ownership
		// denial, missing entity, bad payload) never resolve by rereading.
		var me *mutateError
		if errors.As(err, &me) {
			return false
		}
		if errors.Is(err, store.ErrQuotaExceeded) || errors.Is(err, store.ErrClosed) {
			return false
		}
		return errors.Is(err, store.ErrStaleWrite) || transient(err)
	})
	if err != nil {
		var me *mutateError
		if errors.As(err, &me) {
			err = me.err
		}
		if errors.Is(err, store.ErrStaleWrite) {
			err = fmt.Errorf("%w: %v", ErrRetriesExhausted, err)
		}
		log.Printf("[%s] Write %s for entity %s failed: %v", c.cfg.WriterID, intent.Op, intent.EntityID, err)
		return fail(err)
	}

	return Result{
		Op:       intent.Op,
		EntityID: intent.EntityID,
		Revision: committed.Revision,
		SaveID:   committed.SaveID,
		Snapshot: committed,
	}
}

// mutateError marks an error raised by the intent's own mutation, as
// opposed to the store. The marker is stripped before the error reaches
// the caller.
type mutateError struct{ err error }

func (e *mutateError) Error() string { return e.err.Error() }
func (e *mutateError) Unwrap() error { return e.err }

// transient reports whether a backend error is worth retrying. Context
// cancellation and deadline expiry are not.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
