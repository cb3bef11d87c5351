package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"quicktab/internal/backoff"
	"quicktab/internal/entity"
	"quicktab/internal/hydrate"
	"quicktab/internal/ledger"
	"quicktab/internal/ownership"
	"quicktab/internal/store"
	"quicktab/internal/writer"
)

// ErrNotStarted rejects operations before Start has hydrated the engine.
var ErrNotStarted = errors.New("engine not started")

// Config assembles an Engine. Identity and Store are required; Key
// defaults to the namespace key of the identity, the rest fall back to
// the writer defaults.
type Config struct {
	Identity ownership.Identity
	Store    store.Store
	Key      string
	Handler  Handler

	WriteTimeout time.Duration
	Retry        backoff.Policy
}

// Engine is the per-context synchronization core. It owns the local
// working set, classifies every incoming change through the ledger,
// serializes every mutation through the write coordinator, and emits
// events the rendering layer consumes. One engine per execution context;
// nothing here is process-global.
type Engine struct {
	id     ownership.Identity
	key    string
	store  store.Store
	ledger *ledger.Ledger
	coord  *writer.Coordinator

	mu        sync.Mutex
	working   map[string]*entity.QuickTab
	handler   Handler
	started   bool
	stopped   bool
	cancelSub func()

	// emitMu serializes handler calls across notification goroutines.
	emitMu sync.Mutex
}

// New creates an engine. Start must be called before any operation.
func New(cfg Config) (*Engine, error) {
	if !cfg.Identity.Known() && cfg.Identity.Kind != "" {
		// An unknown identity may still observe; it just cannot mutate.
		log.Printf("[engine] Starting with unresolved identity (kind=%s); mutations will be denied", cfg.Identity.Kind)
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("engine: store is required")
	}
	key := cfg.Key
	if key == "" {
		key = entity.NamespaceKey(cfg.Identity.NamespaceID)
	}

	led := ledger.New()
	e := &Engine{
		id:      cfg.Identity,
		key:     key,
		store:   cfg.Store,
		ledger:  led,
		working: make(map[string]*entity.QuickTab),
		handler: cfg.Handler,
	}
	e.coord = writer.New(writer.Config{
		Store:    cfg.Store,
		Key:      key,
		WriterID: cfg.Identity.ContextID,
		Ledger:   led,
		Timeout:  cfg.WriteTimeout,
		Retry:    cfg.Retry,
	})
	return e, nil
}

// Ledger exposes the engine's revision ledger, read-only in intent.
func (e *Engine) Ledger() *ledger.Ledger { return e.ledger }

// Start reads the current snapshot, hydrates the working set through the
// ownership filter, and subscribes to changes. Emits one Created event
// per hydrated entity, in z-order.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		return fmt.Errorf("engine: already started")
	}
	e.started = true
	e.mu.Unlock()

	snap, err := e.store.Get(ctx, e.key)
	if err != nil && !errors.Is(err, store.ErrCorruptSnapshot) {
		return fmt.Errorf("engine: initial read: %w", err)
	}
	if errors.Is(err, store.ErrCorruptSnapshot) {
		// No recoverable copy exists. Start empty rather than refuse to
		// start; the next good write repopulates everything.
		log.Printf("[%s] Initial snapshot corrupt with no fallback, starting empty", e.id.ContextID)
		snap = nil
	}

	res := hydrate.Hydrate(snap, e.id)
	var events []Event

	e.mu.Lock()
	for _, q := range res.Entities {
		e.working[q.ID] = q.Clone()
		events = append(events, Event{Kind: EntityCreated, Entity: q, Reason: "hydrated"})
	}
	e.mu.Unlock()

	if snap != nil {
		e.ledger.MarkApplied(snap.Revision, snap.SaveID, snap.Checksum)
	}
	log.Printf("[%s] Hydrated %d of %d entities at revision %d",
		e.id.ContextID, res.Accepted(), res.Accepted()+res.Rejected(), e.ledger.Applied())

	e.emit(events)

	e.mu.Lock()
	if e.stopped {
		// Stop won the race; subscribing now would leak past it.
		e.mu.Unlock()
		return nil
	}
	e.cancelSub = e.store.Subscribe(e.key, e.onChange)
	e.mu.Unlock()
	return nil
}

// Apply queues one operation under the engine's own identity.
func (e *Engine) Apply(ctx context.Context, req OpRequest) <-chan writer.Result {
	return e.ApplyAs(ctx, e.id, req)
}

// ApplyAs queues one operation under an explicit identity. The hub uses
// this to run operations relayed by remote contexts under the remote
// requester's identity, never the engine's own.
func (e *Engine) ApplyAs(ctx context.Context, id ownership.Identity, req OpRequest) <-chan writer.Result {
	out := make(chan writer.Result, 1)

	e.mu.Lock()
	started := e.started
	e.mu.Unlock()
	if !started {
		out <- writer.Result{Op: req.Op, EntityID: req.EntityID, Err: ErrNotStarted}
		return out
	}

	intent, err := buildIntent(id, req)
	if err != nil {
		out <- writer.Result{Op: req.Op, EntityID: req.EntityID, Err: err}
		return out
	}

	inner := e.coord.Enqueue(ctx, intent)
	go func() {
		res := <-inner
		if res.OK() {
			e.applyCommitted(res)
		}
		out <- res
	}()
	return out
}

// CleanupOrphans queues a low-priority sweep removing entities whose
// owning context isLive reports dead. Legacy and foreign-namespace
// entities are never touched.
func (e *Engine) CleanupOrphans(ctx context.Context, isLive func(contextID string) bool) <-chan writer.Result {
	out := make(chan writer.Result, 1)
	inner := e.coord.Enqueue(ctx, orphanCleanupIntent(e.id, isLive))
	go func() {
		res := <-inner
		if res.OK() {
			e.applyCommitted(res)
		}
		out <- res
	}()
	return out
}

// WorkingSet returns the current working set, cloned, in z-order.
func (e *Engine) WorkingSet() []*entity.QuickTab {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*entity.QuickTab, 0, len(e.working))
	for _, q := range e.working {
		out = append(out, q.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ZIndex < out[j].ZIndex })
	return out
}

// Stop unsubscribes and drains the write coordinator. In-flight writes
// still run to completion.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopped = true
	cancel := e.cancelSub
	e.cancelSub = nil
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	e.coord.Stop()
}

// applyCommitted folds the snapshot of a write this engine committed into
// the working set immediately. The echoed store notification for the same
// revision then classifies as stale or self-echo and is dropped; arrival
// order between the two paths does not matter because both converge on
// the same snapshot.
func (e *Engine) applyCommitted(res writer.Result) {
	e.ledger.MarkApplied(res.Revision, res.SaveID, res.Snapshot.Checksum)
	e.applySnapshot(res.Snapshot, "committed")
}

// onChange is the store subscription callback.
func (e *Engine) onChange(old, new *entity.Snapshot) {
	if new == nil {
		return
	}
	outcome := e.ledger.Classify(new.Revision, new.SaveID, new.Checksum)
	log.Printf("[%s] Change revision=%d saveId=%s outcome=%s",
		e.id.ContextID, new.Revision, new.SaveID, outcome)
	if !outcome.Applies() {
		return
	}

	e.ledger.MarkApplied(new.Revision, new.SaveID, new.Checksum)
	if outcome == ledger.ApplySkipRender {
		// Bookkeeping advanced; the content is byte-identical to what is
		// already shown, so the working set needs no diff.
		return
	}
	e.applySnapshot(new, "replicated")
}

func (e *Engine) applySnapshot(snap *entity.Snapshot, reason string) {
	e.mu.Lock()
	next, events := diffWorkingSet(e.working, snap, e.id, reason)
	e.working = next
	e.mu.Unlock()
	e.emit(events)
}

func (e *Engine) emit(events []Event) {
	if e.handler == nil || len(events) == 0 {
		return
	}
	e.emitMu.Lock()
	defer e.emitMu.Unlock()
	for _, ev := range events {
		e.handler(ev)
	}
}
