// Package it holds integration tests exercising several sync engines
// against one shared store, the way multiple execution contexts share
// replicated state in production.
package it

import (
	"context"
	"sync"
	"testing"
	"time"

	"quicktab/internal/backoff"
	"quicktab/internal/engine"
	"quicktab/internal/entity"
	"quicktab/internal/ownership"
	"quicktab/internal/store"
)

// Fixture is one shared store plus the contexts attached to it.
type Fixture struct {
	t     *testing.T
	Store store.Store

	mu       sync.Mutex
	contexts []*Context
}

// Context is one engine with its identity and event recorder.
type Context struct {
	Identity ownership.Identity
	Engine   *engine.Engine

	mu     sync.Mutex
	events []engine.Event
}

// NewFixture creates a fixture over an in-memory store.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	st := store.NewMemoryStore()
	t.Cleanup(func() { st.Close() })
	return &Fixture{t: t, Store: st}
}

// NewFixtureOver creates a fixture over a caller-provided store. The
// caller owns the store's lifecycle.
func NewFixtureOver(t *testing.T, st store.Store) *Fixture {
	t.Helper()
	return &Fixture{t: t, Store: st}
}

// StartContext creates and starts one engine for the given context id, in
// the shared namespace "ns-it".
func (f *Fixture) StartContext(contextID string, kind ownership.Kind) *Context {
	f.t.Helper()
	c := &Context{
		Identity: ownership.Identity{ContextID: contextID, NamespaceID: "ns-it", Kind: kind},
	}
	// A deep retry budget so heavily contended tests exercise
	// convergence rather than retry exhaustion.
	eng, err := engine.New(engine.Config{
		Identity: c.Identity,
		Store:    f.Store,
		Handler:  c.record,
		Retry:    backoff.New(5*time.Millisecond, 50*time.Millisecond, 20),
	})
	if err != nil {
		f.t.Fatalf("engine for %s: %v", contextID, err)
	}
	c.Engine = eng
	if err := eng.Start(context.Background()); err != nil {
		f.t.Fatalf("start %s: %v", contextID, err)
	}
	f.t.Cleanup(eng.Stop)

	f.mu.Lock()
	f.contexts = append(f.contexts, c)
	f.mu.Unlock()
	return c
}

// Key returns the shared namespace key.
func (f *Fixture) Key() string {
	return entity.NamespaceKey("ns-it")
}

// Snapshot reads the authoritative snapshot.
func (f *Fixture) Snapshot() *entity.Snapshot {
	f.t.Helper()
	snap, err := f.Store.Get(context.Background(), f.Key())
	if err != nil {
		f.t.Fatalf("read snapshot: %v", err)
	}
	return snap
}

// WaitConverged polls until every context's ledger reached the given
// revision.
func (f *Fixture) WaitConverged(revision int64) {
	f.t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if f.converged(revision) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.contexts {
		f.t.Logf("context %s at revision %d", c.Identity.ContextID, c.Engine.Ledger().Applied())
	}
	f.t.Fatalf("contexts did not converge on revision %d", revision)
}

func (f *Fixture) converged(revision int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.contexts {
		if c.Engine.Ledger().Applied() < revision {
			return false
		}
	}
	return true
}

func (c *Context) record(ev engine.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
}

// Events returns a copy of everything recorded so far.
func (c *Context) Events() []engine.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]engine.Event, len(c.events))
	copy(out, c.events)
	return out
}

// CountEvents returns how many recorded events match the kind.
func (c *Context) CountEvents(kind engine.EventKind) int {
	n := 0
	for _, ev := range c.Events() {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// CreateTab creates one window and returns its id.
func (c *Context) CreateTab(t *testing.T, url string) string {
	t.Helper()
	res := <-c.Engine.Apply(context.Background(), engine.OpRequest{Op: entity.OpCreate, URL: url})
	if res.Err != nil {
		t.Fatalf("create %s by %s: %v", url, c.Identity.ContextID, res.Err)
	}
	if res.EntityID == "" {
		t.Fatalf("create returned no entity id")
	}
	return res.EntityID
}
