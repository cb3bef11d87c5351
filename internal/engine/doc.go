// Package engine assembles one SyncEngine per execution context. The
// engine owns the context's working set of quick-tab windows and is the
// single mutation entry point for the rendering layer: operation requests
// go through the ownership filter into the write coordinator, committed
// snapshots come back through the store's change propagation, and the
// revision ledger decides what applies. The rendering layer consumes
// entity created/updated/removed events and nothing else.
//
// There are no package-level singletons: every engine is constructed with
// its identity injected, and two engines in one process share nothing but
// the store they are given.
package engine
