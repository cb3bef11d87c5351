package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"quicktab/internal/backoff"
	"quicktab/internal/channel"
	"quicktab/internal/config"
	"quicktab/internal/engine"
	"quicktab/internal/ownership"
	"quicktab/internal/store"
	quicktabpb "quicktab/internal/gen/api"
)

// Daemon is the coordinator process: the durable store, the sync hub,
// and one engine per namespace executing relayed operations.
type Daemon struct {
	cfg        config.Config
	store      *store.Checked
	sqlite     *store.SQLiteStore
	hub        *channel.Hub
	grpcServer *grpc.Server

	mu      sync.Mutex
	engines map[string]*engine.Engine // namespace id -> engine

	stopSweep chan struct{}
	sweepDone chan struct{}
}

// NewDaemon opens the store and assembles the hub. Nothing listens yet.
func NewDaemon(cfg config.Config) (*Daemon, error) {
	sq, err := store.OpenSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", cfg.DBPath, err)
	}

	d := &Daemon{
		cfg:       cfg,
		sqlite:    sq,
		store:     store.NewChecked(sq, cfg.CoordinatorID),
		engines:   make(map[string]*engine.Engine),
		stopSweep: make(chan struct{}),
		sweepDone: make(chan struct{}),
	}
	d.hub = channel.NewHub(cfg.CoordinatorID, d.store, d.handleOperation)
	return d, nil
}

// Start serves gRPC until the listener fails or Stop is called.
func (d *Daemon) Start() error {
	lis, err := net.Listen("tcp", d.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", d.cfg.ListenAddr, err)
	}

	d.grpcServer = grpc.NewServer()
	quicktabpb.RegisterQuickTabSyncServer(d.grpcServer, d.hub)
	reflection.Register(d.grpcServer)

	go d.sweepLoop()

	log.Printf("[%s] Starting coordinator on %s (db=%s)",
		d.cfg.CoordinatorID, d.cfg.ListenAddr, d.cfg.DBPath)
	if err := d.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Stop drains everything in dependency order.
func (d *Daemon) Stop() {
	close(d.stopSweep)
	<-d.sweepDone

	if d.grpcServer != nil {
		d.grpcServer.GracefulStop()
	}
	d.hub.Close()

	d.mu.Lock()
	engines := make([]*engine.Engine, 0, len(d.engines))
	for _, e := range d.engines {
		engines = append(engines, e)
	}
	d.mu.Unlock()
	for _, e := range engines {
		e.Stop()
	}

	if err := d.store.Close(); err != nil {
		log.Printf("[%s] Store close: %v", d.cfg.CoordinatorID, err)
	}
	log.Printf("[%s] Coordinator stopped", d.cfg.CoordinatorID)
}

// handleOperation routes a relayed operation to the engine of the
// requester's namespace, under the requester's identity.
func (d *Daemon) handleOperation(ctx context.Context, from ownership.Identity, req channel.OperationRequest) channel.OperationResult {
	eng, err := d.engineFor(ctx, from.NamespaceID)
	if err != nil {
		return channel.OperationResult{
			RequestID:    req.RequestID,
			ErrorKind:    "internal",
			ErrorMessage: err.Error(),
		}
	}
	return eng.HandleRemote(ctx, from, req)
}

// engineFor lazily starts the per-namespace engine.
func (d *Daemon) engineFor(ctx context.Context, namespaceID string) (*engine.Engine, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if eng, ok := d.engines[namespaceID]; ok {
		return eng, nil
	}

	eng, err := engine.New(engine.Config{
		Identity: ownership.Identity{
			ContextID:   d.cfg.CoordinatorID,
			NamespaceID: namespaceID,
			Kind:        ownership.KindCoordinator,
		},
		Store:        d.store,
		WriteTimeout: d.cfg.Write.Timeout,
		Retry:        backoff.New(d.cfg.Write.RetryBase, d.cfg.Write.RetryCap, d.cfg.Write.RetryAttempts),
	})
	if err != nil {
		return nil, err
	}
	if err := eng.Start(ctx); err != nil {
		return nil, err
	}
	log.Printf("[%s] Engine started for namespace %s", d.cfg.CoordinatorID, namespaceID)
	d.engines[namespaceID] = eng
	return eng, nil
}

// sweepLoop periodically removes entities whose owning context is no
// longer connected.
func (d *Daemon) sweepLoop() {
	defer close(d.sweepDone)
	if d.cfg.OrphanSweepInterval <= 0 {
		return
	}
	ticker := time.NewTicker(d.cfg.OrphanSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-d.stopSweep:
			return
		case <-ticker.C:
			d.sweepOrphans()
		}
	}
}

func (d *Daemon) sweepOrphans() {
	d.mu.Lock()
	engines := make(map[string]*engine.Engine, len(d.engines))
	for ns, e := range d.engines {
		engines[ns] = e
	}
	d.mu.Unlock()

	isLive := func(contextID string) bool {
		// The coordinator's own writes never count as orphaned.
		return contextID == d.cfg.CoordinatorID || d.hub.ContextConnected(contextID)
	}
	for ns, eng := range engines {
		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Write.Timeout)
		res := <-eng.CleanupOrphans(ctx, isLive)
		cancel()
		if res.Err != nil {
			log.Printf("[%s] Orphan sweep for %s failed: %v", d.cfg.CoordinatorID, ns, res.Err)
		}
	}
}
