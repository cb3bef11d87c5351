package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quicktab/internal/channel"
	"quicktab/internal/config"
	"quicktab/internal/engine"
	"quicktab/internal/entity"
	"quicktab/internal/health"
	"quicktab/internal/ownership"
	"quicktab/internal/store"
	"quicktab/internal/writer"
)

// ErrQueued marks an operation parked in the offline queue. It is not a
// failure; the operation replays to the coordinator after reconnection,
// unless its queue slot expires first.
var ErrQueued = errors.New("operation queued until reconnect")

// Channel is what the session needs from the coordinator link. Satisfied
// by channel.Client.
type Channel interface {
	health.Transport
}

// Config assembles a Session. Identity, Channel and Store are required.
type Config struct {
	Identity ownership.Identity
	Channel  Channel
	Store    store.Store
	Handler  engine.Handler

	Heartbeat config.HeartbeatConfig
	QueueCap  int
	QueueTTL  time.Duration
}

// Session is one running context.
type Session struct {
	identity ownership.Identity
	channel  Channel
	monitor  *health.Monitor
	engine   *engine.Engine
}

// Dial builds a session whose store is the coordinator's, reached over a
// fresh gRPC client. Nothing connects until Start.
func Dial(addr string, cfg Config) (*Session, error) {
	client := channel.NewClient(addr, cfg.Identity)
	cfg.Channel = client
	cfg.Store = channel.NewRemoteStore(client)
	return New(cfg)
}

// New builds a session from explicit parts.
func New(cfg Config) (*Session, error) {
	if cfg.Channel == nil || cfg.Store == nil {
		return nil, fmt.Errorf("session: channel and store are required")
	}
	eng, err := engine.New(engine.Config{
		Identity: cfg.Identity,
		Store:    cfg.Store,
		Handler:  cfg.Handler,
	})
	if err != nil {
		return nil, err
	}
	s := &Session{
		identity: cfg.Identity,
		channel:  cfg.Channel,
		engine:   eng,
	}
	s.monitor = health.NewMonitor(health.Config{
		ContextID:         cfg.Identity.ContextID,
		Transport:         cfg.Channel,
		HeartbeatInterval: cfg.Heartbeat.Interval,
		HeartbeatTimeout:  cfg.Heartbeat.Timeout,
		FailureThreshold:  cfg.Heartbeat.FailureThreshold,
		FailureWindow:     cfg.Heartbeat.FailureWindow,
		QueueCapacity:     cfg.QueueCap,
		QueueTTL:          cfg.QueueTTL,
	})
	return s, nil
}

// Engine exposes the session's sync engine.
func (s *Session) Engine() *engine.Engine { return s.engine }

// State returns the connection-health state.
func (s *Session) State() health.State { return s.monitor.State() }

// Start connects the channel and hydrates the engine. It waits for the
// first successful connection so hydration reads real state; ctx bounds
// the wait.
func (s *Session) Start(ctx context.Context) error {
	s.monitor.Start()
	if err := s.waitConnected(ctx); err != nil {
		s.monitor.Stop()
		return err
	}
	if err := s.engine.Start(ctx); err != nil {
		s.monitor.Stop()
		return err
	}
	return nil
}

// Stop tears the session down. The engine drains first so no write races
// the closing channel.
func (s *Session) Stop() {
	s.engine.Stop()
	s.monitor.Stop()
}

// Apply runs one operation. With a usable channel it goes through the
// engine's write path. While the channel is down, close operations fail
// immediately so the caller can surface them, and everything else parks
// for the post-reconnect replay.
func (s *Session) Apply(ctx context.Context, req engine.OpRequest) <-chan writer.Result {
	switch s.monitor.State() {
	case health.Connected, health.Degraded:
		return s.engine.Apply(ctx, req)
	}

	out := make(chan writer.Result, 1)
	critical := req.Op == entity.OpClose
	err := s.monitor.Send(toOperationRequest(req), critical)
	if err == nil {
		err = ErrQueued
	}
	out <- writer.Result{Op: req.Op, EntityID: req.EntityID, Err: err}
	return out
}

// waitConnected polls until the monitor reports a usable channel.
func (s *Session) waitConnected(ctx context.Context) error {
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for {
		switch s.monitor.State() {
		case health.Connected, health.Degraded:
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("session: waiting for connection: %w", ctx.Err())
		case <-tick.C:
		}
	}
}

// toOperationRequest shapes an engine request for the relay path. The
// coordinator executes it under this context's identity.
func toOperationRequest(req engine.OpRequest) channel.OperationRequest {
	out := channel.OperationRequest{
		RequestID: entity.NewSaveID(),
		Op:        req.Op,
		EntityID:  req.EntityID,
		URL:       req.URL,
	}
	if req.Position != nil {
		out.Left = req.Position.Left
		out.Top = req.Position.Top
	}
	if req.Size != nil {
		out.Width = req.Size.Width
		out.Height = req.Size.Height
	}
	return out
}
