package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"quicktab/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML config file")
		listenAddr = flag.String("listen", "", "gRPC listen address (overrides config)")
		dbPath     = flag.String("db", "", "SQLite database path (overrides config)")
		coordID    = flag.String("id", "", "coordinator id (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *listenAddr != "" {
		cfg.ListenAddr = *listenAddr
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *coordID != "" {
		cfg.CoordinatorID = *coordID
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	daemon, err := NewDaemon(cfg)
	if err != nil {
		log.Fatalf("startup: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- daemon.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received %v, shutting down", sig)
		daemon.Stop()
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server: %v", err)
		}
	}
}
