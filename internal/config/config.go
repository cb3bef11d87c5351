package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the coordinator daemon configuration.
type Config struct {
	// CoordinatorID identifies this coordinator in logs and handshakes.
	// Defaults to the hostname.
	CoordinatorID string `yaml:"coordinator_id"`
	// ListenAddr is the gRPC listen address for connected contexts.
	ListenAddr string `yaml:"listen_addr"`
	// DBPath is the SQLite file holding the replicated snapshots.
	DBPath string `yaml:"db_path"`
	// QuotaBytes, when positive, bounds the encoded size of one snapshot.
	QuotaBytes int `yaml:"quota_bytes"`

	Write     WriteConfig     `yaml:"write"`
	Heartbeat HeartbeatConfig `yaml:"heartbeat"`

	// OrphanSweepInterval is how often the coordinator removes entities
	// whose owning context disconnected. Zero disables the sweep.
	OrphanSweepInterval time.Duration `yaml:"orphan_sweep_interval"`
}

// WriteConfig tunes the write coordinator.
type WriteConfig struct {
	// Timeout is the lane-eviction deadline for one queued write.
	Timeout time.Duration `yaml:"timeout"`
	// RetryBase is the first conflict-retry delay.
	RetryBase time.Duration `yaml:"retry_base"`
	// RetryCap bounds the exponential retry delay.
	RetryCap time.Duration `yaml:"retry_cap"`
	// RetryAttempts is the total attempt budget per write.
	RetryAttempts int `yaml:"retry_attempts"`
}

// HeartbeatConfig tunes the connection health monitor.
type HeartbeatConfig struct {
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
	// FailureThreshold is the consecutive-miss count that opens the
	// circuit. A single miss only degrades.
	FailureThreshold int           `yaml:"failure_threshold"`
	FailureWindow    time.Duration `yaml:"failure_window"`
}

// Default returns the configuration used when no file overrides it.
func Default() Config {
	host, _ := os.Hostname()
	if host == "" {
		host = "quicktab-coordinator"
	}
	return Config{
		CoordinatorID: host,
		ListenAddr:    ":9470",
		DBPath:        "quicktab.db",
		Write: WriteConfig{
			Timeout:       2 * time.Second,
			RetryBase:     100 * time.Millisecond,
			RetryCap:      400 * time.Millisecond,
			RetryAttempts: 3,
		},
		Heartbeat: HeartbeatConfig{
			Interval:         10 * time.Second,
			Timeout:          2 * time.Second,
			FailureThreshold: 2,
			FailureWindow:    60 * time.Second,
		},
		OrphanSweepInterval: 5 * time.Minute,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot run.
func (c Config) Validate() error {
	if c.CoordinatorID == "" {
		return fmt.Errorf("coordinator_id cannot be empty")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db_path cannot be empty")
	}
	if c.Write.Timeout < 0 || c.Write.RetryBase < 0 || c.Write.RetryCap < 0 {
		return fmt.Errorf("write durations cannot be negative")
	}
	if c.Write.RetryAttempts < 0 {
		return fmt.Errorf("retry_attempts cannot be negative")
	}
	if c.Heartbeat.FailureThreshold < 0 {
		return fmt.Errorf("failure_threshold cannot be negative")
	}
	return nil
}
