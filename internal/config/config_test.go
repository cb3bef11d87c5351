package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.ListenAddr != ":9470" {
		t.Errorf("ListenAddr = %q, want :9470", cfg.ListenAddr)
	}
	if cfg.Write.Timeout != 2*time.Second {
		t.Errorf("Write.Timeout = %v, want 2s", cfg.Write.Timeout)
	}
	if cfg.Heartbeat.FailureThreshold != 2 {
		t.Errorf("FailureThreshold = %d, want 2", cfg.Heartbeat.FailureThreshold)
	}
	if cfg.CoordinatorID == "" {
		t.Error("CoordinatorID empty")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quicktab.yaml")
	raw := `
coordinator_id: coord-test
listen_addr: "127.0.0.1:7000"
db_path: /tmp/qt.db
quota_bytes: 65536
write:
  timeout: 500ms
  retry_base: 50ms
  retry_cap: 200ms
  retry_attempts: 5
heartbeat:
  interval: 3s
  timeout: 1s
  failure_threshold: 3
  failure_window: 30s
orphan_sweep_interval: 1m
`
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.CoordinatorID != "coord-test" {
		t.Errorf("CoordinatorID = %q", cfg.CoordinatorID)
	}
	if cfg.ListenAddr != "127.0.0.1:7000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.QuotaBytes != 65536 {
		t.Errorf("QuotaBytes = %d", cfg.QuotaBytes)
	}
	if cfg.Write.RetryAttempts != 5 {
		t.Errorf("RetryAttempts = %d", cfg.Write.RetryAttempts)
	}
	if cfg.Heartbeat.Interval != 3*time.Second {
		t.Errorf("Heartbeat.Interval = %v", cfg.Heartbeat.Interval)
	}
	if cfg.OrphanSweepInterval != time.Minute {
		t.Errorf("OrphanSweepInterval = %v", cfg.OrphanSweepInterval)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: \":8000\"\n"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ListenAddr != ":8000" {
		t.Errorf("ListenAddr = %q, want :8000", cfg.ListenAddr)
	}
	if cfg.DBPath != "quicktab.db" {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(c *Config) {}},
		{name: "empty listen addr", mutate: func(c *Config) { c.ListenAddr = "" }, wantErr: true},
		{name: "empty db path", mutate: func(c *Config) { c.DBPath = "" }, wantErr: true},
		{name: "empty coordinator id", mutate: func(c *Config) { c.CoordinatorID = "" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.Write.Timeout = -time.Second }, wantErr: true},
		{name: "negative attempts", mutate: func(c *Config) { c.Write.RetryAttempts = -1 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() on a missing file succeeded")
	}
}
