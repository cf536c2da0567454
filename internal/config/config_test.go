package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestApplyFile_OverridesOnlyPresentKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docstruct.yaml")
	content := "port: \"9000\"\nworker_count: 8\njob_ttl: 30m\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg := Config{
		Port:           "8091",
		DocstoreURL:    "http://localhost:8080",
		WorkerCount:    4,
		MaxQueueSize:   100,
		MaxUploadBytes: 1024,
		JobTTL:         time.Hour,
	}
	if err := cfg.applyFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("expected port %q, got %q", "9000", cfg.Port)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("expected worker count 8, got %d", cfg.WorkerCount)
	}
	if cfg.JobTTL != 30*time.Minute {
		t.Errorf("expected job ttl 30m, got %s", cfg.JobTTL)
	}
	// Keys absent from the file keep their values.
	if cfg.DocstoreURL != "http://localhost:8080" {
		t.Errorf("expected docstore url unchanged, got %q", cfg.DocstoreURL)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("expected max queue size unchanged, got %d", cfg.MaxQueueSize)
	}
}

func TestApplyFile_BadDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docstruct.yaml")
	if err := os.WriteFile(path, []byte("job_ttl: soon\n"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg := Config{}
	if err := cfg.applyFile(path); err == nil {
		t.Error("expected error for unparseable job_ttl")
	}
}

func TestValidate_RequiresKeys(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing keys")
	}
	cfg.DocstoreAPIKey = "store-key"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing service api key")
	}
	cfg.APIKey = "service-key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
