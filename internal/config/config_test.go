package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadValidConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `account: alice
client_service_names:
  - Client-credentials
  - Client
personal_service_name: credswap-personal
api_service_name: credswap-api
backup_dir: /tmp/credswap-test
pin_dedicated_entries: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Account != "alice" {
		t.Errorf("Account = %q, want alice", cfg.Account)
	}
	if len(cfg.ClientServiceNames) != 2 || cfg.ClientServiceNames[0] != "Client-credentials" {
		t.Errorf("ClientServiceNames = %v", cfg.ClientServiceNames)
	}
	if cfg.PersonalServiceName != "credswap-personal" {
		t.Errorf("PersonalServiceName = %q", cfg.PersonalServiceName)
	}
	if cfg.APIServiceName != "credswap-api" {
		t.Errorf("APIServiceName = %q", cfg.APIServiceName)
	}
	if cfg.BackupDir != "/tmp/credswap-test" {
		t.Errorf("BackupDir = %q", cfg.BackupDir)
	}
	if !cfg.PinDedicatedEntries {
		t.Error("PinDedicatedEntries = false, want true")
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.Account == "" {
		t.Error("Account default should not be empty")
	}
	if len(cfg.ClientServiceNames) != len(DefaultClientServiceNames) {
		t.Errorf("ClientServiceNames = %v, want defaults", cfg.ClientServiceNames)
	}
	if cfg.PersonalServiceName != DefaultClientServiceNames[0] {
		t.Errorf("PersonalServiceName = %q, want %q", cfg.PersonalServiceName, DefaultClientServiceNames[0])
	}
	if cfg.APIServiceName != DefaultClientServiceNames[0] {
		t.Errorf("APIServiceName = %q, want %q", cfg.APIServiceName, DefaultClientServiceNames[0])
	}
	if cfg.BackupDir == "" {
		t.Error("BackupDir default should not be empty")
	}
	if cfg.PinDedicatedEntries {
		t.Error("PinDedicatedEntries should default to false")
	}
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `personal_service_name: credswap-personal
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PersonalServiceName != "credswap-personal" {
		t.Errorf("PersonalServiceName = %q", cfg.PersonalServiceName)
	}
	// Unset fields keep defaults.
	if cfg.APIServiceName != DefaultClientServiceNames[0] {
		t.Errorf("APIServiceName = %q, want default", cfg.APIServiceName)
	}
	if len(cfg.ClientServiceNames) == 0 {
		t.Error("ClientServiceNames should default")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.ClientServiceNames) == 0 {
		t.Error("ClientServiceNames should default for empty file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("account: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
