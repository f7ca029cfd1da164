package library

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DataFile != "library_data.json" {
		t.Fatalf("data file: %s", cfg.DataFile)
	}
	if cfg.OnCorrupt != OnCorruptReset {
		t.Fatalf("on_corrupt: %s", cfg.OnCorrupt)
	}
	if cfg.DeleteIssued != DeleteIssuedForbid {
		t.Fatalf("delete_issued: %s", cfg.DeleteIssued)
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "data_file: /tmp/cat.json\non_corrupt: fail\ndelete_issued: scrub\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataFile != "/tmp/cat.json" {
		t.Fatalf("data file: %s", cfg.DataFile)
	}
	if cfg.OnCorrupt != OnCorruptFail {
		t.Fatalf("on_corrupt: %s", cfg.OnCorrupt)
	}
	if cfg.DeleteIssued != DeleteIssuedScrub {
		t.Fatalf("delete_issued: %s", cfg.DeleteIssued)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level: %s", cfg.Log.Level)
	}
}

func TestLoadConfigFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("data_file: mine.json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataFile != "mine.json" {
		t.Fatalf("data file: %s", cfg.DataFile)
	}
	// Unset fields pick up defaults.
	if cfg.OnCorrupt != OnCorruptReset || cfg.DeleteIssued != DeleteIssuedForbid {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigRejectsUnknownPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("on_corrupt: shrug\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfigFile(path); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestLoadConfigFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("data_file: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfigFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
