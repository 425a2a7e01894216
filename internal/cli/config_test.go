package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/UraniumCorporation/maiar-audit/pkg/registry"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("GITHUB_TOKEN", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.GitHubToken != "" {
		t.Errorf("GitHubToken = %q, want empty", cfg.GitHubToken)
	}
	if cfg.Timeout.Duration != registry.DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", cfg.Timeout.Duration, registry.DefaultTimeout)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("GITHUB_TOKEN", "")

	dir := filepath.Join(root, configDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "github_token = \"file-token\"\ntimeout = \"30s\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.GitHubToken != "file-token" {
		t.Errorf("GitHubToken = %q, want %q", cfg.GitHubToken, "file-token")
	}
	if cfg.Timeout.Duration != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout.Duration)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("GITHUB_TOKEN", "env-token")

	dir := filepath.Join(root, configDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("github_token = \"file-token\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.GitHubToken != "env-token" {
		t.Errorf("GitHubToken = %q, env must override the file", cfg.GitHubToken)
	}
}

func TestDurationUnmarshalText(t *testing.T) {
	var d duration
	if err := d.UnmarshalText([]byte("45s")); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	if d.Duration != 45*time.Second {
		t.Errorf("Duration = %v, want 45s", d.Duration)
	}
	if err := d.UnmarshalText([]byte("not-a-duration")); err == nil {
		t.Error("UnmarshalText() should reject invalid input")
	}
}
