package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reelname/internal/services"
)

func TestLoadDefaultsWithEnvCredential(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "sk-test")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	writeConfig(t, cfgPath, `
[paths]
data_dir = "`+dir+`"
`)

	cfg, path, exists, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !exists || path != cfgPath {
		t.Fatalf("Load() path=%q exists=%v", path, exists)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want env fallback", cfg.Anthropic.APIKey)
	}
	if cfg.Paths.InboxDir != filepath.Join(dir, "process") {
		t.Errorf("InboxDir = %q, want joined onto data_dir", cfg.Paths.InboxDir)
	}
	if cfg.Anthropic.Model == "" || cfg.Anthropic.MaxTokens <= 0 {
		t.Errorf("anthropic defaults not applied: %+v", cfg.Anthropic)
	}
}

func TestLoadMissingCredentialIsFatal(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "")
	os.Unsetenv(APIKeyEnvVar)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	writeConfig(t, cfgPath, `
[paths]
data_dir = "`+dir+`"
`)

	_, _, _, err := Load(cfgPath)
	if err == nil {
		t.Fatal("Load() expected error for missing credential")
	}
	if !errors.Is(err, services.ErrMissingCredential) {
		t.Errorf("Load() error = %v, want ErrMissingCredential", err)
	}
	if !services.IsFatal(err) {
		t.Errorf("missing credential should be fatal: %v", err)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "sk-env")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	writeConfig(t, cfgPath, `
[paths]
data_dir = "`+dir+`"
archive_dir = "/var/photos/originals"

[anthropic]
api_key = "sk-file"
model = "claude-opus-4"
timeout_seconds = 120

[logging]
format = "json"
level = "debug"
`)

	cfg, _, _, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Anthropic.APIKey != "sk-file" {
		t.Errorf("file api_key should win over env, got %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-opus-4" {
		t.Errorf("Model = %q", cfg.Anthropic.Model)
	}
	if cfg.Anthropic.TimeoutSeconds != 120 {
		t.Errorf("TimeoutSeconds = %d", cfg.Anthropic.TimeoutSeconds)
	}
	if cfg.Paths.ArchiveDir != filepath.Clean("/var/photos/originals") {
		t.Errorf("absolute archive_dir mangled: %q", cfg.Paths.ArchiveDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging overrides lost: %+v", cfg.Logging)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "inbox equals renamed",
			mutate: func(c *Config) { c.Paths.RenamedDir = c.Paths.InboxDir },
			want:   "inbox_dir must differ",
		},
		{
			name:   "bad log format",
			mutate: func(c *Config) { c.Logging.Format = "yaml" },
			want:   "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Anthropic.APIKey = "sk-test"
			cfg.Paths.DataDir = t.TempDir()
			if err := cfg.normalize(); err != nil {
				t.Fatalf("normalize() error: %v", err)
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestEnsureDirectoriesSkipsInbox(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "sk-test")

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	writeConfig(t, cfgPath, `
[paths]
data_dir = "`+filepath.Join(dir, "data")+`"
`)

	cfg, _, _, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error: %v", err)
	}

	for _, created := range []string{cfg.Paths.RenamedDir, cfg.Paths.ArchiveDir, cfg.Paths.LogDir} {
		if _, err := os.Stat(created); err != nil {
			t.Errorf("directory %q not created: %v", created, err)
		}
	}
	if _, err := os.Stat(cfg.Paths.InboxDir); !os.IsNotExist(err) {
		t.Errorf("inbox %q should not be auto-created", cfg.Paths.InboxDir)
	}
}

func TestCreateSampleParses(t *testing.T) {
	t.Setenv(APIKeyEnvVar, "sk-test")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample() error: %v", err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}

func writeConfig(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}
