package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration. Inbox, renamed, archive, and log
// directories may be absolute or relative; relative values are resolved
// against the data directory.
type Paths struct {
	DataDir    string `toml:"data_dir"`
	InboxDir   string `toml:"inbox_dir"`
	RenamedDir string `toml:"renamed_dir"`
	ArchiveDir string `toml:"archive_dir"`
	LogDir     string `toml:"log_dir"`
}

// Anthropic contains connection settings for the vision recognition API.
type Anthropic struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	MaxTokens      int    `toml:"max_tokens"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for reelname.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Anthropic Anthropic `toml:"anthropic"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/reelname/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. A missing file is not
// an error; defaults plus environment fallbacks apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("reelname.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.DataDir, err = ExpandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if c.Paths.InboxDir, err = c.resolveDataPath(c.Paths.InboxDir, defaultInboxDir); err != nil {
		return fmt.Errorf("paths.inbox_dir: %w", err)
	}
	if c.Paths.RenamedDir, err = c.resolveDataPath(c.Paths.RenamedDir, defaultRenamedDir); err != nil {
		return fmt.Errorf("paths.renamed_dir: %w", err)
	}
	if c.Paths.ArchiveDir, err = c.resolveDataPath(c.Paths.ArchiveDir, defaultArchiveDir); err != nil {
		return fmt.Errorf("paths.archive_dir: %w", err)
	}
	if c.Paths.LogDir, err = c.resolveDataPath(c.Paths.LogDir, defaultLogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}

	c.Anthropic.APIKey = strings.TrimSpace(c.Anthropic.APIKey)
	if c.Anthropic.APIKey == "" {
		if value, ok := os.LookupEnv(APIKeyEnvVar); ok {
			c.Anthropic.APIKey = strings.TrimSpace(value)
		}
	}
	c.Anthropic.BaseURL = strings.TrimSpace(c.Anthropic.BaseURL)
	if c.Anthropic.BaseURL == "" {
		c.Anthropic.BaseURL = defaultAnthropicBaseURL
	}
	c.Anthropic.Model = strings.TrimSpace(c.Anthropic.Model)
	if c.Anthropic.Model == "" {
		c.Anthropic.Model = defaultAnthropicModel
	}
	if c.Anthropic.MaxTokens <= 0 {
		c.Anthropic.MaxTokens = defaultAnthropicMaxTokens
	}
	if c.Anthropic.TimeoutSeconds <= 0 {
		c.Anthropic.TimeoutSeconds = defaultAnthropicTimeoutSeconds
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// resolveDataPath expands value and joins it onto DataDir when relative.
func (c *Config) resolveDataPath(value, fallback string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	if strings.HasPrefix(value, "~") {
		return ExpandPath(value)
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value), nil
	}
	return filepath.Join(c.Paths.DataDir, value), nil
}

// EnsureDirectories creates the directories a run writes into. The inbox is
// deliberately not created here: a missing inbox is a startup error surfaced
// by the scanner, not something to paper over with an empty directory.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.RenamedDir, c.Paths.ArchiveDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// CreateSample writes the embedded sample configuration to path.
func CreateSample(path string) error {
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// ExpandPath resolves ~ prefixes and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
