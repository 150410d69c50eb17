package config

import (
	"errors"
	"fmt"

	"reelname/internal/services"
)

// Validate ensures the configuration is usable. A missing API credential
// aborts the run before any file is touched, so it is tagged for
// classification alongside the missing-inbox startup error.
func (c *Config) Validate() error {
	if c.Anthropic.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/reelname/config.toml"
		}
		return services.Wrap(
			services.ErrMissingCredential,
			"config",
			"validate",
			fmt.Sprintf("anthropic.api_key is required. Set %s or edit %s (create with 'reelname config init')", APIKeyEnvVar, defaultPath),
			nil,
		)
	}
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	if c.Paths.InboxDir == c.Paths.RenamedDir || c.Paths.InboxDir == c.Paths.ArchiveDir {
		return errors.New("paths.inbox_dir must differ from renamed_dir and archive_dir")
	}
	if c.Anthropic.MaxTokens <= 0 {
		return errors.New("anthropic.max_tokens must be positive")
	}
	if c.Anthropic.TimeoutSeconds <= 0 {
		return errors.New("anthropic.timeout_seconds must be positive (seconds)")
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
