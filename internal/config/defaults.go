package config

// APIKeyEnvVar supplies the Anthropic API key when the config file omits it.
const APIKeyEnvVar = "ANTHROPIC_API_KEY"

const (
	defaultDataDir    = "~/.local/share/reelname"
	defaultInboxDir   = "process"
	defaultRenamedDir = "renamed"
	defaultArchiveDir = "archive"
	defaultLogDir     = "logs"

	defaultAnthropicBaseURL        = "https://api.anthropic.com/v1/messages"
	defaultAnthropicModel          = "claude-sonnet-4-20250514"
	defaultAnthropicMaxTokens      = 1024
	defaultAnthropicTimeoutSeconds = 60

	defaultLogLevel = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:    defaultDataDir,
			InboxDir:   defaultInboxDir,
			RenamedDir: defaultRenamedDir,
			ArchiveDir: defaultArchiveDir,
			LogDir:     defaultLogDir,
		},
		Anthropic: Anthropic{
			BaseURL:        defaultAnthropicBaseURL,
			Model:          defaultAnthropicModel,
			MaxTokens:      defaultAnthropicMaxTokens,
			TimeoutSeconds: defaultAnthropicTimeoutSeconds,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
