// Package config provides configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGemini  = "gemini"
	ProviderCommand = "command"
	ProviderDryRun  = "dry-run"
)

// Config holds the application configuration
type Config struct {
	// LLM settings
	Provider     string   `mapstructure:"provider"`
	Model        string   `mapstructure:"model"`
	APIKeyEnv    string   `mapstructure:"api_key_env"`
	Temperature  float64  `mapstructure:"temperature"`
	Timeout      int      `mapstructure:"timeout"` // seconds
	AgentCommand string   `mapstructure:"agent_command"`
	AgentArgs    []string `mapstructure:"agent_args"`

	// Resolved from APIKeyEnv, never written to disk
	APIKey string `mapstructure:"-"`

	// Paths
	ProjectRoot string `mapstructure:"project_root"`
	CrewDir     string `mapstructure:"crew_dir"`
	LogsDir     string `mapstructure:"logs_dir"`

	// Output settings
	StandupTime string `mapstructure:"standup_time"`
	ServerAddr  string `mapstructure:"server_addr"`

	// Execution settings
	DryRun            bool `mapstructure:"dry_run"`
	Verbose           bool `mapstructure:"verbose"`
	Debug             bool `mapstructure:"debug"`
	DisableTranscript bool `mapstructure:"disable_transcript"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cwd, _ := os.Getwd()
	return &Config{
		Provider:     ProviderGemini,
		Model:        "gemini-2.5-flash",
		APIKeyEnv:    "GEMINI_API_KEY",
		Temperature:  0.7,
		Timeout:      600,
		AgentCommand: "gemini",
		AgentArgs:    []string{"-p"},
		ProjectRoot:  cwd,
		CrewDir:      "",
		LogsDir:      ".goal-crew/logs",
		StandupTime:  "08:00 AM",
		ServerAddr:   ":8090",
	}
}

// Load loads configuration from files, .env and environment.
// An empty path searches the default locations.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	// .env is optional, existing environment wins
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".goal-crew")
		v.SetConfigType("yaml")

		// Search paths
		v.AddConfigPath(".")                       // Current directory
		v.AddConfigPath("$HOME")                   // Home directory
		v.AddConfigPath("$HOME/.config/goal-crew") // XDG config
	}

	// Environment variables
	v.SetEnvPrefix("GOAL_CREW")
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("provider", cfg.Provider)
	v.SetDefault("model", cfg.Model)
	v.SetDefault("api_key_env", cfg.APIKeyEnv)
	v.SetDefault("temperature", cfg.Temperature)
	v.SetDefault("timeout", cfg.Timeout)
	v.SetDefault("agent_command", cfg.AgentCommand)
	v.SetDefault("agent_args", cfg.AgentArgs)
	v.SetDefault("project_root", cfg.ProjectRoot)
	v.SetDefault("crew_dir", cfg.CrewDir)
	v.SetDefault("logs_dir", cfg.LogsDir)
	v.SetDefault("standup_time", cfg.StandupTime)
	v.SetDefault("server_addr", cfg.ServerAddr)
	v.SetDefault("dry_run", cfg.DryRun)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("disable_transcript", cfg.DisableTranscript)

	// Try to read config file (don't fail if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Unmarshal to struct
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.APIKey = os.Getenv(cfg.APIKeyEnv)

	// Resolve relative paths
	cfg.resolvePaths()

	return cfg, nil
}

// resolvePaths converts relative paths to absolute paths
func (c *Config) resolvePaths() {
	if c.ProjectRoot == "" {
		c.ProjectRoot, _ = os.Getwd()
	}

	if c.CrewDir != "" && !filepath.IsAbs(c.CrewDir) {
		c.CrewDir = filepath.Join(c.ProjectRoot, c.CrewDir)
	}

	if c.LogsDir != "" && !filepath.IsAbs(c.LogsDir) {
		c.LogsDir = filepath.Join(c.ProjectRoot, c.LogsDir)
	}
}

// EffectiveProvider returns the provider to use, dry run taking precedence
func (c *Config) EffectiveProvider() string {
	if c.DryRun {
		return ProviderDryRun
	}
	return c.Provider
}

// Save saves the configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	v := viper.New()

	v.Set("provider", c.Provider)
	v.Set("model", c.Model)
	v.Set("api_key_env", c.APIKeyEnv)
	v.Set("temperature", c.Temperature)
	v.Set("timeout", c.Timeout)
	v.Set("agent_command", c.AgentCommand)
	v.Set("agent_args", c.AgentArgs)
	v.Set("crew_dir", c.CrewDir)
	v.Set("logs_dir", c.LogsDir)
	v.Set("standup_time", c.StandupTime)
	v.Set("server_addr", c.ServerAddr)

	return v.WriteConfigAs(path)
}

// Validate validates the configuration and reports every problem found
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.Provider {
	case ProviderGemini:
		if c.Model == "" {
			result = multierror.Append(result, fmt.Errorf("model is required for provider %s", c.Provider))
		}
	case ProviderCommand:
		if c.AgentCommand == "" {
			result = multierror.Append(result, fmt.Errorf("agent_command is required for provider %s", c.Provider))
		}
	case ProviderDryRun:
	default:
		result = multierror.Append(result, fmt.Errorf("invalid provider: %s", c.Provider))
	}

	if c.Timeout < 1 {
		result = multierror.Append(result, fmt.Errorf("timeout must be at least 1 second"))
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		result = multierror.Append(result, fmt.Errorf("temperature must be between 0 and 2"))
	}

	if c.StandupTime == "" {
		result = multierror.Append(result, fmt.Errorf("standup_time is required"))
	}

	return result.ErrorOrNil()
}

// EnsureDirs creates necessary directories
func (c *Config) EnsureDirs() error {
	if c.LogsDir == "" {
		return nil
	}
	// Transcripts may contain personal context, owner only
	if err := os.MkdirAll(c.LogsDir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.LogsDir, err)
	}
	return nil
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	// Check current directory first
	if _, err := os.Stat(".goal-crew.yaml"); err == nil {
		return ".goal-crew.yaml"
	}

	// Then home directory
	home, err := os.UserHomeDir()
	if err != nil {
		return ".goal-crew.yaml"
	}

	configPath := filepath.Join(home, ".goal-crew.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	// XDG config
	xdgConfig := filepath.Join(home, ".config", "goal-crew", ".goal-crew.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	// Default to current directory
	return ".goal-crew.yaml"
}

// GenerateDefaultConfigFile creates a default config file
func GenerateDefaultConfigFile(path string) error {
	content := `# goal-crew configuration

# LLM settings
provider: gemini               # gemini, command, dry-run
model: gemini-2.5-flash        # model used by every agent
api_key_env: GEMINI_API_KEY    # environment variable holding the API key (.env is read too)
temperature: 0.7
timeout: 600                   # seconds for a whole crew run

# Used when provider is "command": the prompt is passed as the last argument
agent_command: gemini
agent_args:
  - -p

# Paths (relative to the project root)
crew_dir: ""                   # directory with agents.yaml, tasks.yaml, crew.yaml overrides
logs_dir: .goal-crew/logs      # crew transcripts

# Output
standup_time: "08:00 AM"       # timestamp reported by daily_standup
server_addr: ":8090"           # listen address for "goal-crew serve"
`

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
