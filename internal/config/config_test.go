package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig_EnsureDirs_Permissions(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config-perm-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	cfg := &Config{
		ProjectRoot: tempDir,
		LogsDir:     filepath.Join(tempDir, ".goal-crew", "logs"),
	}

	if err := cfg.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs() error = %v", err)
	}

	info, err := os.Stat(cfg.LogsDir)
	if err != nil {
		t.Fatalf("failed to stat directory %s: %v", cfg.LogsDir, err)
	}

	perm := info.Mode().Perm()
	// 0700 means owner has rwx, group and others have nothing
	if perm&0077 != 0 {
		t.Errorf("logs directory %s has permissions %o, expected 0700 (no group/other access)", cfg.LogsDir, perm)
	}
}

func TestConfig_EnsureDirs_EmptyLogsDir(t *testing.T) {
	cfg := &Config{}
	if err := cfg.EnsureDirs(); err != nil {
		t.Errorf("EnsureDirs() with empty LogsDir error = %v", err)
	}
}

func TestGenerateDefaultConfigFile_DirectoryPermissions(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config-gen-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	configDir := filepath.Join(tempDir, "config_subdir")
	configPath := filepath.Join(configDir, "config.yaml")

	if err := GenerateDefaultConfigFile(configPath); err != nil {
		t.Fatalf("GenerateDefaultConfigFile() error = %v", err)
	}

	info, err := os.Stat(configDir)
	if err != nil {
		t.Fatalf("failed to stat config directory: %v", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		t.Errorf("config directory has permissions %o, expected 0700 (no group/other access)", perm)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}
	if !strings.Contains(string(data), "provider: gemini") {
		t.Errorf("generated config should set the default provider, got:\n%s", data)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Provider != ProviderGemini {
		t.Errorf("Provider = %s, want %s", cfg.Provider, ProviderGemini)
	}

	if cfg.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %s, want gemini-2.5-flash", cfg.Model)
	}

	if cfg.APIKeyEnv != "GEMINI_API_KEY" {
		t.Errorf("APIKeyEnv = %s, want GEMINI_API_KEY", cfg.APIKeyEnv)
	}

	if cfg.StandupTime != "08:00 AM" {
		t.Errorf("StandupTime = %q, want 08:00 AM", cfg.StandupTime)
	}

	if cfg.Timeout != 600 {
		t.Errorf("Timeout = %d, want 600", cfg.Timeout)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfig_EffectiveProvider(t *testing.T) {
	cfg := &Config{Provider: ProviderGemini}
	if got := cfg.EffectiveProvider(); got != ProviderGemini {
		t.Errorf("EffectiveProvider() = %s, want %s", got, ProviderGemini)
	}

	cfg.DryRun = true
	if got := cfg.EffectiveProvider(); got != ProviderDryRun {
		t.Errorf("EffectiveProvider() with DryRun = %s, want %s", got, ProviderDryRun)
	}
}

func TestConfig_Save_CreatesParentDirectory(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config-save-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	configPath := filepath.Join(tempDir, "nested", "config", "config.yaml")

	cfg := DefaultConfig()
	cfg.ProjectRoot = tempDir
	cfg.LogsDir = filepath.Join(tempDir, "logs")

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("config file was not created at %s", configPath)
	}

	configDir := filepath.Dir(configPath)
	info, err := os.Stat(configDir)
	if err != nil {
		t.Fatalf("failed to stat config directory: %v", err)
	}
	perm := info.Mode().Perm()
	if perm&0077 != 0 {
		t.Errorf("config directory has permissions %o, expected 0700 (no group/other access)", perm)
	}
}

func TestConfig_Save_DoesNotWriteAPIKey(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.APIKey = "AIzaSecretValueThatMustNotLeak"

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if strings.Contains(string(data), cfg.APIKey) {
		t.Error("saved config contains the API key")
	}
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	tempDir := t.TempDir()

	configContent := `provider: command
agent_command: llm
agent_args: ["-m", "gemini-2.5-flash"]
logs_dir: transcripts
crew_dir: crew
standup_time: "07:30 AM"
timeout: 120
`
	configPath := filepath.Join(tempDir, ".goal-crew.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(origWd)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Provider != ProviderCommand {
		t.Errorf("Provider = %s, want %s", cfg.Provider, ProviderCommand)
	}
	if cfg.AgentCommand != "llm" {
		t.Errorf("AgentCommand = %s, want llm", cfg.AgentCommand)
	}
	if len(cfg.AgentArgs) != 2 || cfg.AgentArgs[0] != "-m" {
		t.Errorf("AgentArgs = %v, want [-m gemini-2.5-flash]", cfg.AgentArgs)
	}
	if cfg.StandupTime != "07:30 AM" {
		t.Errorf("StandupTime = %q, want 07:30 AM", cfg.StandupTime)
	}
	if cfg.Timeout != 120 {
		t.Errorf("Timeout = %d, want 120", cfg.Timeout)
	}
	if filepath.Base(cfg.LogsDir) != "transcripts" || !filepath.IsAbs(cfg.LogsDir) {
		t.Errorf("LogsDir = %s, want absolute path ending with transcripts", cfg.LogsDir)
	}
	if filepath.Base(cfg.CrewDir) != "crew" || !filepath.IsAbs(cfg.CrewDir) {
		t.Errorf("CrewDir = %s, want absolute path ending with crew", cfg.CrewDir)
	}
}

func TestLoad_ExplicitPathAndEnv(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "custom.yaml")
	if err := os.WriteFile(configPath, []byte("model: gemini-2.5-pro\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("GOAL_CREW_STANDUP_TIME", "09:15 AM")
	t.Setenv("GOAL_CREW_API_KEY_ENV", "TEST_GOAL_CREW_KEY")
	t.Setenv("TEST_GOAL_CREW_KEY", "secret-from-env")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("Model = %s, want gemini-2.5-pro", cfg.Model)
	}
	if cfg.StandupTime != "09:15 AM" {
		t.Errorf("StandupTime = %q, want value from env", cfg.StandupTime)
	}
	if cfg.APIKey != "secret-from-env" {
		t.Errorf("APIKey = %q, want value resolved from api_key_env", cfg.APIKey)
	}
}

func TestLoad_MissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load() with a missing explicit file should fail")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Provider:     ProviderGemini,
			Model:        "gemini-2.5-flash",
			AgentCommand: "gemini",
			Timeout:      600,
			Temperature:  0.7,
			StandupTime:  "08:00 AM",
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}, wantErr: false},
		{name: "dry run provider", mutate: func(c *Config) { c.Provider = ProviderDryRun }, wantErr: false},
		{name: "unknown provider", mutate: func(c *Config) { c.Provider = "openai" }, wantErr: true},
		{name: "gemini without model", mutate: func(c *Config) { c.Model = "" }, wantErr: true},
		{
			name: "command without agent command",
			mutate: func(c *Config) {
				c.Provider = ProviderCommand
				c.AgentCommand = ""
			},
			wantErr: true,
		},
		{name: "invalid timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: true},
		{name: "temperature too high", mutate: func(c *Config) { c.Temperature = 3 }, wantErr: true},
		{name: "empty standup time", mutate: func(c *Config) { c.StandupTime = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_ReportsAllProblems(t *testing.T) {
	cfg := &Config{Provider: "nope", Timeout: 0, Temperature: -1}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}

	msg := err.Error()
	for _, want := range []string{"invalid provider", "timeout", "temperature", "standup_time"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Validate() error should mention %q, got: %s", want, msg)
		}
	}
}

func TestGetConfigFilePath_PrefersCurrentDirectory(t *testing.T) {
	tempDir := t.TempDir()
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(origWd)

	if err := os.WriteFile(".goal-crew.yaml", []byte("provider: dry-run\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if got := GetConfigFilePath(); got != ".goal-crew.yaml" {
		t.Errorf("GetConfigFilePath() = %s, want .goal-crew.yaml", got)
	}
}
