package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/betteros/goal-crew/internal/config"
	"github.com/betteros/goal-crew/internal/i18n"
	"github.com/betteros/goal-crew/internal/llm"
	"github.com/betteros/goal-crew/internal/ui"
)

func (a *app) newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: i18n.CmdConfigShort,
		Long:  i18n.CmdConfigLong,
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: i18n.CmdConfigShowShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.showConfig()
			return nil
		},
	}

	configInitCmd := &cobra.Command{
		Use:         "init",
		Short:       i18n.CmdConfigInitShort,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	configPathCmd := &cobra.Command{
		Use:         "path",
		Short:       i18n.CmdConfigPathShort,
		Annotations: map[string]string{skipConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.out, config.GetConfigFilePath())
		},
	}

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	// Default subcommand is show
	configCmd.RunE = configShowCmd.RunE
	return configCmd
}

func (a *app) showConfig() {
	w := a.out
	cfg := a.cfg

	ui.PrintHeader(w, i18n.UICurrentConfig)

	apiKey := "(not set)"
	if cfg.APIKey != "" {
		apiKey = "(set)"
	}

	table := ui.NewTable("Setting", "Value")
	table.AddRow("Provider", cfg.EffectiveProvider())
	table.AddRow("Available Providers", strings.Join(llm.Providers(), ", "))
	table.AddRow("Model", cfg.Model)
	table.AddRow("API Key Env", fmt.Sprintf("%s %s", cfg.APIKeyEnv, apiKey))
	table.AddRow("Temperature", fmt.Sprintf("%.2f", cfg.Temperature))
	table.AddRow("Timeout", fmt.Sprintf("%d seconds", cfg.Timeout))
	table.AddRow("Agent Command", strings.TrimSpace(cfg.AgentCommand+" "+strings.Join(cfg.AgentArgs, " ")))
	table.AddRow("Project Root", cfg.ProjectRoot)
	table.AddRow("Crew Dir", orDefault(cfg.CrewDir, "(embedded)"))
	table.AddRow("Logs Dir", cfg.LogsDir)
	table.AddRow("Standup Time", cfg.StandupTime)
	table.AddRow("Server Addr", cfg.ServerAddr)
	table.AddRow("Transcript", fmt.Sprintf("%v", !cfg.DisableTranscript))
	table.Render(w)

	fmt.Fprintln(w)
	ui.PrintInfo(w, fmt.Sprintf(i18n.UIConfigFilePath, config.GetConfigFilePath()))
}

func (a *app) initConfig() error {
	w := a.out

	path := a.cfgFile
	if path == "" {
		path = ".goal-crew.yaml"
	}

	// Check if already exists
	if _, err := os.Stat(path); err == nil {
		ui.PrintWarning(w, fmt.Sprintf(i18n.UIConfigExists, path))
		prompt := ui.NewPrompt(a.in, w)
		ok, err := prompt.Confirm(i18n.UIConfirmOverwrite, false)
		if err != nil || !ok {
			return nil
		}
	}

	if err := config.GenerateDefaultConfigFile(path); err != nil {
		return err
	}

	ui.PrintSuccess(w, fmt.Sprintf(i18n.UIConfigWritten, path))
	ui.PrintInfo(w, i18n.UIConfigEditHint)
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
