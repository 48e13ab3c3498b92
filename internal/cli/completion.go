package cli

import (
	"github.com/spf13/cobra"

	"github.com/betteros/goal-crew/internal/i18n"
)

const completionLong = `Generate the autocompletion script for the given shell.

Bash:
  goal-crew completion bash > /etc/bash_completion.d/goal-crew

Zsh:
  # enable completion first if it is not already:
  echo "autoload -U compinit; compinit" >> ~/.zshrc
  goal-crew completion zsh > "${fpath[1]}/_goal-crew"

Fish:
  goal-crew completion fish > ~/.config/fish/completions/goal-crew.fish

PowerShell:
  goal-crew completion powershell > goal-crew.ps1`

func (a *app) newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 i18n.CmdCompletionShort,
		Annotations:           map[string]string{skipConfig: "true"},
		Long:                  completionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(a.out)
			case "zsh":
				return root.GenZshCompletion(a.out)
			case "fish":
				return root.GenFishCompletion(a.out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(a.out)
			}
		},
	}
}
