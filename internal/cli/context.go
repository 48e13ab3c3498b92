package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
	"github.com/betteros/goal-crew/internal/i18n"
	"github.com/betteros/goal-crew/internal/ui"
	"github.com/betteros/goal-crew/internal/usercontext"
)

// DefaultContextFile is where context init writes when --output is not set
const DefaultContextFile = "context.json"

const (
	contextMerge = iota
	contextReplace
	contextCancel
)

func (a *app) newContextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: i18n.CmdContextShort,
	}
	cmd.AddCommand(a.newContextInitCmd())
	return cmd
}

func (a *app) newContextInitCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: i18n.CmdContextInitShort,
		Long:  i18n.CmdContextInitLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := a.out
			prompt := ui.NewPrompt(a.in, w)

			ui.PrintHeader(w, i18n.UIContextProfile)

			uc := &usercontext.Context{}
			if _, err := os.Stat(output); err == nil && !force {
				ui.PrintWarning(w, fmt.Sprintf(i18n.UIContextExists, output))
				choice, err := prompt.Select(i18n.UIContextAction, []string{
					i18n.UIContextMerge,
					i18n.UIContextReplace,
					i18n.UIContextCancel,
				})
				if err != nil {
					return err
				}
				switch choice {
				case contextCancel:
					ui.PrintInfo(w, i18n.MsgCancelled)
					return nil
				case contextMerge:
					existing, err := readContextFile(output)
					if err != nil {
						return err
					}
					uc = existing
				}
			}

			if err := askProfile(prompt, uc); err != nil {
				return err
			}

			if err := writeContextFile(output, uc); err != nil {
				return err
			}
			ui.PrintSuccess(w, fmt.Sprintf(i18n.UIContextWritten, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", DefaultContextFile, i18n.FlagOutputFile)
	cmd.Flags().BoolVarP(&force, "force", "f", false, i18n.FlagForce)
	return cmd
}

// askProfile fills the interview fields. Goals, todos and financial data
// are left as they are.
func askProfile(prompt *ui.Prompt, uc *usercontext.Context) error {
	values, err := prompt.AskMultiline(i18n.UIAskValues)
	if err != nil {
		return err
	}
	if len(values) > 0 {
		uc.Values = values
	}

	goal, err := prompt.Ask(i18n.UIAskFiveYearGoal)
	if err != nil {
		return err
	}
	if goal != "" {
		uc.FiveYearGoal = &goal
	}

	anxieties, err := prompt.AskMultiline(i18n.UIAskAnxieties)
	if err != nil {
		return err
	}
	if len(anxieties) > 0 {
		uc.Anxieties = anxieties
	}
	return nil
}

func readContextFile(path string) (*usercontext.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, crewerrors.ErrFileNotFound(path)
		}
		return nil, crewerrors.ErrInvalidContext(err)
	}
	return usercontext.Parse(data)
}

// writeContextFile writes the context owner-only, it holds personal data
func writeContextFile(path string, uc *usercontext.Context) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return crewerrors.NewFatal(i18n.ErrOpFile, path, err)
	}
	if err := uc.Encode(f); err != nil {
		f.Close()
		return crewerrors.NewFatal(i18n.ErrOpFile, path, err)
	}
	return f.Close()
}
