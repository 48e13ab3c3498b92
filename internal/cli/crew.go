package cli

import (
	"context"

	"github.com/spf13/cobra"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
	"github.com/betteros/goal-crew/internal/i18n"
	"github.com/betteros/goal-crew/internal/service"
	"github.com/betteros/goal-crew/internal/usercontext"
)

func (a *app) newCreatePlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   service.CommandCreatePlan + " <goal> <deadline_days>",
		Short: i18n.CmdCreatePlanShort,
		Long:  i18n.CmdCreatePlanLong,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return crewerrors.ErrUsage(i18n.ErrMsgCreatePlanUsage)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			goal := args[0]
			days, err := usercontext.ParseDeadline(args[1])
			if err != nil {
				return err
			}

			uc, err := a.readContext()
			if err != nil {
				return err
			}

			return a.withService(cmd, func(ctx context.Context, svc *service.Service) (interface{}, error) {
				return svc.CreatePlan(ctx, uc, goal, days)
			})
		},
	}
}

func (a *app) newDailyStandupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   service.CommandDailyStandup,
		Short: i18n.CmdDailyStandupShort,
		Long:  i18n.CmdDailyStandupLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.readContext()
			if err != nil {
				return err
			}

			return a.withService(cmd, func(ctx context.Context, svc *service.Service) (interface{}, error) {
				return svc.DailyStandup(ctx, uc)
			})
		},
	}
}

func (a *app) newRealignmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   service.CommandRealignment,
		Short: i18n.CmdRealignmentShort,
		Long:  i18n.CmdRealignmentLong,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.readContext()
			if err != nil {
				return err
			}

			return a.withService(cmd, func(ctx context.Context, svc *service.Service) (interface{}, error) {
				return svc.Realignment(ctx, uc)
			})
		},
	}
}
