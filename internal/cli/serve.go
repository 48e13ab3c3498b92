package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/betteros/goal-crew/internal/i18n"
	"github.com/betteros/goal-crew/internal/server"
	"github.com/betteros/goal-crew/internal/ui"
)

func (a *app) newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: i18n.CmdServeShort,
		Long:  i18n.CmdServeLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.ServerAddr
			}
			if a.cfg.Debug {
				gin.SetMode(gin.DebugMode)
			} else {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, err := a.newService(ctx)
			if err != nil {
				return err
			}

			opts := server.Options{
				RequestTimeout: time.Duration(a.cfg.Timeout) * time.Second,
			}
			if a.transcript != nil {
				opts.AccessLog = a.transcript.Writer()
			}

			ui.PrintInfo(a.errOut, fmt.Sprintf(i18n.UIServerListening, addr))
			return server.New(svc, opts).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", i18n.FlagAddr)
	return cmd
}
