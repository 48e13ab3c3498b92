// Package cli provides the command-line interface
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/betteros/goal-crew/internal/config"
	"github.com/betteros/goal-crew/internal/crew"
	crewerrors "github.com/betteros/goal-crew/internal/errors"
	"github.com/betteros/goal-crew/internal/i18n"
	"github.com/betteros/goal-crew/internal/llm"
	"github.com/betteros/goal-crew/internal/logging"
	"github.com/betteros/goal-crew/internal/result"
	"github.com/betteros/goal-crew/internal/service"
	"github.com/betteros/goal-crew/internal/usercontext"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// skipConfig marks commands that run without loading the configuration
const skipConfig = "skip-config"

// newModel builds the model shared by every agent of a run
var newModel = func(ctx context.Context, cfg *config.Config) (llm.Model, error) {
	return llm.New(ctx, cfg.EffectiveProvider(), llm.Options{
		Model:       cfg.Model,
		APIKey:      cfg.APIKey,
		APIKeyEnv:   cfg.APIKeyEnv,
		Temperature: cfg.Temperature,
		Command:     cfg.AgentCommand,
		Args:        cfg.AgentArgs,
	})
}

// app holds the streams, flags and configuration of one invocation
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	// Global flags
	cfgFile     string
	dryRun      bool
	verbose     bool
	debug       bool
	provider    string
	model       string
	contextFile string

	cfg        *config.Config
	transcript *logging.Transcript
}

// Execute runs the root command and exits with its status
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one invocation. Any error is written once to errOut as an
// error envelope and yields exit code 1.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a := &app{in: in, out: out, errOut: errOut}
	defer func() { _ = a.transcript.Close() }()

	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(context.Background()); err != nil {
		a.transcript.Logf("-", "error: %v", err)
		_ = result.Write(errOut, result.NewError(err))
		return 1
	}
	return 0
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "goal-crew",
		Short:         i18n.CmdRootShort,
		Long:          i18n.CmdRootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for some commands
			if cmd.Name() == "help" || cmd.Annotations[skipConfig] == "true" {
				return nil
			}
			return a.loadConfig()
		},
		// No subcommand: smoke test with fixed inputs
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(cmd, func(ctx context.Context, svc *service.Service) (interface{}, error) {
				return svc.SmokeTest(ctx)
			})
		},
	}

	// Persistent flags (available to all commands)
	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", i18n.FlagConfig)
	flags.BoolVar(&a.dryRun, "dry-run", false, i18n.FlagDryRun)
	flags.BoolVarP(&a.verbose, "verbose", "v", false, i18n.FlagVerbose)
	flags.BoolVar(&a.debug, "debug", false, i18n.FlagDebug)
	flags.StringVar(&a.provider, "provider", "", i18n.FlagProvider)
	flags.StringVar(&a.model, "model", "", i18n.FlagModel)
	flags.StringVar(&a.contextFile, "context-file", "", i18n.FlagContextFile)

	// Crew commands
	root.AddCommand(a.newCreatePlanCmd())
	root.AddCommand(a.newDailyStandupCmd())
	root.AddCommand(a.newRealignmentCmd())

	// Supporting commands
	root.AddCommand(a.newServeCmd())
	root.AddCommand(a.newContextCmd())
	root.AddCommand(a.newConfigCmd())
	root.AddCommand(a.newCompletionCmd())
	root.AddCommand(a.newVersionCmd())

	return root
}

// loadConfig loads the configuration and applies the flag overrides
func (a *app) loadConfig() error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return crewerrors.ErrConfig(err)
	}

	// Override with flags
	if a.dryRun {
		cfg.DryRun = true
	}
	if a.verbose {
		cfg.Verbose = true
	}
	if a.debug {
		cfg.Debug = true
		cfg.Verbose = true // debug implies verbose
	}
	if a.provider != "" {
		cfg.Provider = a.provider
	}
	if a.model != "" {
		cfg.Model = a.model
	}

	if err := cfg.Validate(); err != nil {
		return crewerrors.ErrConfig(err)
	}
	a.cfg = cfg
	return nil
}

// runContext bounds a crew run by the configured timeout and by
// SIGINT/SIGTERM
func (a *app) runContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(a.cfg.Timeout)*time.Second)
	return ctx, func() {
		cancel()
		stop()
	}
}

// newService loads the crew definitions, builds the shared model and opens
// the transcript
func (a *app) newService(ctx context.Context, observers ...crew.Observer) (*service.Service, error) {
	defs, err := crew.LoadDefinitions(a.cfg.CrewDir)
	if err != nil {
		return nil, err
	}

	model, err := newModel(ctx, a.cfg)
	if err != nil {
		return nil, err
	}

	if !a.cfg.DisableTranscript && a.transcript == nil {
		tr, err := logging.Open(a.cfg.LogsDir)
		if err != nil {
			// The transcript is best effort
			a.debugf("transcript disabled: %v", err)
		} else {
			a.transcript = tr
		}
	}

	observers = append([]crew.Observer{a.transcript.Observe}, observers...)
	return service.New(defs, model, service.Options{
		StandupTime: a.cfg.StandupTime,
		Observer:    fanOut(observers),
		Warn: func(runID string, err error) {
			a.transcript.Logf(runID, "warning: %v", err)
			a.debugf("warning: %v", err)
		},
	}), nil
}

// withService runs one crew command and writes its envelope to stdout
func (a *app) withService(cmd *cobra.Command, fn func(ctx context.Context, svc *service.Service) (interface{}, error)) error {
	ctx, cancel := a.runContext(cmd.Context())
	defer cancel()

	p := a.newProgress(cmd.Name())
	svc, err := a.newService(ctx, p.Observe)
	if err != nil {
		return err
	}
	a.transcript.Logf("-", "goal-crew %s (model %s)", cmd.CommandPath(), svc.Model().Name())

	started := time.Now()
	env, err := fn(ctx, svc)
	p.Done(time.Since(started), err)
	if err != nil {
		return err
	}
	return result.Write(a.out, env)
}

// readContext reads the user context from --context-file or stdin. A
// terminal on stdin means no context was piped in.
func (a *app) readContext() (*usercontext.Context, error) {
	if a.contextFile != "" {
		return readContextFile(a.contextFile)
	}

	if isTerminal(a.in) {
		a.debugf("%s", i18n.UIStdinIsTerminal)
		return &usercontext.Context{}, nil
	}
	return usercontext.Read(a.in)
}

func (a *app) debugf(format string, args ...interface{}) {
	if a.cfg == nil || !a.cfg.Verbose {
		return
	}
	fmt.Fprintf(a.errOut, format+"\n", args...)
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       i18n.CmdVersionShort,
		Annotations: map[string]string{skipConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "goal-crew %s\n", Version)
			fmt.Fprintf(w, "  Commit: %s\n", Commit)
			fmt.Fprintf(w, "  Built:  %s\n", BuildDate)
		},
	}
}

// isTerminal reports whether r is a terminal file
func isTerminal(r interface{}) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func fanOut(observers []crew.Observer) crew.Observer {
	return func(e crew.Event) {
		for _, o := range observers {
			if o != nil {
				o(e)
			}
		}
	}
}
