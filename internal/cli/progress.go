package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/betteros/goal-crew/internal/crew"
	"github.com/betteros/goal-crew/internal/i18n"
	"github.com/betteros/goal-crew/internal/llm"
	"github.com/betteros/goal-crew/internal/ui"
)

// progress reports crew events on stderr: one line per step in verbose
// mode, a spinner when stderr is a terminal, nothing otherwise.
type progress struct {
	w       io.Writer
	command string
	verbose bool
	spinner *ui.Spinner
	tokens  func(string) int
}

func (a *app) newProgress(command string) *progress {
	p := &progress{
		w:       a.errOut,
		command: command,
		verbose: a.cfg.Verbose,
		tokens:  llm.CountTokens,
	}
	if !p.verbose && isTerminal(a.errOut) {
		p.spinner = ui.NewSpinner(fmt.Sprintf(i18n.UICrewRunning, command), a.errOut)
	}
	return p
}

// Observe handles one crew event
func (p *progress) Observe(e crew.Event) {
	step := fmt.Sprintf(i18n.UITaskStep, e.Agent, e.Task)

	switch e.Kind {
	case crew.EventTaskStarted:
		if p.spinner != nil {
			p.spinner.UpdateMessage(fmt.Sprintf("[%d/%d] %s", e.Index, e.Total, step))
			p.spinner.Start()
			return
		}
		if p.verbose {
			ui.PrintStep(p.w, e.Index, e.Total, step)
		}
	case crew.EventTaskFinished:
		if p.verbose {
			ui.PrintInfo(p.w, fmt.Sprintf(i18n.UITaskDone, e.Task, e.Duration.Round(time.Millisecond), p.tokens(e.Output)))
		}
	case crew.EventTaskFailed:
		if p.verbose {
			ui.PrintError(p.w, e.Err.Error())
		}
	}
}

// Done closes the progress display once the run is over
func (p *progress) Done(elapsed time.Duration, err error) {
	elapsed = elapsed.Round(time.Millisecond)
	switch {
	case p.spinner != nil && err != nil:
		p.spinner.Stop()
	case p.spinner != nil:
		p.spinner.Success(fmt.Sprintf(i18n.UICrewDone, p.command, elapsed))
	case p.verbose && err != nil:
		ui.PrintError(p.w, fmt.Sprintf(i18n.UICrewFailed, p.command))
	case p.verbose:
		ui.PrintSuccess(p.w, fmt.Sprintf(i18n.UICrewDone, p.command, elapsed))
	}
}
