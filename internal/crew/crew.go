// Package crew runs a sequential pipeline of LLM agents. Agents and tasks
// are declared in YAML; each task is handed to its agent with the outputs
// of every earlier task as context.
package crew

import (
	"context"
	"time"

	"github.com/google/uuid"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
	"github.com/betteros/goal-crew/internal/llm"
)

// Crew is the assembled pipeline of one command
type Crew struct {
	Command string
	Process string
	Agents  map[string]Agent
	Tasks   []Task

	model llm.Model
}

// Output is the result of a kickoff
type Output struct {
	RunID string
	// Raw is the output of the last task
	Raw   string
	Tasks []TaskOutput
}

// TaskOutput is the raw answer of one task
type TaskOutput struct {
	Task     string
	Agent    string
	Raw      string
	Duration time.Duration
}

// EventKind identifies a step in a kickoff
type EventKind int

const (
	EventTaskStarted EventKind = iota
	EventTaskFinished
	EventTaskFailed
)

func (k EventKind) String() string {
	switch k {
	case EventTaskStarted:
		return "started"
	case EventTaskFinished:
		return "finished"
	case EventTaskFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event reports the progress of a kickoff
type Event struct {
	Kind     EventKind
	RunID    string
	Command  string
	Index    int // 1-based
	Total    int
	Task     string
	Agent    string
	System   string
	Prompt   string
	Output   string
	Duration time.Duration
	Err      error
}

// Observer receives kickoff events. Kickoff calls it synchronously.
type Observer func(Event)

// KickoffOption configures a kickoff
type KickoffOption func(*kickoffOptions)

type kickoffOptions struct {
	runID    string
	observer Observer
}

// WithRunID sets the run ID instead of generating one
func WithRunID(id string) KickoffOption {
	return func(o *kickoffOptions) {
		o.runID = id
	}
}

// WithObserver registers an observer for task events
func WithObserver(fn Observer) KickoffOption {
	return func(o *kickoffOptions) {
		o.observer = fn
	}
}

type step struct {
	task  Task
	agent Agent
}

// Kickoff runs every task in order. All placeholders are resolved before
// the first model call, so a missing input never costs a request.
func (c *Crew) Kickoff(ctx context.Context, inputs map[string]string, opts ...KickoffOption) (*Output, error) {
	options := &kickoffOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.runID == "" {
		options.runID = uuid.NewString()
	}
	emit := func(e Event) {
		if options.observer == nil {
			return
		}
		e.RunID = options.runID
		e.Command = c.Command
		e.Total = len(c.Tasks)
		options.observer(e)
	}

	steps := make([]step, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		task, err := t.interpolate(inputs)
		if err != nil {
			return nil, err
		}
		agent, err := c.Agents[t.Agent].interpolate(inputs)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step{task: task, agent: agent})
	}

	out := &Output{RunID: options.runID}
	history := make([]string, 0, len(steps))

	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, crewerrors.ErrTaskFailed(s.task.Name, err)
		}

		req := llm.Request{
			System: s.agent.SystemPrompt(),
			Prompt: s.task.Prompt(history),
		}
		emit(Event{
			Kind:   EventTaskStarted,
			Index:  i + 1,
			Task:   s.task.Name,
			Agent:  s.agent.Name,
			System: req.System,
			Prompt: req.Prompt,
		})

		start := time.Now()
		resp, err := c.model.Generate(ctx, req)
		elapsed := time.Since(start)
		if err != nil {
			emit(Event{
				Kind:     EventTaskFailed,
				Index:    i + 1,
				Task:     s.task.Name,
				Agent:    s.agent.Name,
				Duration: elapsed,
				Err:      err,
			})
			return nil, crewerrors.ErrTaskFailed(s.task.Name, err)
		}

		emit(Event{
			Kind:     EventTaskFinished,
			Index:    i + 1,
			Task:     s.task.Name,
			Agent:    s.agent.Name,
			Output:   resp.Text,
			Duration: elapsed,
		})

		out.Tasks = append(out.Tasks, TaskOutput{
			Task:     s.task.Name,
			Agent:    s.agent.Name,
			Raw:      resp.Text,
			Duration: elapsed,
		})
		history = append(history, resp.Text)
		out.Raw = resp.Text
	}

	return out, nil
}
