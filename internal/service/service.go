// Package service runs the crew commands shared by the CLI and the HTTP
// server: shape the inputs, kick off the pipeline, wrap the result.
package service

import (
	"context"

	"github.com/betteros/goal-crew/internal/crew"
	"github.com/betteros/goal-crew/internal/llm"
	"github.com/betteros/goal-crew/internal/result"
	"github.com/betteros/goal-crew/internal/usercontext"
)

// Command names, also the pipeline names in crew.yaml
const (
	CommandCreatePlan   = "create_plan"
	CommandDailyStandup = "daily_standup"
	CommandRealignment  = "realignment"
)

// Options configures a Service
type Options struct {
	// StandupTime is reported as the standup timestamp
	StandupTime string
	// Observer receives the events of every kickoff
	Observer crew.Observer
	// Warn receives recoverable errors, such as a briefing without JSON
	Warn func(runID string, err error)
}

// Service runs crew commands. It is safe for concurrent use when the
// model is.
type Service struct {
	defs  *crew.Definitions
	model llm.Model
	opts  Options
}

// New creates a Service
func New(defs *crew.Definitions, model llm.Model, opts Options) *Service {
	if opts.StandupTime == "" {
		opts.StandupTime = result.DefaultStandupTime
	}
	return &Service{defs: defs, model: model, opts: opts}
}

// Model returns the shared model
func (s *Service) Model() llm.Model {
	return s.model
}

// CreatePlan runs the full crew over a goal
func (s *Service) CreatePlan(ctx context.Context, uc *usercontext.Context, goal string, deadlineDays int) (*result.PlanEnvelope, error) {
	out, err := s.kickoff(ctx, CommandCreatePlan, orEmpty(uc).PlanInputs(goal, deadlineDays))
	if err != nil {
		return nil, err
	}
	return result.NewPlan(goal, deadlineDays, out.Raw), nil
}

// DailyStandup builds the morning briefing over the user's active goals
func (s *Service) DailyStandup(ctx context.Context, uc *usercontext.Context) (*result.StandupEnvelope, error) {
	out, err := s.kickoff(ctx, CommandDailyStandup, orEmpty(uc).StandupInputs())
	if err != nil {
		return nil, err
	}
	env, err := result.NewStandup(out.Raw, s.opts.StandupTime)
	if err != nil {
		s.warn(out.RunID, err)
	}
	return env, nil
}

// Realignment filters the user's todos into what to drop and what to focus on
func (s *Service) Realignment(ctx context.Context, uc *usercontext.Context) (*result.RealignmentEnvelope, error) {
	out, err := s.kickoff(ctx, CommandRealignment, orEmpty(uc).RealignmentInputs())
	if err != nil {
		return nil, err
	}
	return result.NewRealignment(out.Raw), nil
}

// SmokeTest runs create_plan with fixed inputs
func (s *Service) SmokeTest(ctx context.Context) (*result.PlanEnvelope, error) {
	out, err := s.kickoff(ctx, CommandCreatePlan, usercontext.SmokeTestInputs())
	if err != nil {
		return nil, err
	}
	return result.NewPlan(usercontext.SmokeTestGoal, usercontext.SmokeTestDeadlineDays, out.Raw), nil
}

func (s *Service) kickoff(ctx context.Context, command string, inputs usercontext.Inputs) (*crew.Output, error) {
	c, err := s.defs.Crew(command, s.model)
	if err != nil {
		return nil, err
	}

	var opts []crew.KickoffOption
	if s.opts.Observer != nil {
		opts = append(opts, crew.WithObserver(s.opts.Observer))
	}
	return c.Kickoff(ctx, inputs, opts...)
}

func (s *Service) warn(runID string, err error) {
	if s.opts.Warn != nil {
		s.opts.Warn(runID, err)
	}
}

func orEmpty(uc *usercontext.Context) *usercontext.Context {
	if uc == nil {
		return &usercontext.Context{}
	}
	return uc
}
