package usercontext

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
	"github.com/betteros/goal-crew/internal/i18n"
	"github.com/betteros/goal-crew/internal/jsonutil"
)

// Input keys shared by every crew template
const (
	KeyGoal          = "goal"
	KeyDeadlineDays  = "deadline_days"
	KeyValues        = "values"
	KeyFiveYearGoal  = "five_year_goal"
	KeyFinancialData = "financial_data"
	KeyAnxieties     = "anxieties"
	KeyGoalsSummary  = "goals_summary"
	KeyTodosList     = "todos_list"
)

// Inputs is the flattened, string-keyed mapping fed to the crew
type Inputs map[string]string

// Keys returns the input names in sorted order
func (in Inputs) Keys() []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Overrides selects how each command shapes the shared inputs. Empty
// fields fall back to values derived from the context.
type Overrides struct {
	Goal          string
	DeadlineDays  string
	GoalsSummary  string
	TodosList     string
	FinancialData string
}

// Inputs builds the crew inputs from the context and the command overrides
func (c *Context) Inputs(o Overrides) Inputs {
	in := Inputs{
		KeyGoal:          o.Goal,
		KeyDeadlineDays:  o.DeadlineDays,
		KeyValues:        strings.Join(c.Values, ", "),
		KeyFiveYearGoal:  c.fiveYearGoal(),
		KeyFinancialData: o.FinancialData,
		KeyAnxieties:     strings.Join(c.Anxieties, ", "),
		KeyGoalsSummary:  o.GoalsSummary,
		KeyTodosList:     o.TodosList,
	}
	if in[KeyGoal] == "" {
		in[KeyGoal] = c.firstGoalTitle()
	}
	if in[KeyDeadlineDays] == "" {
		in[KeyDeadlineDays] = "0"
	}
	if in[KeyFinancialData] == "" {
		in[KeyFinancialData] = c.financialData()
	}
	if in[KeyGoalsSummary] == "" {
		in[KeyGoalsSummary] = c.GoalsSummary()
	}
	if in[KeyTodosList] == "" {
		in[KeyTodosList] = c.TodosList()
	}
	return in
}

// ParseDeadline reads a whole number of days. Surrounding whitespace is
// ignored and the number is always decimal, so "010" is 10.
func ParseDeadline(s string) (int, error) {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, crewerrors.ErrInvalidDeadline(s)
	}
	return days, nil
}

// PlanInputs shapes the inputs for create_plan
func (c *Context) PlanInputs(goal string, deadlineDays int) Inputs {
	in := c.Inputs(Overrides{
		DeadlineDays: strconv.Itoa(deadlineDays),
		GoalsSummary: fmt.Sprintf(i18n.MsgCurrentGoal, goal),
		TodosList:    i18n.MsgNoTodos,
	})
	// The goal argument is used as given, even when empty
	in[KeyGoal] = goal
	return in
}

// StandupInputs shapes the inputs for daily_standup
func (c *Context) StandupInputs() Inputs {
	return c.Inputs(Overrides{
		FinancialData: "{}",
		TodosList:     i18n.MsgNoTodos,
	})
}

// RealignmentInputs shapes the inputs for realignment
func (c *Context) RealignmentInputs() Inputs {
	return c.Inputs(Overrides{
		Goal:          i18n.MsgGeneralGoal,
		GoalsSummary:  i18n.MsgReviewingWorkload,
		FinancialData: "{}",
	})
}

// Smoke test defaults used when the CLI runs without a command
const (
	SmokeTestGoal         = "Buy a car"
	SmokeTestDeadlineDays = 89
)

// SmokeTestInputs returns the fixed inputs of the no-command path
func SmokeTestInputs() Inputs {
	return Inputs{
		KeyGoal:          SmokeTestGoal,
		KeyDeadlineDays:  strconv.Itoa(SmokeTestDeadlineDays),
		KeyValues:        "Family, Security",
		KeyFiveYearGoal:  "Financial independence",
		KeyFinancialData: "{}",
		KeyAnxieties:     "",
		KeyGoalsSummary:  fmt.Sprintf(i18n.MsgCurrentGoal, SmokeTestGoal),
		KeyTodosList:     i18n.MsgNoTodos,
	}
}

// GoalsSummary renders one "- title: N% complete" line per goal
func (c *Context) GoalsSummary() string {
	if len(c.Goals) == 0 {
		return i18n.MsgNoGoals
	}
	lines := make([]string, len(c.Goals))
	for i, g := range c.Goals {
		lines[i] = fmt.Sprintf("- %s: %s%% complete", g.Title, g.Progress)
	}
	return strings.Join(lines, "\n")
}

// TodosList renders one "- todo" line per todo
func (c *Context) TodosList() string {
	if len(c.Todos) == 0 {
		return i18n.MsgNoTodos
	}
	lines := make([]string, len(c.Todos))
	for i, todo := range c.Todos {
		lines[i] = "- " + todo
	}
	return strings.Join(lines, "\n")
}

func (c *Context) firstGoalTitle() string {
	if len(c.Goals) == 0 {
		return i18n.MsgNoGoalSet
	}
	return c.Goals[0].Title
}

func (c *Context) fiveYearGoal() string {
	if c.FiveYearGoal == nil {
		return i18n.MsgNotSet
	}
	return *c.FiveYearGoal
}

func (c *Context) financialData() string {
	if len(c.FinancialData) == 0 {
		return "{}"
	}
	s, err := jsonutil.Compact(c.FinancialData)
	if err != nil {
		return "{}"
	}
	return s
}
