// Package result shapes crew output into the JSON envelopes the app
// backend reads.
package result

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// AgentsInvolved lists the crew members named in every plan
var AgentsInvolved = []string{"boss", "financial", "creative", "stoic"}

// PlanEnvelope is the create_plan result
type PlanEnvelope struct {
	Goal           string   `json:"goal"`
	DeadlineDays   int      `json:"deadline_days"`
	Plan           string   `json:"plan"`
	AgentsInvolved []string `json:"agents_involved"`
}

// NewPlan wraps the final crew answer for a goal
func NewPlan(goal string, deadlineDays int, plan string) *PlanEnvelope {
	agents := make([]string, len(AgentsInvolved))
	copy(agents, AgentsInvolved)
	return &PlanEnvelope{
		Goal:           goal,
		DeadlineDays:   deadlineDays,
		Plan:           plan,
		AgentsInvolved: agents,
	}
}

// ErrorEnvelope is written to stderr (or an HTTP body) when a command fails
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// NewError wraps err
func NewError(err error) *ErrorEnvelope {
	return &ErrorEnvelope{Error: err.Error()}
}

// Write encodes v as one JSON object followed by a newline
func Write(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}

// Marshal encodes v the way Write does, without the newline
func Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
