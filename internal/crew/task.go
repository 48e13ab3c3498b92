package crew

import (
	"strings"
)

// contextSeparator joins the outputs of earlier tasks in a prompt
const contextSeparator = "\n\n----------\n\n"

// Task is one unit of work assigned to an agent
type Task struct {
	Name           string `yaml:"-"`
	Description    string `yaml:"description"`
	ExpectedOutput string `yaml:"expected_output"`
	Agent          string `yaml:"agent"`
}

// Prompt renders the task for its agent. context holds the raw outputs of
// the tasks that ran before it, oldest first.
func (t Task) Prompt(context []string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(t.Description))
	sb.WriteString("\n\nThis is the expected criteria for your final answer: ")
	sb.WriteString(strings.TrimSpace(t.ExpectedOutput))
	sb.WriteString("\nYou MUST return the actual complete content as the final answer, not a summary.")

	if len(context) > 0 {
		sb.WriteString("\n\nThis is the context you're working with:\n")
		sb.WriteString(strings.Join(context, contextSeparator))
	}

	sb.WriteString("\n\nBegin! Give your best final answer.")
	return sb.String()
}

func (t Task) interpolate(inputs map[string]string) (Task, error) {
	var err error
	out := t
	if out.Description, err = interpolate(t.Description, inputs); err != nil {
		return Task{}, err
	}
	if out.ExpectedOutput, err = interpolate(t.ExpectedOutput, inputs); err != nil {
		return Task{}, err
	}
	return out, nil
}
