package crew

import (
	"fmt"
	"strings"
)

// Agent is an LLM persona. Role, Goal and Backstory may hold {input}
// placeholders.
type Agent struct {
	Name      string `yaml:"-"`
	Role      string `yaml:"role"`
	Goal      string `yaml:"goal"`
	Backstory string `yaml:"backstory"`
}

// SystemPrompt renders the persona as a system instruction
func (a Agent) SystemPrompt() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are %s.", strings.TrimSpace(a.Role))
	if backstory := strings.TrimSpace(a.Backstory); backstory != "" {
		sb.WriteString(" ")
		sb.WriteString(backstory)
	}
	fmt.Fprintf(&sb, "\nYour personal goal is: %s", strings.TrimSpace(a.Goal))
	return sb.String()
}

func (a Agent) interpolate(inputs map[string]string) (Agent, error) {
	var err error
	out := a
	if out.Role, err = interpolate(a.Role, inputs); err != nil {
		return Agent{}, err
	}
	if out.Goal, err = interpolate(a.Goal, inputs); err != nil {
		return Agent{}, err
	}
	if out.Backstory, err = interpolate(a.Backstory, inputs); err != nil {
		return Agent{}, err
	}
	return out, nil
}
