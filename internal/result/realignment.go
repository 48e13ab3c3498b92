package result

import (
	"regexp"
	"strings"
)

var (
	dropSectionRe  = regexp.MustCompile(`(?is)\*\*DROP:\*\*(.*?)\*\*FOCUS:\*\*`)
	focusSectionRe = regexp.MustCompile(`(?is)\*\*FOCUS:\*\*(.*)$`)
	bulletRe       = regexp.MustCompile(`\n\s*\*\s+`)
	itemRe         = regexp.MustCompile(`(?s)\*\*(.+?):\*\*\s*(.+)`)
)

// Item is one bolded bullet of a DROP or FOCUS section
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RealignmentEnvelope is the realignment result
type RealignmentEnvelope struct {
	FilteredTodos string `json:"filtered_todos"`
	Drop          []Item `json:"drop,omitempty"`
	Focus         []Item `json:"focus,omitempty"`
	TodaysFocus   string `json:"todays_focus,omitempty"`
}

// NewRealignment wraps the realignment answer. When the text has both a
// **DROP:** and a **FOCUS:** section their bullets are parsed into Drop and
// Focus, and the first focus title becomes TodaysFocus.
func NewRealignment(text string) *RealignmentEnvelope {
	env := &RealignmentEnvelope{FilteredTodos: text}

	drop := dropSectionRe.FindStringSubmatch(text)
	focus := focusSectionRe.FindStringSubmatch(text)
	if drop == nil || focus == nil {
		return env
	}

	env.Drop = parseItems(drop[1])
	env.Focus = parseItems(focus[1])
	if len(env.Focus) > 0 {
		env.TodaysFocus = env.Focus[0].Title
	}
	return env
}

// parseItems reads "* **Title:** description" bullets
func parseItems(section string) []Item {
	var items []Item
	for _, chunk := range bulletRe.Split(section, -1) {
		if strings.TrimSpace(chunk) == "" || !strings.Contains(chunk, "**") {
			continue
		}
		m := itemRe.FindStringSubmatch(chunk)
		if m == nil {
			continue
		}
		items = append(items, Item{
			Title:       strings.TrimSpace(m[1]),
			Description: strings.TrimSpace(m[2]),
		})
	}
	return items
}
