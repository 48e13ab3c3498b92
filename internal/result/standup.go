package result

import (
	"errors"
	"strings"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
	"github.com/betteros/goal-crew/internal/jsonutil"
)

// DefaultStandupTime is the timestamp reported when none is configured
const DefaultStandupTime = "08:00 AM"

// StandupEnvelope is the daily_standup result
type StandupEnvelope struct {
	Briefing      string `json:"briefing"`
	Timestamp     string `json:"timestamp"`
	PriorityFocus string `json:"priority_focus,omitempty"`
}

// NewStandup wraps a briefing. The briefing is kept verbatim; when it holds
// a JSON object with a briefing.priority_focus (or briefing.message) it is
// also surfaced as PriorityFocus. A briefing without usable JSON yields a
// recoverable error next to the envelope.
func NewStandup(briefing, timestamp string) (*StandupEnvelope, error) {
	if timestamp == "" {
		timestamp = DefaultStandupTime
	}
	env := &StandupEnvelope{Briefing: briefing, Timestamp: timestamp}

	focus, err := priorityFocus(briefing)
	if err != nil {
		return env, crewerrors.ErrBriefingParse(err)
	}
	env.PriorityFocus = focus
	return env, nil
}

func priorityFocus(text string) (string, error) {
	data, err := jsonutil.ExtractObject(text)
	if err != nil {
		return "", err
	}

	if inner := jsonutil.GetMap(data, "briefing"); inner != nil {
		for _, key := range []string{"priority_focus", "message"} {
			if v := strings.TrimSpace(jsonutil.GetString(inner, key)); v != "" {
				return v, nil
			}
		}
		return "", errors.New("briefing has no priority_focus or message")
	}
	if v := strings.TrimSpace(jsonutil.GetString(data, "briefing")); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(jsonutil.GetString(data, "priority_focus")); v != "" {
		return v, nil
	}
	return "", errors.New("no briefing field")
}
