package crew

import (
	"regexp"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
)

var placeholderRe = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_\-]*)\}`)

// interpolate replaces {name} placeholders with inputs[name]. The first
// placeholder without an input fails the whole template.
func interpolate(text string, inputs map[string]string) (string, error) {
	var missing string
	out := placeholderRe.ReplaceAllStringFunc(text, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := inputs[name]
		if !ok {
			if missing == "" {
				missing = name
			}
			return m
		}
		return v
	})
	if missing != "" {
		return "", crewerrors.ErrMissingInput(missing)
	}
	return out, nil
}

// Placeholders lists the distinct placeholder names in text, in order of
// first appearance
func Placeholders(text string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}
