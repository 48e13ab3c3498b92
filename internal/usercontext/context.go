// Package usercontext decodes the user context blob sent by the app and
// flattens it into the string inputs the crew templates expect.
package usercontext

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cast"

	crewerrors "github.com/betteros/goal-crew/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Context is the JSON object describing the user's goals, values,
// finances and anxieties. Every field is optional.
type Context struct {
	Values        []string               `json:"values,omitempty"`
	FiveYearGoal  *string                `json:"five_year_goal,omitempty"`
	FinancialData map[string]interface{} `json:"financial_data,omitempty"`
	Anxieties     []string               `json:"anxieties,omitempty"`
	Goals         []Goal                 `json:"goals,omitempty"`
	Todos         []string               `json:"todos,omitempty"`
}

// Goal is an active goal with its completion percentage
type Goal struct {
	Title    string   `json:"title"`
	Progress Progress `json:"progress"`
}

// Progress is a completion percentage kept as its JSON literal, so 40
// renders as "40" and 40.5 as "40.5".
type Progress string

// UnmarshalJSON accepts a number, a numeric string or null
func (p *Progress) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*p = "0"
		return nil
	case strings.HasPrefix(raw, `"`):
		s, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("progress: %w", err)
		}
		f, err := cast.ToFloat64E(strings.TrimSpace(s))
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("progress: %q is not a number", s)
		}
		// Strings are stored in plain decimal so they render and re-encode
		// like a JSON number
		*p = Progress(strconv.FormatFloat(f, 'f', -1, 64))
		return nil
	default:
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return fmt.Errorf("progress: %s is not a number", raw)
		}
		*p = Progress(raw)
		return nil
	}
}

// MarshalJSON writes the progress back as a JSON number
func (p Progress) MarshalJSON() ([]byte, error) {
	if p == "" {
		return []byte("0"), nil
	}
	return []byte(p), nil
}

// String returns the progress literal
func (p Progress) String() string {
	if p == "" {
		return "0"
	}
	return string(p)
}

// Read decodes a single context object from r
func Read(r io.Reader) (*Context, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, crewerrors.ErrInvalidContext(err)
	}
	return Parse(data)
}

// Parse decodes a single context object
func Parse(data []byte) (*Context, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, crewerrors.ErrInvalidContext(fmt.Errorf("empty input"))
	}
	if trimmed[0] != '{' {
		return nil, crewerrors.ErrInvalidContext(fmt.Errorf("expected a JSON object"))
	}

	var c Context
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return nil, crewerrors.ErrInvalidContext(err)
	}
	return &c, nil
}

// Encode writes the context as indented JSON
func (c *Context) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
