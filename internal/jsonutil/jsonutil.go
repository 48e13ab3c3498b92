// Package jsonutil provides helper functions for working with JSON data,
// particularly for pulling JSON objects out of free-form LLM answers and
// extracting values from map[string]interface{} structures.
package jsonutil

import (
	"fmt"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaptinlin/jsonrepair"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// codeFence matches markdown fences such as ```json and ```
var codeFence = regexp.MustCompile("```[a-zA-Z]*\\n?")

// ExtractObject finds the outermost JSON object in text and decodes it.
// Markdown code fences are stripped first. When the object does not parse
// as-is, a repaired version is tried before giving up.
func ExtractObject(text string) (map[string]interface{}, error) {
	cleaned := codeFence.ReplaceAllString(text, "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON object found")
	}
	candidate := cleaned[start : end+1]

	var data map[string]interface{}
	originalErr := json.UnmarshalFromString(candidate, &data)
	if originalErr == nil {
		return data, nil
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return nil, originalErr
	}
	data = nil
	if err := json.UnmarshalFromString(repaired, &data); err != nil {
		return nil, originalErr
	}
	return data, nil
}

// GetString extracts a string value from a map by key.
// Returns empty string if the key doesn't exist or the value is not a string.
func GetString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// GetMap extracts a nested object from a map by key.
// Returns nil if the key doesn't exist or the value is not an object.
func GetMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

// Compact encodes v as compact JSON with sorted map keys.
func Compact(v interface{}) (string, error) {
	return json.MarshalToString(v)
}
