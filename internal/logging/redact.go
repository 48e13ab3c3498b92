package logging

import (
	"regexp"
	"sync"
)

// sensitivePatterns contains regex patterns for sensitive information
var sensitivePatterns = []string{
	// API keys and tokens
	`(?i)(api[_-]?key|apikey|api_secret|secret[_-]?key)\s*[:=]\s*['"]?[a-zA-Z0-9_\-]{16,}['"]?`,
	`(?i)(access[_-]?token|auth[_-]?token|bearer)\s*[:=]\s*['"]?[a-zA-Z0-9_\-\.]{20,}['"]?`,
	// Google API keys
	`AIza[0-9A-Za-z_\-]{35}`,
	// AWS credentials
	`(?i)(aws[_-]?access[_-]?key[_-]?id|aws[_-]?secret)\s*[:=]\s*['"]?[A-Z0-9]{16,}['"]?`,
	`AKIA[0-9A-Z]{16}`,
	// Password patterns
	`(?i)(password|passwd|pwd)\s*[:=]\s*['"]?[^\s'"]{4,}['"]?`,
	// Private keys
	`-----BEGIN\s+(RSA\s+)?PRIVATE\s+KEY-----`,
	// GitHub tokens
	`gh[pousr]_[A-Za-z0-9_]{36,}`,
	// Generic secrets
	`(?i)(client[_-]?secret|secret)\s*[:=]\s*['"]?[a-zA-Z0-9_\-]{16,}['"]?`,
}

var (
	compiledPatterns []*regexp.Regexp
	patternsOnce     sync.Once
)

func getCompiledPatterns() []*regexp.Regexp {
	patternsOnce.Do(func() {
		compiledPatterns = make([]*regexp.Regexp, 0, len(sensitivePatterns))
		for _, pattern := range sensitivePatterns {
			if re, err := regexp.Compile(pattern); err == nil {
				compiledPatterns = append(compiledPatterns, re)
			}
		}
	})
	return compiledPatterns
}

// Redact masks API keys, tokens and passwords in text
func Redact(text string) string {
	result := text
	for _, re := range getCompiledPatterns() {
		result = re.ReplaceAllString(result, "[REDACTED]")
	}
	return result
}
