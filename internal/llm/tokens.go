package llm

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

// tokenEncoding approximates Gemini tokenization closely enough for logs
const tokenEncoding = "cl100k_base"

// The BPE dictionaries are embedded so counting never touches the network
func init() {
	tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
}

var (
	encoding     *tiktoken.Tiktoken
	encodingErr  error
	encodingOnce sync.Once
)

// CountTokens estimates the number of tokens in text. The encoding is
// loaded on first use; when it cannot be loaded a length-based estimate
// is returned.
func CountTokens(text string) int {
	encodingOnce.Do(func() {
		encoding, encodingErr = tiktoken.GetEncoding(tokenEncoding)
	})
	if encodingErr != nil {
		return EstimateTokens(text)
	}
	return len(encoding.Encode(text, nil, nil))
}

// EstimateTokens approximates tokens as one per four bytes
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	n := len(text) / 4
	if n == 0 {
		n = 1
	}
	return n
}
