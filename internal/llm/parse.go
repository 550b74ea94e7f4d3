package llm

import (
	"encoding/json"
	"strings"
)

// stripFence removes an optional markdown code fence around a model
// response. Providers routinely wrap JSON in ```json blocks even when
// asked not to.
func stripFence(content string) string {
	if idx := strings.Index(content, "```json"); idx != -1 {
		rest := content[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end != -1 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	if idx := strings.Index(content, "```"); idx != -1 {
		rest := content[idx+len("```"):]
		if end := strings.Index(rest, "```"); end != -1 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(content)
}

// decodeResponse strips an optional code fence and decodes the remainder
// as JSON into T. It never fails: ok is false when the text is not the
// expected JSON, and callers degrade to a partial result.
func decodeResponse[T any](content string) (T, bool) {
	var result T
	if err := json.Unmarshal([]byte(stripFence(content)), &result); err != nil {
		return result, false
	}
	return result, true
}
