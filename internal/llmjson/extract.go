// Package llmjson extracts JSON payloads embedded in free-form text
// completions. Model output routinely wraps JSON in markdown fences or
// prose; callers get a parsed value or an error, never a panic, so a
// malformed completion degrades like any other collaborator failure.
package llmjson

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/rotisserie/eris"
)

// Object locates the outermost {...} in text and unmarshals it into dst.
func Object(text string, dst any) error {
	payload, ok := carve(text, '{', '}')
	if !ok {
		return eris.New("llmjson: no JSON object in completion")
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return eris.Wrap(err, "llmjson: unmarshal object")
	}
	return nil
}

// Array locates the outermost [...] in text and unmarshals it into dst.
func Array(text string, dst any) error {
	payload, ok := carve(text, '[', ']')
	if !ok {
		return eris.New("llmjson: no JSON array in completion")
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return eris.Wrap(err, "llmjson: unmarshal array")
	}
	return nil
}

// ObjectKeys parses the object in text into a raw key map and verifies
// every required key is present. Used where a schema demands specific
// keys and a partial response must be rejected whole.
func ObjectKeys(text string, required ...string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := Object(text, &raw); err != nil {
		return nil, err
	}
	for _, key := range required {
		if _, ok := raw[key]; !ok {
			return nil, eris.Errorf("llmjson: missing required key %q", key)
		}
	}
	return raw, nil
}

// carve strips markdown fences, then slices from the first open delimiter
// to the last close delimiter.
func carve(text string, open, close byte) (string, bool) {
	text = stripFences(text)

	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// stripFences removes a leading ```json or ``` fence and its closing ```.
func stripFences(text string) string {
	text = strings.TrimSpace(text)

	for _, fence := range []string{"```json", "```"} {
		if strings.HasPrefix(text, fence) {
			text = strings.TrimPrefix(text, fence)
			if idx := strings.LastIndex(text, "```"); idx >= 0 {
				text = text[:idx]
			}
			break
		}
	}
	return strings.TrimSpace(text)
}
