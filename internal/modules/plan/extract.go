package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoJSON means the text lacks an opening or a closing brace; nothing was attempted.
	ErrNoJSON = errors.New("no JSON object in model output")
	// ErrMalformedJSON means both braces were present but no object could be parsed.
	ErrMalformedJSON = errors.New("malformed JSON in model output")
)

// ExtractJSON returns the object spanning the first '{' to the last '}' in text.
func ExtractJSON(text string) (Record, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start == -1 || end == -1 {
		return nil, ErrNoJSON
	}
	if end < start {
		return nil, fmt.Errorf("%w: closing brace before opening brace", ErrMalformedJSON)
	}

	var out Record
	if err := json.Unmarshal([]byte(text[start:end+1]), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return out, nil
}
