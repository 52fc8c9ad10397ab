package conversation

import (
	"fmt"
	"strings"

	"github.com/spiritquiz/backend/internal/entity"
)

const (
	fenceOpen  = "```json"
	fenceClose = "```"
)

// ExtractJSON recovers the single JSON object a model reply is expected to
// carry, tolerating leading prose and markdown fencing.
//
// A fenced "json" block wins over anything else; without a closing fence
// the rest of the reply is taken. Otherwise the span from the first "{" to
// the brace that balances it is returned. String literals are honored while
// counting braces, so a "{" inside a quoted value does not end the span.
func ExtractJSON(raw string) (string, error) {
	if idx := strings.Index(raw, fenceOpen); idx >= 0 {
		rest := raw[idx+len(fenceOpen):]
		if end := strings.Index(rest, fenceClose); end >= 0 {
			return strings.TrimSpace(rest[:end]), nil
		}
		return strings.TrimSpace(rest), nil
	}

	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", fmt.Errorf("%w: reply has no opening brace", entity.ErrNoJSONFound)
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}

	return "", fmt.Errorf("%w: object at offset %d never closes", entity.ErrNoJSONFound, start)
}
