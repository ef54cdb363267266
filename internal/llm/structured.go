package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator checks a decoded payload before it is handed to callers.
type SchemaValidator[T any] func(T) error

// ExtractJSON decodes the first JSON object found in raw model output.
// Surrounding prose, markdown fences and comments are tolerated. A non-nil
// validator runs on the decoded value.
func ExtractJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var out T
	if err := decodeFirst(raw, '{', '}', "object", &out); err != nil {
		var zero T
		return zero, err
	}
	if validator != nil {
		if err := validator(out); err != nil {
			var zero T
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}
	return out, nil
}

// ExtractJSONArray decodes the first JSON array found in raw model output.
// Task extraction asks for a bare list, but models often wrap it in prose.
func ExtractJSONArray[T any](raw string) ([]T, error) {
	var out []T
	if err := decodeFirst(raw, '[', ']', "array", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeFirst(raw string, open, close byte, kind string, dst any) error {
	block := firstBlock(raw, open, close)
	if block == "" {
		return fmt.Errorf("%w: no JSON %s found in response", ErrInvalidOutput, kind)
	}
	if err := json.Unmarshal([]byte(block), dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	return nil
}

// firstBlock returns the first balanced span from open to its matching close,
// with // and /* */ comments outside string literals dropped. Delimiters
// inside strings do not count. Fence markers before the span are skipped
// along with any other prose.
func firstBlock(s string, open, close byte) string {
	start := strings.IndexByte(s, open)
	if start < 0 {
		return ""
	}

	var b strings.Builder
	depth := 0
	inString, escaped := false, false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case inString:
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
		case c == '"':
			inString = true
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			for i+1 < len(s) && s[i+1] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := strings.Index(s[i+2:], "*/")
			if end < 0 {
				return ""
			}
			i += end + 3
			continue
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				b.WriteByte(c)
				return b.String()
			}
		}
		b.WriteByte(c)
	}
	return ""
}
