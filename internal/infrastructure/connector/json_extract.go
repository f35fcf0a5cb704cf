package connector

import (
	"fmt"
	"strings"
)

// ExtractJSON pulls the first JSON object or array out of a completion.
// Models wrap JSON in prose or markdown fences often enough that callers
// should never unmarshal a completion directly.
func ExtractJSON(completion string) (string, error) {
	s := strings.TrimSpace(completion)
	if fenced := stripFence(s); fenced != "" {
		s = fenced
	}

	// Whichever bracket opens first wins, an array reply must not be
	// narrowed to its first element.
	objStart := strings.IndexByte(s, '{')
	arrStart := strings.IndexByte(s, '[')
	openers := []byte{'{', '['}
	starts := []int{objStart, arrStart}
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		openers = []byte{'[', '{'}
		starts = []int{arrStart, objStart}
	}

	for k, open := range openers {
		start := starts[k]
		if start < 0 {
			continue
		}
		if candidate := balancedFrom(s[start:], open); candidate != "" {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no JSON found in completion")
}

func stripFence(s string) string {
	start := strings.Index(s, "```")
	if start < 0 {
		return ""
	}
	rest := s[start+3:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	}
	end := strings.Index(rest, "```")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

func balancedFrom(s string, open byte) string {
	var close byte = '}'
	if open == '[' {
		close = ']'
	}
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[:i+1]
			}
		}
	}
	return ""
}
