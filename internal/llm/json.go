package llm

import "strings"

// extractJSON pulls a JSON payload out of a model reply that may wrap it in
// a markdown code fence or surround it with prose.
func extractJSON(s string) string {
	for _, fence := range []string{"```json", "```"} {
		if body, ok := fencedBlock(s, fence); ok {
			return body
		}
	}

	// Fall back to the first balanced {...} or [...] span.
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return strings.TrimSpace(s)
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return strings.TrimSpace(s[start:])
}

func fencedBlock(s, fence string) (string, bool) {
	idx := strings.Index(s, fence)
	if idx == -1 {
		return "", false
	}
	body := s[idx+len(fence):]
	end := strings.Index(body, "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(body[:end]), true
}
