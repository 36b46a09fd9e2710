package faq

import (
	"strings"
	"unicode"
)

// normalizeText lowercases, maps punctuation to spaces and collapses
// whitespace. It is applied to queries and corpus text alike so the
// two sides stay comparable.
func normalizeText(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	var builder strings.Builder
	builder.Grow(len(lowered))
	lastSpace := true
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			builder.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			builder.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(builder.String())
}

// tokenSet returns the deduplicated whitespace-delimited tokens of a
// normalized string.
func tokenSet(normalized string) map[string]struct{} {
	fields := strings.Fields(normalized)
	set := make(map[string]struct{}, len(fields))
	for _, tok := range fields {
		set[tok] = struct{}{}
	}
	return set
}
