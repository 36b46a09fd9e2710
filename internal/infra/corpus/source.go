// Package corpus provides the loaders that feed the FAQ store: a
// delimited file (the canonical source), a Postgres table, and a
// static in-memory set for tests.
package corpus

import (
	"strings"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
)

// SplitCategories splits a raw category cell on line breaks, trims
// each piece and drops empties and duplicates. Commas are not
// delimiters; multi-tag cells are newline separated in the source.
func SplitCategories(raw string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, piece := range strings.Split(raw, "\n") {
		tag := strings.TrimSpace(piece)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func parseActive(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "t", "1", "yes", "y":
		return true
	default:
		return false
	}
}

func makeRecord(question, note, answer, rawCategory string, active bool) faq.Record {
	return faq.Record{
		Question:   strings.TrimSpace(question),
		Note:       strings.TrimSpace(note),
		Answer:     answer,
		Categories: SplitCategories(rawCategory),
		Active:     active,
	}
}

// matchable reports whether a record has any text eligible for scoring.
// An active record without one is dead data: logged by callers, never fatal.
func matchable(rec faq.Record) bool {
	return rec.Question != "" || rec.Note != ""
}
