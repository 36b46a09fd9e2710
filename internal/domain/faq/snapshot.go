package faq

import (
	"sort"
	"strings"
	"time"
)

// Snapshot is an immutable point-in-time view of the active corpus.
// The derived category set is computed once at construction and cached
// for the snapshot's lifetime.
type Snapshot struct {
	records    []Record
	categories []string
	loadedAt   time.Time
}

// NewSnapshot builds a snapshot from the loaded records.
func NewSnapshot(records []Record) *Snapshot {
	owned := make([]Record, len(records))
	copy(owned, records)

	seen := make(map[string]struct{})
	var categories []string
	for _, rec := range owned {
		for _, c := range rec.Categories {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)

	return &Snapshot{
		records:    owned,
		categories: categories,
		loadedAt:   time.Now(),
	}
}

// Records returns every active record in corpus load order.
func (s *Snapshot) Records() []Record {
	return s.records
}

// Len reports the number of active records.
func (s *Snapshot) Len() int {
	return len(s.records)
}

// Categories returns the sorted, deduplicated union of every record's tags.
func (s *Snapshot) Categories() []string {
	return s.categories
}

// LoadedAt reports when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Filter returns the records eligible for the given category. An empty
// category keeps the whole snapshot; otherwise membership is an exact
// post-trim match, so filtering is idempotent.
func (s *Snapshot) Filter(category string) []Record {
	category = strings.TrimSpace(category)
	if category == "" {
		return s.records
	}
	var out []Record
	for _, rec := range s.records {
		if rec.HasCategory(category) {
			out = append(out, rec)
		}
	}
	return out
}
