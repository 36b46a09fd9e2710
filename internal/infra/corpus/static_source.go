package corpus

import (
	"context"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
)

// StaticSource serves a fixed record set, for tests and local dev.
type StaticSource struct {
	records []faq.Record
	err     error
}

// NewStaticSource constructs a source over the given records.
func NewStaticSource(records []faq.Record) *StaticSource {
	return &StaticSource{records: records}
}

// NewFailingSource constructs a source whose Load always fails.
func NewFailingSource(err error) *StaticSource {
	return &StaticSource{err: err}
}

// Load implements faq.Source. Like the real sources it only yields
// active records.
func (s *StaticSource) Load(_ context.Context) ([]faq.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []faq.Record
	for _, rec := range s.records {
		if rec.Active {
			out = append(out, rec)
		}
	}
	return out, nil
}

var _ faq.Source = (*StaticSource)(nil)
