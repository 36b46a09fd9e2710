package faq

import (
	"context"
	"log/slog"
	"sync/atomic"

	apperrors "github.com/yanqian/faq-chatbot/pkg/errors"
)

// Source loads the full corpus from its backing storage.
type Source interface {
	Load(ctx context.Context) ([]Record, error)
}

// Store publishes immutable corpus snapshots. Readers never lock: a
// reload builds the new snapshot off to the side and swaps a single
// pointer, so in-flight requests see either the old corpus or the new
// one entirely, never a mix.
type Store struct {
	source  Source
	logger  *slog.Logger
	current atomic.Pointer[Snapshot]
}

// NewStore wires a store to its corpus source.
func NewStore(source Source, logger *slog.Logger) *Store {
	return &Store{
		source: source,
		logger: logger.With("component", "faq.store"),
	}
}

// Reload loads the corpus and publishes a fresh snapshot. On failure
// the previous snapshot, if any, keeps serving.
func (s *Store) Reload(ctx context.Context) error {
	records, err := s.source.Load(ctx)
	if err != nil {
		return apperrors.Wrap("corpus_load", "corpus load failed", err)
	}
	snap := NewSnapshot(records)
	s.current.Store(snap)
	s.logger.Info("corpus snapshot published", "records", snap.Len(), "categories", len(snap.Categories()))
	return nil
}

// Snapshot returns the currently published snapshot. It fails when no
// load has ever succeeded; callers must refuse to answer rather than
// treat the corpus as empty.
func (s *Store) Snapshot() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, apperrors.Wrap("corpus_unavailable", "faq corpus has not been loaded", nil)
	}
	return snap, nil
}
