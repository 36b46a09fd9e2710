package faq

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Service is the single externally callable entry point for the FAQ core.
type Service interface {
	Answer(ctx context.Context, req Request) (Response, error)
	Categories(ctx context.Context) ([]string, error)
	Reload(ctx context.Context) error
}

type service struct {
	cfg    Config
	store  *Store
	cache  AnswerCache
	gen    *Generator
	logger *slog.Logger
}

// NewService wires up the FAQ domain.
func NewService(cfg Config, store *Store, cache AnswerCache, gen *Generator, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		store:  store,
		cache:  cache,
		gen:    gen,
		logger: logger.With("component", "faq.service"),
	}
}

// Answer resolves one question: corpus first, generator on a miss.
// An empty question is allowed and simply scores against everything.
func (s *service) Answer(ctx context.Context, req Request) (Response, error) {
	started := time.Now()
	question := strings.TrimSpace(req.Message)
	category := strings.TrimSpace(req.Category)

	snap, err := s.store.Snapshot()
	if err != nil {
		return Response{}, err
	}

	candidates := snap.Filter(category)
	sel := Select(question, candidates, s.cfg.Threshold)
	if sel.Matched {
		s.logger.Info("faq hit", "score", sel.Score, "category", category)
		return Response{
			Answer:          sel.Record.Answer,
			Source:          SourceFAQ,
			Score:           sel.Score,
			MatchedQuestion: sel.Record.Question,
			Category:        category,
			DurationMs:      time.Since(started).Milliseconds(),
		}, nil
	}
	s.logger.Info("faq miss", "score", sel.Score, "threshold", s.cfg.Threshold, "category", category, "candidates", len(candidates))

	key := cacheKey(question, category)
	if cached, ok, cacheErr := s.cache.Get(ctx, key); cacheErr != nil {
		s.logger.Warn("answer cache lookup failed", "error", cacheErr)
	} else if ok {
		return Response{
			Answer:     cached,
			Source:     SourceCache,
			Score:      sel.Score,
			Category:   category,
			DurationMs: time.Since(started).Milliseconds(),
		}, nil
	}

	generated := s.gen.Generate(ctx, question)
	if generated.Answer != s.cfg.Apology {
		if cacheErr := s.cache.Put(ctx, key, generated.Answer, s.cfg.CacheTTL); cacheErr != nil {
			s.logger.Warn("answer cache save failed", "error", cacheErr)
		}
	}

	resp := Response{
		Answer:     generated.Answer,
		Source:     SourceLLM,
		Score:      sel.Score,
		Category:   category,
		DurationMs: time.Since(started).Milliseconds(),
	}
	if !generated.Usage.IsZero() {
		usage := generated.Usage
		resp.TokenUsage = &usage
	}
	return resp, nil
}

// Categories lists the distinct tags across the active corpus.
func (s *service) Categories(ctx context.Context) ([]string, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Categories(), nil
}

// Reload rebuilds the corpus snapshot on demand.
func (s *service) Reload(ctx context.Context) error {
	return s.store.Reload(ctx)
}

func cacheKey(question, category string) string {
	key := normalizeText(question)
	if category != "" {
		key += "|" + category
	}
	return key
}
