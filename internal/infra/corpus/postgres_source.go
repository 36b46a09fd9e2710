package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
)

// PostgresSource loads FAQ records from a faq_entries table mirroring
// the corpus file columns.
type PostgresSource struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgresSource constructs a Postgres-backed corpus source.
func NewPostgresSource(pool *pgxpool.Pool, logger *slog.Logger) *PostgresSource {
	return &PostgresSource{
		pool:   pool,
		logger: logger.With("component", "corpus.postgres"),
	}
}

// Load implements faq.Source.
func (s *PostgresSource) Load(ctx context.Context) ([]faq.Record, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT question, note, answer, category, up_check
		FROM faq_entries
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query faq_entries: %w", err)
	}
	defer rows.Close()

	var records []faq.Record
	line := 0
	for rows.Next() {
		line++
		var (
			question sql.NullString
			note     sql.NullString
			answer   sql.NullString
			category sql.NullString
			active   bool
		)
		if err := rows.Scan(&question, &note, &answer, &category, &active); err != nil {
			s.logger.Warn("skipping malformed corpus row", "row", line, "error", err)
			continue
		}
		if !active {
			continue
		}
		rec := makeRecord(question.String, note.String, answer.String, category.String, active)
		if !matchable(rec) {
			s.logger.Warn("active corpus row has no matchable text", "row", line)
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read faq_entries: %w", err)
	}
	return records, nil
}

var _ faq.Source = (*PostgresSource)(nil)
