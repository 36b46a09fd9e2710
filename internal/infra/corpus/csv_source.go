package corpus

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
)

// Required corpus file columns.
const (
	colQuestion = "question"
	colNote     = "note"
	colAnswer   = "answer"
	colCategory = "category"
	colActive   = "up_check"
)

// CSVSource loads FAQ records from a delimited file. Individual
// malformed rows are skipped; a missing file or a header without the
// required columns fails the whole load.
type CSVSource struct {
	path     string
	encoding string
	logger   *slog.Logger
}

// NewCSVSource constructs a file-backed corpus source.
func NewCSVSource(path, encoding string, logger *slog.Logger) *CSVSource {
	return &CSVSource{
		path:     path,
		encoding: encoding,
		logger:   logger.With("component", "corpus.csv"),
	}
}

// Load implements faq.Source.
func (s *CSVSource) Load(ctx context.Context) ([]faq.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open corpus file: %w", err)
	}
	defer file.Close()

	decoded, err := decodeReader(file, s.encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read corpus header: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var records []faq.Record
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line++
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.logger.Warn("skipping malformed corpus row", "line", line, "error", err)
			continue
		}
		if len(row) <= cols.max() {
			s.logger.Warn("skipping short corpus row", "line", line, "fields", len(row))
			continue
		}
		rec := makeRecord(row[cols.question], row[cols.note], row[cols.answer], row[cols.category], parseActive(row[cols.active]))
		if !rec.Active {
			continue
		}
		if !matchable(rec) {
			s.logger.Warn("active corpus row has no matchable text", "line", line)
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

type columnIndex struct {
	question int
	note     int
	answer   int
	category int
	active   int
}

func (c columnIndex) max() int {
	m := c.question
	for _, idx := range []int{c.note, c.answer, c.category, c.active} {
		if idx > m {
			m = idx
		}
	}
	return m
}

func resolveColumns(header []string) (columnIndex, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		cleaned := strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		byName[strings.ToLower(cleaned)] = i
	}

	cols := columnIndex{}
	for _, required := range []struct {
		name string
		dst  *int
	}{
		{colQuestion, &cols.question},
		{colNote, &cols.note},
		{colAnswer, &cols.answer},
		{colCategory, &cols.category},
		{colActive, &cols.active},
	} {
		idx, ok := byName[required.name]
		if !ok {
			return columnIndex{}, fmt.Errorf("corpus header missing column %q", required.name)
		}
		*required.dst = idx
	}
	return cols, nil
}

func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf8", "utf-8":
		return r, nil
	case "shift-jis", "shift_jis", "sjis", "cp932", "windows-31j":
		return transform.NewReader(r, japanese.ShiftJIS.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("unsupported corpus encoding %q", encoding)
	}
}

var _ faq.Source = (*CSVSource)(nil)
