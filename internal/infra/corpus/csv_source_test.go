package corpus

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func writeCorpus(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq.csv")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	return path
}

func TestCSVSourceLoad(t *testing.T) {
	data := "question,note,answer,category,up_check\n" +
		"How do I log in?,login help,Use your email.,\"account\nlogin\",true\n" +
		"Old question,,Stale answer.,account,false\n" +
		"short row\n" +
		" ,  ,Answer without any text.,misc,true\n"

	src := NewCSVSource(writeCorpus(t, data), "utf-8", testLogger())
	records, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	rec := records[0]
	if rec.Question != "How do I log in?" {
		t.Fatalf("unexpected question %q", rec.Question)
	}
	if len(rec.Categories) != 2 || rec.Categories[0] != "account" || rec.Categories[1] != "login" {
		t.Fatalf("expected categories [account login], got %v", rec.Categories)
	}
}

func TestCSVSourceMissingColumn(t *testing.T) {
	data := "question,note,answer,category\nq,n,a,c\n"

	src := NewCSVSource(writeCorpus(t, data), "", testLogger())
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error for missing up_check column")
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "missing.csv"), "", testLogger())
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCSVSourceBOMHeader(t *testing.T) {
	data := "\ufeffquestion,note,answer,category,up_check\nq,n,a,c,1\n"

	src := NewCSVSource(writeCorpus(t, data), "utf-8", testLogger())
	records, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestCSVSourceShiftJIS(t *testing.T) {
	utf8Data := "question,note,answer,category,up_check\n" +
		"パスワードを忘れました,再設定,ログイン画面から再設定できます。,アカウント,true\n"
	encoded, _, err := transform.String(japanese.ShiftJIS.NewEncoder(), utf8Data)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	src := NewCSVSource(writeCorpus(t, encoded), "cp932", testLogger())
	records, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Question != "パスワードを忘れました" {
		t.Fatalf("decoded question mismatch: %q", records[0].Question)
	}
}

func TestCSVSourceUnsupportedEncoding(t *testing.T) {
	data := "question,note,answer,category,up_check\n"

	src := NewCSVSource(writeCorpus(t, data), "euc-jp", testLogger())
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatal("expected error for unsupported encoding")
	}
}

func TestSplitCategories(t *testing.T) {
	got := SplitCategories("account\n  login \n\naccount")
	if len(got) != 2 || got[0] != "account" || got[1] != "login" {
		t.Fatalf("expected [account login], got %v", got)
	}
	if got := SplitCategories("  "); got != nil {
		t.Fatalf("blank cell should yield no categories, got %v", got)
	}
}

func TestParseActive(t *testing.T) {
	for _, raw := range []string{"true", "TRUE", " t ", "1", "yes", "Y"} {
		if !parseActive(raw) {
			t.Fatalf("%q should parse as active", raw)
		}
	}
	for _, raw := range []string{"false", "0", "no", "", "maybe"} {
		if parseActive(raw) {
			t.Fatalf("%q should parse as inactive", raw)
		}
	}
}
