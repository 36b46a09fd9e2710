package faq

import "testing"

func TestSelectEmptyCandidates(t *testing.T) {
	sel := Select("anything", nil, 60)
	if sel.Matched {
		t.Fatal("empty candidate set must never match")
	}
	if sel.Score != 0 {
		t.Fatalf("expected score 0, got %d", sel.Score)
	}
	if sel.Record != nil {
		t.Fatal("expected no record on miss")
	}
}

func TestSelectHitAboveThreshold(t *testing.T) {
	records := []Record{
		{Question: "How do I reset my password?", Answer: "Use the reset link on the login page.", Active: true},
	}

	sel := Select("reset password how", records, 60)
	if !sel.Matched {
		t.Fatalf("expected a match, best score %d", sel.Score)
	}
	if sel.Record.Answer != records[0].Answer {
		t.Fatalf("unexpected answer %q", sel.Record.Answer)
	}
}

func TestSelectMissReportsBestScore(t *testing.T) {
	records := []Record{
		{Question: "How do I reset my password?", Answer: "Use the reset link on the login page.", Active: true},
	}

	sel := Select("What is the weather today?", records, 60)
	if sel.Matched {
		t.Fatal("unrelated query must miss at threshold 60")
	}
	if sel.Record != nil {
		t.Fatal("expected no record on miss")
	}
	if sel.Score <= 0 {
		t.Fatalf("miss should still report the best score, got %d", sel.Score)
	}
}

func TestSelectTieKeepsFirstSeen(t *testing.T) {
	records := []Record{
		{Question: "shipping times", Answer: "first", Active: true},
		{Question: "shipping times", Answer: "second", Active: true},
	}

	sel := Select("shipping times", records, 50)
	if !sel.Matched {
		t.Fatalf("expected a match, best score %d", sel.Score)
	}
	if sel.Record.Answer != "first" {
		t.Fatalf("tie must keep the first-seen candidate, got %q", sel.Record.Answer)
	}
}

// Raising the threshold can only turn a hit into a miss, never the reverse.
func TestSelectThresholdMonotonic(t *testing.T) {
	records := []Record{
		{Question: "How do I reset my password?", Answer: "Use the reset link on the login page.", Active: true},
		{Question: "Where can I download invoices?", Answer: "From the billing page.", Active: true},
	}
	queries := []string{"reset password how", "weather today", "", "invoices download"}

	for _, q := range queries {
		matchedBefore := true
		for threshold := 1; threshold <= 100; threshold++ {
			sel := Select(q, records, threshold)
			if sel.Matched && !matchedBefore {
				t.Fatalf("query %q: match reappeared at threshold %d", q, threshold)
			}
			matchedBefore = sel.Matched
		}
	}
}
