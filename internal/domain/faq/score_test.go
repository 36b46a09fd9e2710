package faq

import "testing"

func TestRatio(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical", a: "hello", b: "hello", want: 100},
		{name: "empty side", a: "", b: "hello", want: 0},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "classic edit distance", a: "kitten", b: "sitting", want: 57},
		{name: "single substitution", a: "abcd", b: "abce", want: 75},
	}

	for _, tc := range cases {
		if got := ratio(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: expected %d got %d", tc.name, tc.want, got)
		}
	}
}

func TestPartialRatio(t *testing.T) {
	cases := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "substring alignment", a: "world", b: "hello world", want: 100},
		{name: "order independent of argument order", a: "hello world", b: "world", want: 100},
		{name: "equal length falls back to plain ratio", a: "abc", b: "abd", want: 67},
		{name: "empty query", a: "", b: "abc", want: 0},
	}

	for _, tc := range cases {
		if got := partialRatio(tc.a, tc.b); got != tc.want {
			t.Fatalf("%s: expected %d got %d", tc.name, tc.want, got)
		}
	}
}

func TestTokenSetRatio(t *testing.T) {
	if got := tokenSetRatio("reset password how", "how do i reset my password"); got != 100 {
		t.Fatalf("subset token bag should score 100, got %d", got)
	}
	if got := tokenSetRatio("b a", "a b"); got != 100 {
		t.Fatalf("reordered identical bags should score 100, got %d", got)
	}
	if got := tokenSetRatio("aaa bbb", "ccc ddd"); got >= 30 {
		t.Fatalf("disjoint bags should score low, got %d", got)
	}
	if got := tokenSetRatio("", "anything"); got != 0 {
		t.Fatalf("empty side should score 0, got %d", got)
	}
}

func TestTokenSetRatioReorderInvariant(t *testing.T) {
	candidate := "how do i reset my password"
	permutations := []string{
		"reset password how",
		"how reset password",
		"password how reset",
	}
	for _, q := range permutations {
		if got := tokenSetRatio(q, candidate); got != 100 {
			t.Fatalf("permutation %q: expected 100 got %d", q, got)
		}
	}
}

func TestScore(t *testing.T) {
	rec := Record{
		Question: "How do I reset my password?",
		Answer:   "Use the reset link on the login page.",
		Active:   true,
	}

	if got := Score("reset password how", rec); got < 60 {
		t.Fatalf("reordered query should score at least 60, got %d", got)
	}
	if got := Score("What is the weather today?", rec); got >= 60 {
		t.Fatalf("unrelated query should score below 60, got %d", got)
	}
	if got := Score("", rec); got != 0 {
		t.Fatalf("empty query should score 0 against text fields, got %d", got)
	}
}

func TestScoreUsesNote(t *testing.T) {
	rec := Record{
		Question: "Billing cycle",
		Note:     "invoice payment schedule monthly",
		Answer:   "Invoices are issued on the first of each month.",
		Active:   true,
	}

	if got := Score("monthly invoice schedule", rec); got != 100 {
		t.Fatalf("note token bag should score 100, got %d", got)
	}
}
