package faq

import "testing"

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "trims whitespace", in: "  Hello World  ", out: "hello world"},
		{name: "removes punctuation", in: "What's, the distance?", out: "what s the distance"},
		{name: "collapses runs", in: "a -- b\t\tc", out: "a b c"},
		{name: "empty", in: "   ", out: ""},
	}

	for _, tc := range cases {
		if got := normalizeText(tc.in); got != tc.out {
			t.Fatalf("%s: expected %q got %q", tc.name, tc.out, got)
		}
	}
}

func TestTokenSetDeduplicates(t *testing.T) {
	set := tokenSet("go go gopher")
	if len(set) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(set))
	}
	for _, tok := range []string{"go", "gopher"} {
		if _, ok := set[tok]; !ok {
			t.Fatalf("missing token %q", tok)
		}
	}
}
