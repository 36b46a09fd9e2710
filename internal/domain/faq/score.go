package faq

import (
	"math"
	"sort"
	"strings"
)

// Score computes the closeness between a query and a candidate record
// on a 0-100 scale. No single string metric survives both word
// reordering and partial overlap, so two are computed against both the
// question and the note and the maximum wins: a best-aligned substring
// ratio and a token-set ratio over deduplicated word bags.
func Score(query string, rec Record) int {
	q := normalizeText(query)
	best := 0
	for _, field := range []string{rec.Question, rec.Note} {
		f := normalizeText(field)
		if f == "" {
			continue
		}
		if s := partialRatio(q, f); s > best {
			best = s
		}
		if s := tokenSetRatio(q, f); s > best {
			best = s
		}
		if best == 100 {
			break
		}
	}
	return best
}

// ratio is a Levenshtein similarity: 100 for equal non-empty strings,
// 0 when either side is empty.
func ratio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	dist := levenshtein(ra, rb)
	return int(math.Round(100 * (1 - float64(dist)/float64(longest))))
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// partialRatio slides the shorter string across the longer one and
// keeps the best window ratio, so a query buried inside a long
// candidate (or the reverse) still scores high.
func partialRatio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return 0
	}
	window := len(ra)
	best := 0
	for i := 0; i+window <= len(rb); i++ {
		if s := ratio(string(ra), string(rb[i:i+window])); s > best {
			best = s
		}
		if best == 100 {
			break
		}
	}
	return best
}

// tokenSetRatio compares deduplicated word bags. The intersection is
// joined with each side's sorted remainder and the best pairwise ratio
// wins, which makes the metric insensitive to word order and repeated
// words, and yields 100 when one token set contains the other.
func tokenSetRatio(a, b string) int {
	ta, tb := tokenSet(a), tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var inter, onlyA, onlyB []string
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			inter = append(inter, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range tb {
		if _, ok := ta[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}
	sort.Strings(inter)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(inter, " ")
	left := joinNonEmpty(base, strings.Join(onlyA, " "))
	right := joinNonEmpty(base, strings.Join(onlyB, " "))

	best := ratio(base, left)
	if s := ratio(base, right); s > best {
		best = s
	}
	if s := ratio(left, right); s > best {
		best = s
	}
	return best
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
