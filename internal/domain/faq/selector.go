package faq

// Select scans every candidate once and tracks the single best score.
// The comparison is strictly greater-than, so ties keep the first-seen
// candidate and corpus order stays a deterministic tie-break. The
// selection is a match only when the best score reaches the threshold;
// an empty candidate set always misses with score zero.
func Select(query string, records []Record, threshold int) Selection {
	var sel Selection
	for i := range records {
		score := Score(query, records[i])
		if sel.Record == nil || score > sel.Score {
			sel.Record = &records[i]
			sel.Score = score
		}
	}
	sel.Matched = sel.Record != nil && sel.Score >= threshold
	if !sel.Matched {
		sel.Record = nil
	}
	return sel
}
