package faq

import "time"

// Config holds runtime knobs for the FAQ service.
type Config struct {
	// Threshold is the minimum similarity score (0-100) required to
	// trust a corpus answer instead of invoking the generator.
	Threshold int

	Prompt         string
	Apology        string
	Model          string
	FallbackModel  string
	Temperature    float32
	MaxTokens      int
	RequestTimeout time.Duration
	CacheTTL       time.Duration
}
