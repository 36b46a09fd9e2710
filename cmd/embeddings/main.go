// Command embeddings precomputes vector embeddings for the FAQ corpus
// and writes them to a JSON file. It is an offline tool: the live
// request path never reads its output.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkoukk/tiktoken-go"

	"github.com/yanqian/faq-chatbot/internal/infra/config"
	"github.com/yanqian/faq-chatbot/internal/infra/corpus"
	"github.com/yanqian/faq-chatbot/internal/infra/llm/chatgpt"
	"github.com/yanqian/faq-chatbot/pkg/logger"
)

// The embeddings API rejects inputs above this token count.
const maxInputTokens = 8191

type embeddingEntry struct {
	Text      string    `json:"text"`
	Answer    string    `json:"answer"`
	Embedding []float32 `json:"embedding"`
}

func main() {
	var (
		inputPath  = flag.String("input", "", "corpus CSV path (defaults to corpus.path from config)")
		outputPath = flag.String("output", "faq_embeddings.json", "output JSON path")
		sleep      = flag.Duration("sleep", 1200*time.Millisecond, "pause between embedding calls to stay under rate limits")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logg := logger.New().With("component", "embeddings")

	path := *inputPath
	if path == "" {
		path = cfg.Corpus.Path
	}

	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		log.Fatalf("create chatgpt client: %v", err)
	}

	encoder, err := tiktoken.EncodingForModel(cfg.LLM.EmbeddingModel)
	if err != nil {
		encoder, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			log.Fatalf("load tokenizer: %v", err)
		}
	}

	ctx := context.Background()
	source := corpus.NewCSVSource(path, cfg.Corpus.Encoding, logg)
	records, err := source.Load(ctx)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	entries := make([]embeddingEntry, 0, len(records))
	for i, rec := range records {
		text := fmt.Sprintf("Q: %s\n補足: %s", rec.Question, rec.Note)
		if tokens := len(encoder.Encode(text, nil, nil)); tokens > maxInputTokens {
			logg.Warn("skipping record over token limit", "index", i, "tokens", tokens)
			continue
		}

		resp, err := client.CreateEmbedding(ctx, chatgpt.EmbeddingRequest{
			Model: cfg.LLM.EmbeddingModel,
			Input: text,
		})
		if err != nil {
			logg.Error("embedding call failed, skipping record", "index", i, "error", err)
			continue
		}
		if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
			logg.Warn("embedding response empty, skipping record", "index", i)
			continue
		}

		entries = append(entries, embeddingEntry{
			Text:      text,
			Answer:    rec.Answer,
			Embedding: resp.Data[0].Embedding,
		})

		if *sleep > 0 && i < len(records)-1 {
			time.Sleep(*sleep)
		}
	}

	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Fatalf("encode embeddings: %v", err)
	}
	if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
		log.Fatalf("write %s: %v", *outputPath, err)
	}
	logg.Info("embeddings written", "count", len(entries), "output", *outputPath)
}
