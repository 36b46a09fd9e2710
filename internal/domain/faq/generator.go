package faq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/yanqian/faq-chatbot/internal/infra/llm/chatgpt"
	"github.com/yanqian/faq-chatbot/pkg/metrics"
)

// ChatClient is the generative-model capability the generator depends on.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
}

// Generator produces an improvised answer when no corpus entry is
// close enough. It always returns user-facing text: a rate-limited
// primary model triggers exactly one call at the fallback tier, and
// any other failure degrades to the configured apology instead of an
// error.
type Generator struct {
	cfg    Config
	client ChatClient
	logger *slog.Logger
}

// NewGenerator wires up the fallback generator.
func NewGenerator(cfg Config, client ChatClient, logger *slog.Logger) *Generator {
	return &Generator{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "faq.generator"),
	}
}

// Generate asks the generative model for an answer to the question.
func (g *Generator) Generate(ctx context.Context, question string) Generated {
	messages := []chatgpt.Message{
		{Role: "system", Content: g.cfg.Prompt},
		{Role: "user", Content: fmt.Sprintf("Question: %s\nAnswer clearly and concisely. If you are not sure, say that you do not know.", question)},
	}

	out, err := g.complete(ctx, g.cfg.Model, messages)
	if err == nil {
		return out
	}

	if chatgpt.IsRateLimited(err) && g.cfg.FallbackModel != "" {
		g.logger.Warn("primary model rate limited, downgrading", "model", g.cfg.Model, "fallback", g.cfg.FallbackModel)
		out, err = g.complete(ctx, g.cfg.FallbackModel, messages)
		if err == nil {
			return out
		}
	}

	g.logger.Error("fallback generation failed", "error", err)
	return Generated{Answer: g.cfg.Apology}
}

func (g *Generator) complete(ctx context.Context, model string, messages []chatgpt.Message) (Generated, error) {
	if g.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.RequestTimeout)
		defer cancel()
	}

	resp, err := g.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: g.cfg.Temperature,
		MaxTokens:   g.cfg.MaxTokens,
	})
	if err != nil {
		return Generated{}, err
	}
	if len(resp.Choices) == 0 {
		return Generated{}, errors.New("completion returned no choices")
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return Generated{}, errors.New("completion content empty")
	}
	return Generated{
		Answer: answer,
		Usage: metrics.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
