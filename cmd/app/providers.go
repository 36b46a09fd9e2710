package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
	"github.com/yanqian/faq-chatbot/internal/infra/answercache"
	"github.com/yanqian/faq-chatbot/internal/infra/config"
	"github.com/yanqian/faq-chatbot/internal/infra/corpus"
	"github.com/yanqian/faq-chatbot/internal/infra/llm/chatgpt"
)

func provideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		Threshold:      cfg.FAQ.Threshold,
		Prompt:         cfg.FAQ.Prompt,
		Apology:        cfg.FAQ.Apology,
		Model:          cfg.LLM.Model,
		FallbackModel:  cfg.LLM.FallbackModel,
		Temperature:    cfg.LLM.Temperature,
		MaxTokens:      cfg.LLM.MaxTokens,
		RequestTimeout: cfg.LLM.RequestTimeout,
		CacheTTL:       cfg.FAQ.Cache.TTL,
	}
}

func provideChatGPTClient(cfg *config.Config) (*chatgpt.Client, error) {
	return chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
}

func provideCorpusSource(cfg *config.Config, logger *slog.Logger) (faq.Source, error) {
	if cfg.Corpus.Source == "postgres" {
		poolConfig, err := pgxpool.ParseConfig(cfg.Corpus.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		if cfg.Corpus.Postgres.MaxConns > 0 {
			poolConfig.MaxConns = cfg.Corpus.Postgres.MaxConns
		}
		if cfg.Corpus.Postgres.MinConns > 0 {
			poolConfig.MinConns = cfg.Corpus.Postgres.MinConns
		}
		pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("corpus postgres source enabled")
		return corpus.NewPostgresSource(pool, logger), nil
	}
	logger.Info("corpus file source enabled", "path", cfg.Corpus.Path, "encoding", cfg.Corpus.Encoding)
	return corpus.NewCSVSource(cfg.Corpus.Path, cfg.Corpus.Encoding, logger), nil
}

func provideAnswerCache(cfg *config.Config, logger *slog.Logger) faq.AnswerCache {
	addr := strings.TrimSpace(cfg.FAQ.Cache.ValkeyAddr)
	if addr == "" {
		return answercache.NewMemoryCache()
	}
	opt, err := buildValkeyOptions(addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
		return answercache.NewMemoryCache()
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
		return answercache.NewMemoryCache()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		return answercache.NewMemoryCache()
	}
	logger.Info("valkey answer cache enabled", "addr", addr)
	return answercache.NewValkeyCache(client, "faq")
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
