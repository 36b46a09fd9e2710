package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	Corpus CorpusConfig `yaml:"corpus"`
	FAQ    FAQConfig    `yaml:"faq"`
	LLM    LLMConfig    `yaml:"llm"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// CorpusConfig locates the FAQ corpus and controls reloading.
type CorpusConfig struct {
	// Source selects the loader: "file" or "postgres".
	Source         string         `yaml:"source"`
	Path           string         `yaml:"path"`
	Encoding       string         `yaml:"encoding"`
	ReloadInterval time.Duration  `yaml:"reloadInterval"`
	Postgres       PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// FAQConfig controls matching and fallback generation behavior.
type FAQConfig struct {
	Threshold int         `yaml:"threshold"`
	Prompt    string      `yaml:"prompt"`
	Apology   string      `yaml:"apology"`
	Cache     CacheConfig `yaml:"cache"`
}

// CacheConfig contains the generated-answer cache settings.
type CacheConfig struct {
	TTL        time.Duration `yaml:"ttl"`
	ValkeyAddr string        `yaml:"valkeyAddr"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey         string        `yaml:"apiKey"`
	BaseURL        string        `yaml:"baseUrl"`
	Model          string        `yaml:"model"`
	FallbackModel  string        `yaml:"fallbackModel"`
	EmbeddingModel string        `yaml:"embeddingModel"`
	Temperature    float32       `yaml:"temperature"`
	MaxTokens      int           `yaml:"maxTokens"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTruthy(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("CORPUS_SOURCE"); v != "" {
		cfg.Corpus.Source = v
	}
	if v := os.Getenv("CORPUS_PATH"); v != "" {
		cfg.Corpus.Path = v
	}
	if v := os.Getenv("CORPUS_ENCODING"); v != "" {
		cfg.Corpus.Encoding = v
	}
	if v := os.Getenv("CORPUS_RELOAD_INTERVAL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Corpus.ReloadInterval = parsed
		}
	}
	if v := os.Getenv("CORPUS_POSTGRES_DSN"); v != "" {
		cfg.Corpus.Postgres.DSN = v
	}
	if v := os.Getenv("CORPUS_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Corpus.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("CORPUS_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Corpus.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("FAQ_THRESHOLD"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.FAQ.Threshold = parsed
		}
	}
	if v := os.Getenv("FAQ_PROMPT"); v != "" {
		cfg.FAQ.Prompt = v
	}
	if v := os.Getenv("FAQ_APOLOGY"); v != "" {
		cfg.FAQ.Apology = v
	}
	if v := os.Getenv("FAQ_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.FAQ.Cache.TTL = parsed
		}
	}
	if v := os.Getenv("FAQ_CACHE_VALKEY_ADDR"); v != "" {
		cfg.FAQ.Cache.ValkeyAddr = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_FALLBACK_MODEL"); v != "" {
		cfg.LLM.FallbackModel = v
	}
	if v := os.Getenv("LLM_EMBEDDING_MODEL"); v != "" {
		cfg.LLM.EmbeddingModel = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.LLM.MaxTokens = parsed
		}
	}
	if v := os.Getenv("LLM_REQUEST_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.LLM.RequestTimeout = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Corpus: CorpusConfig{
			Source:         "file",
			Path:           "data/faq.csv",
			Encoding:       "utf-8",
			ReloadInterval: 5 * time.Minute,
			Postgres: PostgresConfig{
				MaxConns: 4,
				MinConns: 0,
			},
		},
		FAQ: FAQConfig{
			Threshold: 70,
			Prompt:    "You are a support assistant specialized in answering frequently asked questions. Answer clearly and concisely, and say you do not know when you are not sure.",
			Apology:   "Sorry, I am unable to answer that right now. Please try again later.",
			Cache: CacheConfig{
				TTL: 6 * time.Hour,
			},
		},
		LLM: LLMConfig{
			Model:          "gpt-4o-mini",
			FallbackModel:  "gpt-3.5-turbo",
			EmbeddingModel: "text-embedding-3-small",
			Temperature:    0.5,
			MaxTokens:      500,
			RequestTimeout: 30 * time.Second,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	switch c.Corpus.Source {
	case "file":
		if strings.TrimSpace(c.Corpus.Path) == "" {
			return errors.New("corpus.path cannot be empty for the file source")
		}
	case "postgres":
		if strings.TrimSpace(c.Corpus.Postgres.DSN) == "" {
			return errors.New("corpus.postgres.dsn cannot be empty for the postgres source")
		}
	default:
		return fmt.Errorf("corpus.source must be file or postgres, got %q", c.Corpus.Source)
	}
	if c.Corpus.ReloadInterval < 0 {
		return errors.New("corpus.reloadInterval cannot be negative")
	}
	if c.FAQ.Threshold <= 0 || c.FAQ.Threshold > 100 {
		return errors.New("faq.threshold must be in (0, 100]")
	}
	if c.FAQ.Prompt == "" {
		return errors.New("faq.prompt cannot be empty")
	}
	if c.FAQ.Apology == "" {
		return errors.New("faq.apology cannot be empty")
	}
	if c.FAQ.Cache.TTL < 0 {
		return errors.New("faq.cache.ttl cannot be negative")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if strings.TrimSpace(c.LLM.EmbeddingModel) == "" {
		return errors.New("llm.embeddingModel cannot be empty")
	}
	if c.LLM.RequestTimeout <= 0 {
		return errors.New("llm.requestTimeout must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}

func isTruthy(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitAndTrim(v string) []string {
	var out []string
	for _, piece := range strings.Split(v, ",") {
		if trimmed := strings.TrimSpace(piece); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
