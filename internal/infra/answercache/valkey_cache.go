package answercache

import (
	"context"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
)

// ValkeyCache persists generated answers in a Valkey-compatible database.
type ValkeyCache struct {
	client valkey.Client
	prefix string
}

// NewValkeyCache constructs a cache backed by Valkey.
func NewValkeyCache(client valkey.Client, prefix string) *ValkeyCache {
	if prefix == "" {
		prefix = "faq"
	}
	return &ValkeyCache{client: client, prefix: prefix}
}

// Get implements faq.AnswerCache.
func (c *ValkeyCache) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}
	cmd := c.client.B().Get().Key(c.answerKey(key)).Build()
	answer, err := c.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return answer, true, nil
}

// Put implements faq.AnswerCache.
func (c *ValkeyCache) Put(ctx context.Context, key, answer string, ttl time.Duration) error {
	if key == "" {
		return nil
	}
	builder := c.client.B().Set().Key(c.answerKey(key)).Value(answer)
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) answerKey(key string) string {
	return c.prefix + ":answer:" + key
}

var _ faq.AnswerCache = (*ValkeyCache)(nil)
