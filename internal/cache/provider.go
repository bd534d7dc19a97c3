// Package cache provides best-effort typed caching over redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
)

// Client is the subset of the redis API used by providers.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

var _ Client = (*redis.Client)(nil)

// Codec converts cached values to and from their stored form.
type Codec[T any] interface {
	Marshal(v T) ([]byte, error)
	Unmarshal(data []byte) (T, error)
}

// Params fills the placeholders of a key template.
type Params map[string]any

var placeholder = regexp.MustCompile(`\{([a-z_]+)\}`)

// Provider reads, writes and invalidates values of type T. None of its methods return errors:
// every failure is logged and behaves like a cache miss.
type Provider[T any] struct {
	client      Client
	codec       Codec[T]
	keyTemplate string
	ttl         time.Duration
	slidingTTL  bool
	logger      *logger.Logger
}

// Option configures a Provider.
type Option[T any] func(*Provider[T])

// WithSlidingTTL re-arms the TTL on every successful read.
func WithSlidingTTL[T any]() Option[T] {
	return func(p *Provider[T]) { p.slidingTTL = true }
}

// WithCodec replaces the default JSON codec.
func WithCodec[T any](codec Codec[T]) Option[T] {
	return func(p *Provider[T]) { p.codec = codec }
}

// NewProvider creates a Provider storing values under keyTemplate, e.g. "app-cache:user:{user_id}".
func NewProvider[T any](client Client, keyTemplate string, ttl time.Duration, logger *logger.Logger, opts ...Option[T]) *Provider[T] {
	p := &Provider[T]{
		client:      client,
		codec:       JSONCodec[T]{},
		keyTemplate: keyTemplate,
		ttl:         ttl,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Get returns the cached value, or false on a miss.
func (p *Provider[T]) Get(ctx context.Context, params Params) (T, bool) {
	var zero T

	key, err := p.Key(params)
	if err != nil {
		p.logger.Error("Cache: failed to build key", "template", p.keyTemplate, "error", err.Error())
		return zero, false
	}

	raw, err := p.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.logger.Warn("Cache: provider unavailable", "key", key, "error", err.Error())
		}
		return zero, false
	}

	value, err := p.codec.Unmarshal(raw)
	if err != nil {
		p.logger.Warn("Cache: failed to deserialize value, dropping it", "key", key, "error", err.Error())
		if err := p.client.Del(ctx, key).Err(); err != nil {
			p.logger.Warn("Cache: failed to invalidate key", "key", key, "error", err.Error())
		}
		return zero, false
	}

	if p.slidingTTL {
		if err := p.client.Expire(ctx, key, p.ttl).Err(); err != nil {
			p.logger.Warn("Cache: failed to apply sliding TTL", "key", key, "error", err.Error())
		} else {
			p.logger.Debug("Cache: applied sliding TTL", "key", key, "ttl", p.ttl.String())
		}
	}

	return value, true
}

// Set stores value with the provider TTL.
func (p *Provider[T]) Set(ctx context.Context, value T, params Params) {
	key, err := p.Key(params)
	if err != nil {
		p.logger.Error("Cache: failed to build key", "template", p.keyTemplate, "error", err.Error())
		return
	}

	raw, err := p.codec.Marshal(value)
	if err != nil {
		p.logger.Warn("Cache: failed to serialize value, skipping write", "key", key, "error", err.Error())
		return
	}

	if err := p.client.Set(ctx, key, raw, p.ttl).Err(); err != nil {
		p.logger.Warn("Cache: provider unavailable", "key", key, "error", err.Error())
	}
}

// Invalidate removes the value.
func (p *Provider[T]) Invalidate(ctx context.Context, params Params) {
	key, err := p.Key(params)
	if err != nil {
		p.logger.Error("Cache: failed to build key", "template", p.keyTemplate, "error", err.Error())
		return
	}

	if err := p.client.Del(ctx, key).Err(); err != nil {
		p.logger.Warn("Cache: failed to invalidate key", "key", key, "error", err.Error())
	}
}

// Key renders the key template with params. Every placeholder must have a value.
func (p *Provider[T]) Key(params Params) (string, error) {
	var missing []string
	key := placeholder.ReplaceAllStringFunc(p.keyTemplate, func(m string) string {
		name := m[1 : len(m)-1]
		v, ok := params[name]
		if !ok {
			missing = append(missing, name)
			return m
		}
		return fmt.Sprint(v)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("invalid cache key template %q: missing %v", p.keyTemplate, missing)
	}
	return key, nil
}
