package cache

import (
	"context"
	"time"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

const (
	userKeyTemplate          = "app-cache:user:{user_id}"
	contactsCountKeyTemplate = "app-cache:user:{user_id}:contacts-count"
)

var _ model.UserCache = (*UserCache)(nil)

// UserCache keeps user snapshots with a sliding TTL.
type UserCache struct {
	provider *Provider[model.User]
}

// NewUserCache creates a UserCache.
func NewUserCache(client Client, ttl time.Duration, logger *logger.Logger) *UserCache {
	return &UserCache{
		provider: NewProvider(client, userKeyTemplate, ttl, logger, WithSlidingTTL[model.User]()),
	}
}

func (c *UserCache) GetUser(ctx context.Context, userID int64) (model.User, bool) {
	return c.provider.Get(ctx, Params{"user_id": userID})
}

func (c *UserCache) SetUser(ctx context.Context, user model.User) {
	c.provider.Set(ctx, user, Params{"user_id": user.ID})
}

func (c *UserCache) InvalidateUser(ctx context.Context, userID int64) {
	c.provider.Invalidate(ctx, Params{"user_id": userID})
}

var _ model.ContactsCountCache = (*ContactsCountCache)(nil)

// ContactsCountCache keeps per-user contact counts with a sliding TTL.
type ContactsCountCache struct {
	provider *Provider[int]
}

// NewContactsCountCache creates a ContactsCountCache.
func NewContactsCountCache(client Client, ttl time.Duration, logger *logger.Logger) *ContactsCountCache {
	return &ContactsCountCache{
		provider: NewProvider(client, contactsCountKeyTemplate, ttl, logger,
			WithSlidingTTL[int](), WithCodec[int](IntCodec{})),
	}
}

func (c *ContactsCountCache) GetContactsCount(ctx context.Context, userID int64) (int, bool) {
	return c.provider.Get(ctx, Params{"user_id": userID})
}

func (c *ContactsCountCache) SetContactsCount(ctx context.Context, userID int64, count int) {
	c.provider.Set(ctx, count, Params{"user_id": userID})
}

func (c *ContactsCountCache) InvalidateContactsCount(ctx context.Context, userID int64) {
	c.provider.Invalidate(ctx, Params{"user_id": userID})
}
