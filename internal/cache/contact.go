package cache

import (
	"context"
	"time"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/logger"
	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

const contactKeyTemplate = "app-cache:user:{user_id}:contact:{contact_id}"

var _ model.ContactCache = (*ContactCache)(nil)

// ContactCache keeps single contacts under their owner's namespace.
type ContactCache struct {
	provider *Provider[model.Contact]
}

func NewContactCache(client Client, ttl time.Duration, logger *logger.Logger) *ContactCache {
	return &ContactCache{
		provider: NewProvider(client, contactKeyTemplate, ttl, logger, WithSlidingTTL[model.Contact]()),
	}
}

func (c *ContactCache) GetContact(ctx context.Context, ownerID, contactID int64) (model.Contact, bool) {
	return c.provider.Get(ctx, Params{"user_id": ownerID, "contact_id": contactID})
}

func (c *ContactCache) SetContact(ctx context.Context, contact model.Contact) {
	c.provider.Set(ctx, contact, Params{"user_id": contact.UserID, "contact_id": contact.ID})
}

func (c *ContactCache) InvalidateContact(ctx context.Context, ownerID, contactID int64) {
	c.provider.Invalidate(ctx, Params{"user_id": ownerID, "contact_id": contactID})
}
