package upstream

import (
	"context"
	"testing"

	"github.com/billinglens/billinglens/internal/config"
	ierr "github.com/billinglens/billinglens/internal/errors"
	"github.com/billinglens/billinglens/internal/logger"
	"github.com/billinglens/billinglens/internal/types"
	goCache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSubscriptionServedFromCache(t *testing.T) {
	start := int64(1704067200)
	end := int64(1706745600)

	// no SDK client; a cache miss would panic instead of passing
	c := &StripeClient{
		version: types.SchemaVersionBasil,
		cache:   goCache.New(subscriptionCacheTTL, cacheCleanupInterval),
		logger:  logger.L,
	}
	c.cache.Set(subscriptionCacheKey("sub_1"), Subscription{
		ID:                 "sub_1",
		Customer:           "cus_1",
		Status:             "active",
		CurrentPeriodStart: &start,
		CurrentPeriodEnd:   &end,
		SchemaVersion:      types.SchemaVersionBasil,
	}, goCache.DefaultExpiration)

	sub, err := c.GetSubscription(context.Background(), "sub_1")
	require.NoError(t, err)

	assert.Equal(t, "sub_1", sub.ID)
	assert.Equal(t, "cus_1", sub.Customer)
	require.NotNil(t, sub.CurrentPeriodStart)
	assert.Equal(t, start, *sub.CurrentPeriodStart)
}

func TestPublishableKey(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Stripe.PublishableKey = "pk_test_123"

	c := &StripeClient{cfg: cfg, logger: logger.L}

	key, err := c.PublishableKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pk_test_123", key)

	cfg.Stripe.PublishableKey = ""
	_, err = c.PublishableKey(context.Background())
	assert.True(t, ierr.IsNotFound(err))
}
