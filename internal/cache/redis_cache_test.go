package cache_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestconcierge/storefront-client/internal/cache"
	"github.com/guestconcierge/storefront-client/internal/config"
	"github.com/guestconcierge/storefront-client/internal/models"
)

func newRedisCache(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	cfg := &config.CacheConfig{Backend: "redis", DefaultTTL: 5 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Get Hit", func(t *testing.T) {
		// Arrange
		c, mock := newRedisCache(t)

		product := models.Product{ID: 7, Name: "Airport Transfer"}
		data, err := json.Marshal(product)
		require.NoError(t, err)

		mock.ExpectGet("products:en:7").SetVal(string(data))

		// Act
		var got models.Product
		found, err := c.Get(ctx, "products:en:7", &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, product, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Get Miss On Redis Nil", func(t *testing.T) {
		// Arrange
		c, mock := newRedisCache(t)
		mock.ExpectGet("products:en:404").RedisNil()

		// Act
		var got models.Product
		found, err := c.Get(ctx, "products:en:404", &got)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Set With Explicit TTL", func(t *testing.T) {
		// Arrange
		c, mock := newRedisCache(t)

		cart := models.Cart{Token: "abc"}
		data, err := json.Marshal(cart)
		require.NoError(t, err)

		mock.ExpectSet("cart:en", data, time.Minute).SetVal("OK")

		// Act
		err = c.Set(ctx, "cart:en", cart, time.Minute)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Set Falls Back To Default TTL", func(t *testing.T) {
		// Arrange
		c, mock := newRedisCache(t)

		cart := models.Cart{Token: "abc"}
		data, err := json.Marshal(cart)
		require.NoError(t, err)

		mock.ExpectSet("cart:en", data, 5*time.Minute).SetVal("OK")

		// Act
		err = c.Set(ctx, "cart:en", cart, 0)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Delete", func(t *testing.T) {
		// Arrange
		c, mock := newRedisCache(t)
		mock.ExpectDel("cart:en").SetVal(1)

		// Act
		err := c.Delete(ctx, "cart:en")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - DeletePrefix Scans And Deletes", func(t *testing.T) {
		// Arrange
		c, mock := newRedisCache(t)

		mock.ExpectScan(0, "cart:*", 0).SetVal([]string{"cart:en", "cart:es"}, 0)
		mock.ExpectDel("cart:en").SetVal(1)
		mock.ExpectDel("cart:es").SetVal(1)

		// Act
		err := c.DeletePrefix(ctx, "cart:")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error - Get Failure Propagates", func(t *testing.T) {
		// Arrange
		c, mock := newRedisCache(t)
		mock.ExpectGet("products:en:7").SetErr(assert.AnError)

		// Act
		var got models.Product
		found, err := c.Get(ctx, "products:en:7", &got)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
	})
}
