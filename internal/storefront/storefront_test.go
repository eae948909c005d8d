package storefront_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestconcierge/storefront-client/internal/cache"
	"github.com/guestconcierge/storefront-client/internal/errors"
	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
	service "github.com/guestconcierge/storefront-client/internal/services"
	"github.com/guestconcierge/storefront-client/internal/session"
	"github.com/guestconcierge/storefront-client/internal/storefront"
	"github.com/guestconcierge/storefront-client/internal/testutils"
)

type fixture struct {
	front   *storefront.Storefront
	cache   cache.Cache
	store   session.Store
	backend *testutils.Backend
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	backend := testutils.NewBackend()
	t.Cleanup(backend.Close)

	backend.SeedProducts(
		testutils.WireProduct{
			ID:         1,
			Names:      map[string]string{"en": "Late Checkout", "es": "Salida Tardía"},
			Type:       "service",
			PriceCents: 2500,
		},
		testutils.WireProduct{
			ID:         2,
			Names:      map[string]string{"en": "Beach Towel", "es": "Toalla de Playa"},
			Type:       "product",
			PriceCents: 1000,
		},
	)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validate := validator.New()

	api := httpapi.New(backend.URL(), 5*time.Second, logger)
	store := session.NewMemStore()
	admin := httpapi.NewAdmin(api, store, "en", nil, logger)

	c := cache.NewMemoryCache(time.Minute)

	front := storefront.New(c, time.Minute, storefront.Services{
		Carts:         service.NewCartService(api, store, validate, logger),
		Products:      service.NewProductService(api),
		Tags:          service.NewTagService(api),
		Tips:          service.NewTipService(api),
		Orders:        service.NewOrderService(api, validate),
		Auth:          service.NewAdminAuthService(api, store, validate),
		AdminProducts: service.NewAdminProductService(admin, validate),
		AdminTags:     service.NewAdminTagService(admin, validate),
		AdminTips:     service.NewAdminTipService(admin, validate),
		AdminOrders:   service.NewAdminOrderService(admin, validate),
	}, logger)

	return &fixture{front: front, cache: c, store: store, backend: backend}
}

func TestStorefront_ProductCaching(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Second Read Served From Cache", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		opts := service.ProductListOptions{Language: "en"}

		// Act
		first, err := f.front.Products(ctx, opts)
		require.NoError(t, err)

		second, err := f.front.Products(ctx, opts)
		require.NoError(t, err)

		// Assert
		assert.Equal(t, first, second)
		assert.Equal(t, 1, f.backend.RequestCount("GET /api/v1/products?language=en"))
	})

	t.Run("Success - Locales Cached Separately", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		english, err := f.front.Products(ctx, service.ProductListOptions{Language: "en"})
		require.NoError(t, err)

		// Act
		spanish, err := f.front.Products(ctx, service.ProductListOptions{Language: "es"})
		require.NoError(t, err)

		// Assert
		assert.Equal(t, "Late Checkout", english[0].Name)
		assert.Equal(t, "Salida Tardía", spanish[0].Name)

		// Switching back costs no fetch: the English entry is still warm.
		_, err = f.front.Products(ctx, service.ProductListOptions{Language: "en"})
		require.NoError(t, err)

		assert.Equal(t, 1, f.backend.RequestCount("GET /api/v1/products?language=en"))
		assert.Equal(t, 1, f.backend.RequestCount("GET /api/v1/products?language=es"))
	})

	t.Run("Success - Filters Get Their Own Entries", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		all, err := f.front.Products(ctx, service.ProductListOptions{Language: "en"})
		require.NoError(t, err)

		// Act
		filtered, err := f.front.Products(ctx, service.ProductListOptions{Language: "en", Search: "towel"})
		require.NoError(t, err)

		// Assert
		assert.Len(t, all, 2)
		require.Len(t, filtered, 1)
		assert.Equal(t, "Beach Towel", filtered[0].Name)
	})
}

func TestStorefront_CartFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Add Update Remove Leaves Empty Cart", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		// Act: add one unit, raise it to three, then remove the line.
		cart, err := f.front.AddItem(ctx, "en", &models.AddItemRequest{ProductID: 1, Quantity: 1})
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)

		cart, err = f.front.UpdateItem(ctx, "en", cart.Items[0].ID, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, cart.Items[0].Quantity)
		assert.Equal(t, "75.00", cart.Total)

		require.NoError(t, f.front.RemoveItem(ctx, cart.Items[0].ID))

		// Assert
		after, err := f.front.Cart(ctx, "en")
		require.NoError(t, err)
		assert.Empty(t, after.Items)
		assert.Equal(t, "0.00", after.Total)
		assert.Equal(t, cart.Token, after.Token)
		assert.Equal(t, 0, after.ItemCount())
	})

	t.Run("Success - Mutations Write Through", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		cart, err := f.front.AddItem(ctx, "en", &models.AddItemRequest{ProductID: 1, Quantity: 2})
		require.NoError(t, err)

		// Act
		cached, err := f.front.Cart(ctx, "en")

		// Assert: the read is served from the written-through entry.
		require.NoError(t, err)
		assert.Equal(t, cart, cached)
		assert.Equal(t, 0, f.backend.RequestCount("GET /api/v1/cart/"+cart.Token+"?language=en"))
	})

	t.Run("Success - Mutation Invalidates Other Locale", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		_, err := f.front.AddItem(ctx, "en", &models.AddItemRequest{ProductID: 1, Quantity: 1})
		require.NoError(t, err)

		spanish, err := f.front.Cart(ctx, "es")
		require.NoError(t, err)
		assert.Equal(t, "Salida Tardía", spanish.Items[0].ProductName)

		// Act: another English mutation makes the Spanish entry stale.
		_, err = f.front.AddItem(ctx, "en", &models.AddItemRequest{ProductID: 2, Quantity: 1})
		require.NoError(t, err)

		spanish, err = f.front.Cart(ctx, "es")

		// Assert
		require.NoError(t, err)
		assert.Len(t, spanish.Items, 2)
	})
}

func TestStorefront_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Clears Token And Cached Cart", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		cart, err := f.front.AddItem(ctx, "en", &models.AddItemRequest{ProductID: 1, Quantity: 2})
		require.NoError(t, err)
		require.True(t, f.front.HasCart())

		// Act
		order, err := f.front.Checkout(ctx, "en", storefront.CheckoutOptions{Notes: "ring the bell"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusConfirmed, order.Status)
		assert.Equal(t, "50.00", order.Total)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "Late Checkout", order.Items[0].ProductName)

		assert.False(t, f.front.HasCart())

		// The next cart read starts an entirely new cart.
		fresh, err := f.front.Cart(ctx, "en")
		require.NoError(t, err)
		assert.NotEqual(t, cart.Token, fresh.Token)
		assert.Empty(t, fresh.Items)
	})

	t.Run("Success - Order Snapshot Readable After Checkout", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		_, err := f.front.AddItem(ctx, "en", &models.AddItemRequest{ProductID: 2, Quantity: 1})
		require.NoError(t, err)

		order, err := f.front.Checkout(ctx, "en", storefront.CheckoutOptions{})
		require.NoError(t, err)

		// Act
		got, err := f.front.Order(ctx, "en", order.ID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, order.Total, got.Total)
	})

	t.Run("Error - No Cart", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.front.Checkout(ctx, "en", storefront.CheckoutOptions{})

		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}

// TestStorefront_RequestDeduplication drives concurrent reads of one key
// against a handler that blocks until every caller is waiting, proving they
// share a single upstream fetch.
func TestStorefront_RequestDeduplication(t *testing.T) {
	ctx := context.Background()

	var calls atomic.Int32

	started := make(chan struct{}, 8)
	release := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		started <- struct{}{}
		<-release

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":1,"name":"Late Checkout","price":"25.00","is_active":true}]}`))
	}))
	defer server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := httpapi.New(server.URL, 5*time.Second, logger)

	front := storefront.New(cache.NewMemoryCache(time.Minute), time.Minute, storefront.Services{
		Products: service.NewProductService(api),
	}, logger)

	var wg sync.WaitGroup

	results := make([][]models.Product, 5)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = front.Products(ctx, service.ProductListOptions{Language: "en"})
	}()

	// Wait for the first fetch to hit the handler, then pile on.
	<-started

	for i := 1; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = front.Products(ctx, service.ProductListOptions{Language: "en"})
		}(i)
	}

	// Give the latecomers time to join the in-flight call before releasing it.
	time.Sleep(100 * time.Millisecond)
	close(release)

	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent identical reads must share one upstream request")

	for i, got := range results {
		require.Len(t, got, 1, "caller %d", i)
		assert.Equal(t, "Late Checkout", got[0].Name)
	}
}
