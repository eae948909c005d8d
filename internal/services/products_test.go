package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
	service "github.com/guestconcierge/storefront-client/internal/services"
	"github.com/guestconcierge/storefront-client/internal/testutils"
)

func newProductService(t *testing.T, backend *testutils.Backend) *service.ProductService {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return service.NewProductService(httpapi.New(backend.URL(), 5*time.Second, logger))
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - All Products", func(t *testing.T) {
		// Arrange
		backend := seededBackend(t)
		svc := newProductService(t, backend)

		// Act
		products, err := svc.List(ctx, service.ProductListOptions{Language: "en"})

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Late Checkout", products[0].Name)
		assert.Equal(t, "25.00", products[0].Price)
	})

	t.Run("Success - Localized Names", func(t *testing.T) {
		// Arrange
		backend := seededBackend(t)
		svc := newProductService(t, backend)

		// Act
		products, err := svc.List(ctx, service.ProductListOptions{Language: "es"})

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Salida Tardía", products[0].Name)
	})

	t.Run("Success - Search Filter", func(t *testing.T) {
		// Arrange
		backend := seededBackend(t)
		svc := newProductService(t, backend)

		// Act
		products, err := svc.List(ctx, service.ProductListOptions{Language: "en", Search: "towel"})

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Beach Towel", products[0].Name)
	})

	t.Run("Success - Type Filter", func(t *testing.T) {
		// Arrange
		backend := seededBackend(t)
		svc := newProductService(t, backend)

		// Act
		products, err := svc.List(ctx, service.ProductListOptions{Language: "en", Type: models.ProductTypeService})

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Late Checkout", products[0].Name)
	})

	t.Run("Success - Empty Result Is Empty Slice", func(t *testing.T) {
		backend := seededBackend(t)
		svc := newProductService(t, backend)

		products, err := svc.List(ctx, service.ProductListOptions{Language: "en", Search: "no such thing"})

		require.NoError(t, err)
		assert.Empty(t, products)
	})
}
