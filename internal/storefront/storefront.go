// Package storefront is the cached facade the UI layer talks to. Reads go
// through the key-scoped cache with in-flight deduplication; mutations either
// write the returned entity through or invalidate the affected keys. The
// cache is the single source of truth for server data between fetches.
package storefront

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guestconcierge/storefront-client/internal/cache"
	"github.com/guestconcierge/storefront-client/internal/errors"
	"github.com/guestconcierge/storefront-client/internal/metrics"
	"github.com/guestconcierge/storefront-client/internal/models"
	service "github.com/guestconcierge/storefront-client/internal/services"
)

type Storefront struct {
	cache  cache.Cache
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger

	carts    *service.CartService
	products *service.ProductService
	tags     *service.TagService
	tips     *service.TipService
	orders   *service.OrderService
	auth     *service.AdminAuthService

	adminProducts *service.AdminProductService
	adminTags     *service.AdminTagService
	adminTips     *service.AdminTipService
	adminOrders   *service.AdminOrderService
}

type Services struct {
	Carts    *service.CartService
	Products *service.ProductService
	Tags     *service.TagService
	Tips     *service.TipService
	Orders   *service.OrderService
	Auth     *service.AdminAuthService

	AdminProducts *service.AdminProductService
	AdminTags     *service.AdminTagService
	AdminTips     *service.AdminTipService
	AdminOrders   *service.AdminOrderService
}

func New(c cache.Cache, ttl time.Duration, svcs Services, logger *slog.Logger) *Storefront {
	return &Storefront{
		cache:         c,
		ttl:           ttl,
		logger:        logger,
		carts:         svcs.Carts,
		products:      svcs.Products,
		tags:          svcs.Tags,
		tips:          svcs.Tips,
		orders:        svcs.Orders,
		auth:          svcs.Auth,
		adminProducts: svcs.AdminProducts,
		adminTags:     svcs.AdminTags,
		adminTips:     svcs.AdminTips,
		adminOrders:   svcs.AdminOrders,
	}
}

// fetchThrough answers from cache when fresh and otherwise fetches, storing
// the result under the key. Concurrent callers for the same key share a
// single network call; a changed filter or locale is a different key, so the
// newest input always wins by key identity rather than by request ordering.
func fetchThrough[T any](ctx context.Context, s *Storefront, key string, fetch func(context.Context) (T, error)) (T, error) {

	resource := cache.Resource(key)

	var cached T
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		metrics.CacheHit(resource)

		return cached, nil
	}

	metrics.CacheMiss(resource)

	result, err, _ := s.group.Do(key, func() (any, error) {

		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
			s.logger.Warn("cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}

		return value, nil
	})
	if err != nil {
		var zero T

		return zero, err
	}

	return result.(T), nil
}

func (s *Storefront) Products(ctx context.Context, opts service.ProductListOptions) ([]models.Product, error) {
	key := cache.ProductsKey(opts.Language, opts.Search, opts.Type, opts.TagIDs)

	return fetchThrough(ctx, s, key, func(ctx context.Context) ([]models.Product, error) {
		return s.products.List(ctx, opts)
	})
}

func (s *Storefront) Product(ctx context.Context, lang string, id int64) (*models.Product, error) {
	return fetchThrough(ctx, s, cache.ProductKey(lang, id), func(ctx context.Context) (*models.Product, error) {
		return s.products.Get(ctx, lang, id)
	})
}

func (s *Storefront) Tags(ctx context.Context, opts service.TagListOptions) ([]models.Tag, error) {
	key := cache.TagsKey(opts.Language, opts.Type, opts.TipType)

	return fetchThrough(ctx, s, key, func(ctx context.Context) ([]models.Tag, error) {
		return s.tags.List(ctx, opts)
	})
}

func (s *Storefront) Tips(ctx context.Context, opts service.TipListOptions) ([]models.Tip, error) {
	return fetchThrough(ctx, s, cache.TipsKey(opts.Language, opts.TipType), func(ctx context.Context) ([]models.Tip, error) {
		return s.tips.List(ctx, opts)
	})
}

func (s *Storefront) Order(ctx context.Context, lang, orderID string) (*models.Order, error) {
	return fetchThrough(ctx, s, cache.OrderKey(lang, orderID), func(ctx context.Context) (*models.Order, error) {
		return s.orders.Get(ctx, lang, orderID)
	})
}

// Cart returns the current cart, creating one lazily when no token is
// stored. The token is locale-independent; only display strings vary by
// locale, which is why each locale gets its own cache entry.
func (s *Storefront) Cart(ctx context.Context, lang string) (*models.Cart, error) {
	return fetchThrough(ctx, s, cache.CartKey(lang), func(ctx context.Context) (*models.Cart, error) {
		return s.carts.GetOrCreate(ctx, lang)
	})
}

func (s *Storefront) HasCart() bool {
	_, ok := s.carts.Token()

	return ok
}

// AddItem writes the returned cart through to this locale's entry. Other
// locales' entries are invalidated rather than updated: their display
// strings are stale now.
func (s *Storefront) AddItem(ctx context.Context, lang string, req *models.AddItemRequest) (*models.Cart, error) {

	cart, err := s.carts.AddItem(ctx, lang, req)
	if err != nil {
		return nil, err
	}

	s.writeCartThrough(ctx, lang, cart)

	return cart, nil
}

func (s *Storefront) UpdateItem(ctx context.Context, lang string, itemID int64, quantity int) (*models.Cart, error) {

	cart, err := s.carts.UpdateItem(ctx, lang, itemID, &models.UpdateItemRequest{Quantity: quantity})
	if err != nil {
		return nil, err
	}

	s.writeCartThrough(ctx, lang, cart)

	return cart, nil
}

// RemoveItem gets no cart back from the backend, so every cart entry is
// invalidated and the next read refetches.
func (s *Storefront) RemoveItem(ctx context.Context, itemID int64) error {

	if err := s.carts.RemoveItem(ctx, itemID); err != nil {
		return err
	}

	return s.cache.DeletePrefix(ctx, cache.CartPrefix())
}

type CheckoutOptions struct {
	ContactInfo string
	Notes       string
}

// Checkout turns the cart into an order, clears the cart token, and sweeps
// every locale's cart entry so a later locale switch cannot resurrect the
// old cart.
func (s *Storefront) Checkout(ctx context.Context, lang string, opts CheckoutOptions) (*models.Order, error) {

	token, ok := s.carts.Token()
	if !ok {
		return nil, errors.NotFoundError("No cart found")
	}

	order, err := s.orders.Checkout(ctx, lang, &models.CheckoutRequest{
		CartToken:   token,
		ContactInfo: opts.ContactInfo,
		Notes:       opts.Notes,
	})
	if err != nil {
		return nil, err
	}

	if err := s.carts.ClearToken(); err != nil {
		return nil, err
	}

	if err := s.cache.DeletePrefix(ctx, cache.CartPrefix()); err != nil {
		s.logger.Warn("cart cache sweep failed", slog.String("error", err.Error()))
	}

	return order, nil
}

func (s *Storefront) writeCartThrough(ctx context.Context, lang string, cart *models.Cart) {

	if err := s.cache.DeletePrefix(ctx, cache.CartPrefix()); err != nil {
		s.logger.Warn("cart cache sweep failed", slog.String("error", err.Error()))

		return
	}

	if err := s.cache.Set(ctx, cache.CartKey(lang), cart, s.ttl); err != nil {
		s.logger.Warn("cart cache write failed", slog.String("error", err.Error()))
	}
}
