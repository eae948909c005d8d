package storefront

import (
	"context"

	"github.com/guestconcierge/storefront-client/internal/cache"
	"github.com/guestconcierge/storefront-client/internal/errors"
	"github.com/guestconcierge/storefront-client/internal/models"
	service "github.com/guestconcierge/storefront-client/internal/services"
)

// RequireAdmin is the verify-on-mount gate: a round trip to the backend, not
// a local token presence check. A rejected token is removed from storage so
// the next attempt starts from the login screen.
func (s *Storefront) RequireAdmin(ctx context.Context) error {

	if !s.auth.HasToken() {
		return errors.UnauthorizedError("Admin login required")
	}

	if !s.auth.Verify(ctx) {

		if err := s.auth.Logout(); err != nil {
			return err
		}

		return errors.UnauthorizedError("Admin session expired")
	}

	return nil
}

// HasAdminToken is the fast, unverified check. Safe only for low-stakes UI
// decisions like showing an edit affordance; every actual mutation still
// goes through the authoritative admin client.
func (s *Storefront) HasAdminToken() bool {
	return s.auth.HasToken()
}

func (s *Storefront) AdminLogin(ctx context.Context, password string) error {
	return s.auth.Login(ctx, password)
}

func (s *Storefront) AdminLogout(ctx context.Context) error {

	if err := s.auth.Logout(); err != nil {
		return err
	}

	return s.InvalidateAdmin(ctx)
}

// Cached admin reads. Mutation commands call the matching invalidator after
// a successful write; with the Redis backend this keeps several kiosk
// processes coherent.

func (s *Storefront) AdminProducts(ctx context.Context, opts service.AdminProductListOptions) ([]models.AdminProduct, error) {
	key := cache.AdminProductsKey(opts.Search, opts.Type)

	return fetchThrough(ctx, s, key, func(ctx context.Context) ([]models.AdminProduct, error) {
		return s.adminProducts.List(ctx, opts)
	})
}

func (s *Storefront) AdminTags(ctx context.Context) ([]models.AdminTag, error) {
	return fetchThrough(ctx, s, cache.AdminTagsKey(), func(ctx context.Context) ([]models.AdminTag, error) {
		return s.adminTags.List(ctx)
	})
}

func (s *Storefront) AdminTips(ctx context.Context) ([]models.AdminTip, error) {
	return fetchThrough(ctx, s, cache.AdminTipsKey(), func(ctx context.Context) ([]models.AdminTip, error) {
		return s.adminTips.List(ctx)
	})
}

func (s *Storefront) AdminOrders(ctx context.Context) ([]models.Order, error) {
	return fetchThrough(ctx, s, cache.AdminOrdersKey(), func(ctx context.Context) ([]models.Order, error) {
		return s.adminOrders.List(ctx)
	})
}

func (s *Storefront) InvalidateAdminProducts(ctx context.Context) error {
	// Admin edits also change what the public catalog serves.
	if err := s.cache.DeletePrefix(ctx, cache.AdminProductsPrefix()); err != nil {
		return err
	}

	return s.cache.DeletePrefix(ctx, cache.ProductsPrefix())
}

func (s *Storefront) InvalidateAdminTags(ctx context.Context) error {
	if err := s.cache.DeletePrefix(ctx, cache.AdminTagsKey()); err != nil {
		return err
	}

	return s.cache.DeletePrefix(ctx, cache.TagsPrefix())
}

func (s *Storefront) InvalidateAdminTips(ctx context.Context) error {
	if err := s.cache.DeletePrefix(ctx, cache.AdminTipsKey()); err != nil {
		return err
	}

	return s.cache.DeletePrefix(ctx, cache.TipsPrefix())
}

func (s *Storefront) InvalidateAdminOrders(ctx context.Context) error {
	return s.cache.DeletePrefix(ctx, cache.AdminOrdersKey())
}

// InvalidateAdmin drops every admin-scoped entry, used on logout.
func (s *Storefront) InvalidateAdmin(ctx context.Context) error {
	return s.cache.DeletePrefix(ctx, cache.AdminPrefix())
}

// AdminServices exposes the mutation surface; callers pair each write with
// the matching invalidator above.
func (s *Storefront) AdminServices() (products *service.AdminProductService, tags *service.AdminTagService, tips *service.AdminTipService, orders *service.AdminOrderService) {
	return s.adminProducts, s.adminTags, s.adminTips, s.adminOrders
}
