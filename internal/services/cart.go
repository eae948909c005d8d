package service

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/guestconcierge/storefront-client/internal/errors"
	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
	"github.com/guestconcierge/storefront-client/internal/session"
)

// CartService owns the cart token lifecycle. The token is created lazily on
// first use, survives locale switches, and is cleared only by checkout or by
// the backend forgetting the cart.
type CartService struct {
	api      *httpapi.Client
	session  session.Store
	validate *validator.Validate
	logger   *slog.Logger
}

func NewCartService(api *httpapi.Client, store session.Store, validate *validator.Validate, logger *slog.Logger) *CartService {
	return &CartService{
		api:      api,
		session:  store,
		validate: validate,
		logger:   logger,
	}
}

func (s *CartService) Token() (string, bool) {
	return s.session.Get(session.SlotCartToken)
}

// ClearToken is called by checkout once the cart has become an order.
func (s *CartService) ClearToken() error {
	return s.session.Clear(session.SlotCartToken)
}

func (s *CartService) Create(ctx context.Context) (*models.Cart, error) {

	var cart models.Cart
	if err := s.api.Do(ctx, "POST", "/api/v1/cart", nil, &cart); err != nil {
		return nil, err
	}

	if cart.Token == "" {
		return nil, errors.DecodeError("Failed to create cart: no token returned")
	}

	if err := s.session.Set(session.SlotCartToken, cart.Token); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (s *CartService) Get(ctx context.Context, token, lang string) (*models.Cart, error) {

	var cart models.Cart

	path := withQuery("/api/v1/cart/"+url.PathEscape(token), langValues(lang))
	if err := s.api.Do(ctx, "GET", path, nil, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

// GetOrCreate fetches the stored cart, silently replacing it when the
// backend no longer knows the token. The caller never sees the expiry.
func (s *CartService) GetOrCreate(ctx context.Context, lang string) (*models.Cart, error) {

	if token, ok := s.Token(); ok {

		cart, err := s.Get(ctx, token, lang)
		if err == nil {
			return cart, nil
		}

		if !errors.IsNotFound(err) {
			return nil, err
		}

		s.logger.Info("stored cart token unknown to backend, starting a new cart")

		if err := s.session.Clear(session.SlotCartToken); err != nil {
			return nil, err
		}
	}

	return s.Create(ctx)
}

func (s *CartService) AddItem(ctx context.Context, lang string, req *models.AddItemRequest) (*models.Cart, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	token, ok := s.Token()
	if !ok {

		cart, err := s.Create(ctx)
		if err != nil {
			return nil, err
		}

		token = cart.Token
	}

	var cart models.Cart

	path := withQuery("/api/v1/cart/"+url.PathEscape(token)+"/items", langValues(lang))
	if err := s.api.Do(ctx, "POST", path, req, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (s *CartService) UpdateItem(ctx context.Context, lang string, itemID int64, req *models.UpdateItemRequest) (*models.Cart, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	token, ok := s.Token()
	if !ok {
		return nil, errors.NotFoundError("No cart found")
	}

	var cart models.Cart

	path := withQuery(itemPath(token, itemID), langValues(lang))
	if err := s.api.Do(ctx, "PUT", path, req, &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

// RemoveItem deletes a line. Unlike add and update it does not return the
// updated cart, so callers must refetch rather than write through.
func (s *CartService) RemoveItem(ctx context.Context, itemID int64) error {

	token, ok := s.Token()
	if !ok {
		return errors.NotFoundError("No cart found")
	}

	return s.api.Do(ctx, "DELETE", itemPath(token, itemID), nil, nil)
}

func itemPath(token string, itemID int64) string {
	return "/api/v1/cart/" + url.PathEscape(token) + "/items/" + strconv.FormatInt(itemID, 10)
}
