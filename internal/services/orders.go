package service

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
)

type OrderService struct {
	api      *httpapi.Client
	validate *validator.Validate
}

func NewOrderService(api *httpapi.Client, validate *validator.Validate) *OrderService {
	return &OrderService{api: api, validate: validate}
}

// Checkout turns a cart into an order. Clearing the cart token and sweeping
// cached cart entries is the caller's responsibility.
func (s *OrderService) Checkout(ctx context.Context, lang string, req *models.CheckoutRequest) (*models.Order, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var order models.Order

	path := withQuery("/api/v1/orders", langValues(lang))
	if err := s.api.Do(ctx, "POST", path, req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (s *OrderService) Get(ctx context.Context, lang, orderID string) (*models.Order, error) {

	var order models.Order

	path := withQuery("/api/v1/orders/"+url.PathEscape(orderID), langValues(lang))
	if err := s.api.Do(ctx, "GET", path, nil, &order); err != nil {
		return nil, err
	}

	return &order, nil
}
