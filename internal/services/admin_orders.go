package service

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
)

type AdminOrderService struct {
	api      *httpapi.AdminClient
	validate *validator.Validate
}

func NewAdminOrderService(api *httpapi.AdminClient, validate *validator.Validate) *AdminOrderService {
	return &AdminOrderService{api: api, validate: validate}
}

func (s *AdminOrderService) List(ctx context.Context) ([]models.Order, error) {

	var resp models.ListResponse[models.Order]
	if err := s.api.Do(ctx, "GET", "/api/v1/admin/orders", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (s *AdminOrderService) UpdateStatus(ctx context.Context, orderID string, status models.OrderStatus) (*models.Order, error) {

	req := &models.OrderStatusUpdate{Status: status}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var order models.Order

	path := "/api/v1/admin/orders/" + url.PathEscape(orderID) + "/status"
	if err := s.api.Do(ctx, "PATCH", path, req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (s *AdminOrderService) UpdateLabel(ctx context.Context, orderID, label string) (*models.Order, error) {

	req := &models.OrderLabelUpdate{Label: label}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var order models.Order
	if err := s.api.Do(ctx, "PATCH", "/api/v1/admin/orders/"+url.PathEscape(orderID), req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}
