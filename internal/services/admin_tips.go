package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
)

type AdminTipService struct {
	api      *httpapi.AdminClient
	validate *validator.Validate
}

func NewAdminTipService(api *httpapi.AdminClient, validate *validator.Validate) *AdminTipService {
	return &AdminTipService{api: api, validate: validate}
}

func (s *AdminTipService) List(ctx context.Context) ([]models.AdminTip, error) {

	var resp models.ListResponse[models.AdminTip]
	if err := s.api.Do(ctx, "GET", "/api/v1/admin/tips", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (s *AdminTipService) Get(ctx context.Context, tipID int64) (*models.AdminTip, error) {

	var tip models.AdminTip
	if err := s.api.Do(ctx, "GET", tipPath(tipID), nil, &tip); err != nil {
		return nil, err
	}

	return &tip, nil
}

func (s *AdminTipService) Create(ctx context.Context, req *models.TipCreateRequest) (*models.AdminTip, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var tip models.AdminTip
	if err := s.api.Do(ctx, "POST", "/api/v1/admin/tips", req, &tip); err != nil {
		return nil, err
	}

	return &tip, nil
}

func (s *AdminTipService) Update(ctx context.Context, tipID int64, req *models.TipUpdateRequest) (*models.AdminTip, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var tip models.AdminTip
	if err := s.api.Do(ctx, "PUT", tipPath(tipID), req, &tip); err != nil {
		return nil, err
	}

	return &tip, nil
}

func (s *AdminTipService) Delete(ctx context.Context, tipID int64) error {
	return s.api.Do(ctx, "DELETE", tipPath(tipID), nil, nil)
}

func (s *AdminTipService) UpsertTranslation(ctx context.Context, tipID int64, req *models.TipTranslationRequest) (*models.AdminTip, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var tip models.AdminTip
	if err := s.api.Do(ctx, "POST", tipPath(tipID)+"/translations", req, &tip); err != nil {
		return nil, err
	}

	return &tip, nil
}

func (s *AdminTipService) DeleteTranslation(ctx context.Context, tipID int64, language string) (*models.AdminTip, error) {

	var tip models.AdminTip

	path := tipPath(tipID) + "/translations/" + url.PathEscape(language)
	if err := s.api.Do(ctx, "DELETE", path, nil, &tip); err != nil {
		return nil, err
	}

	return &tip, nil
}

func (s *AdminTipService) Reorder(ctx context.Context, items []models.ReorderItem) ([]models.AdminTip, error) {

	req := &models.ReorderRequest{Items: items}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var resp models.ListResponse[models.AdminTip]
	if err := s.api.Do(ctx, "PATCH", "/api/v1/admin/tips/reorder", req, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func tipPath(tipID int64) string {
	return "/api/v1/admin/tips/" + strconv.FormatInt(tipID, 10)
}
