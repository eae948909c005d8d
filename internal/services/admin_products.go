package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
)

// AdminProductService manages the catalog: products, their translation rows,
// their variations, and drag-and-drop ordering. Every mutation returns the
// full admin product so screens can replace their copy wholesale.
type AdminProductService struct {
	api      *httpapi.AdminClient
	validate *validator.Validate
}

func NewAdminProductService(api *httpapi.AdminClient, validate *validator.Validate) *AdminProductService {
	return &AdminProductService{api: api, validate: validate}
}

type AdminProductListOptions struct {
	Search string
	Type   models.ProductType
}

func (s *AdminProductService) List(ctx context.Context, opts AdminProductListOptions) ([]models.AdminProduct, error) {

	params := url.Values{}

	if opts.Search != "" {
		params.Set("search", opts.Search)
	}

	if opts.Type != "" {
		params.Set("type", string(opts.Type))
	}

	var resp models.ListResponse[models.AdminProduct]
	if err := s.api.Do(ctx, "GET", withQuery("/api/v1/admin/products", params), nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (s *AdminProductService) Create(ctx context.Context, req *models.ProductCreateRequest) (*models.AdminProduct, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var product models.AdminProduct
	if err := s.api.Do(ctx, "POST", "/api/v1/admin/products", req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *AdminProductService) Update(ctx context.Context, productID int64, req *models.ProductUpdateRequest) (*models.AdminProduct, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var product models.AdminProduct
	if err := s.api.Do(ctx, "PUT", productPath(productID), req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *AdminProductService) Delete(ctx context.Context, productID int64) error {
	return s.api.Do(ctx, "DELETE", productPath(productID), nil, nil)
}

// Clone duplicates a product with its translations and variations.
func (s *AdminProductService) Clone(ctx context.Context, productID int64) (*models.AdminProduct, error) {

	var product models.AdminProduct
	if err := s.api.Do(ctx, "POST", productPath(productID)+"/clone", nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *AdminProductService) UpsertTranslation(ctx context.Context, productID int64, req *models.TranslationRequest) (*models.AdminProduct, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var product models.AdminProduct
	if err := s.api.Do(ctx, "POST", productPath(productID)+"/translations", req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *AdminProductService) DeleteTranslation(ctx context.Context, productID int64, language string) (*models.AdminProduct, error) {

	var product models.AdminProduct

	path := productPath(productID) + "/translations/" + url.PathEscape(language)
	if err := s.api.Do(ctx, "DELETE", path, nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *AdminProductService) CreateVariation(ctx context.Context, productID int64, req *models.VariationCreateRequest) (*models.AdminProduct, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var product models.AdminProduct
	if err := s.api.Do(ctx, "POST", productPath(productID)+"/variations", req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *AdminProductService) UpdateVariation(ctx context.Context, productID, variationID int64, req *models.VariationUpdateRequest) (*models.AdminProduct, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var product models.AdminProduct
	if err := s.api.Do(ctx, "PUT", variationPath(productID, variationID), req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *AdminProductService) DeleteVariation(ctx context.Context, productID, variationID int64) (*models.AdminProduct, error) {

	var product models.AdminProduct
	if err := s.api.Do(ctx, "DELETE", variationPath(productID, variationID), nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *AdminProductService) UpsertVariationTranslation(ctx context.Context, productID, variationID int64, req *models.VariationTranslationRequest) (*models.AdminProduct, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var product models.AdminProduct

	path := variationPath(productID, variationID) + "/translations"
	if err := s.api.Do(ctx, "POST", path, req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *AdminProductService) DeleteVariationTranslation(ctx context.Context, productID, variationID int64, language string) (*models.AdminProduct, error) {

	var product models.AdminProduct

	path := variationPath(productID, variationID) + "/translations/" + url.PathEscape(language)
	if err := s.api.Do(ctx, "DELETE", path, nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (s *AdminProductService) Reorder(ctx context.Context, items []models.ReorderItem) ([]models.AdminProduct, error) {

	req := &models.ReorderRequest{Items: items}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var resp models.ListResponse[models.AdminProduct]
	if err := s.api.Do(ctx, "PATCH", "/api/v1/admin/products/reorder", req, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (s *AdminProductService) ReorderVariations(ctx context.Context, productID int64, items []models.ReorderItem) (*models.AdminProduct, error) {

	req := &models.ReorderRequest{Items: items}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var product models.AdminProduct
	if err := s.api.Do(ctx, "PATCH", productPath(productID)+"/variations/reorder", req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func productPath(productID int64) string {
	return "/api/v1/admin/products/" + strconv.FormatInt(productID, 10)
}

func variationPath(productID, variationID int64) string {
	return productPath(productID) + "/variations/" + strconv.FormatInt(variationID, 10)
}
