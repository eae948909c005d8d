package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
)

// AdminTagService manages tags, their translations, ordering, and the
// many-to-many joins against products and tips.
type AdminTagService struct {
	api      *httpapi.AdminClient
	validate *validator.Validate
}

func NewAdminTagService(api *httpapi.AdminClient, validate *validator.Validate) *AdminTagService {
	return &AdminTagService{api: api, validate: validate}
}

func (s *AdminTagService) List(ctx context.Context) ([]models.AdminTag, error) {

	var resp models.ListResponse[models.AdminTag]
	if err := s.api.Do(ctx, "GET", "/api/v1/admin/tags", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (s *AdminTagService) Get(ctx context.Context, tagID int64) (*models.AdminTag, error) {

	var tag models.AdminTag
	if err := s.api.Do(ctx, "GET", tagPath(tagID), nil, &tag); err != nil {
		return nil, err
	}

	return &tag, nil
}

func (s *AdminTagService) Create(ctx context.Context, req *models.TagCreateRequest) (*models.AdminTag, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var tag models.AdminTag
	if err := s.api.Do(ctx, "POST", "/api/v1/admin/tags", req, &tag); err != nil {
		return nil, err
	}

	return &tag, nil
}

func (s *AdminTagService) Update(ctx context.Context, tagID int64, req *models.TagUpdateRequest) (*models.AdminTag, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var tag models.AdminTag
	if err := s.api.Do(ctx, "PUT", tagPath(tagID), req, &tag); err != nil {
		return nil, err
	}

	return &tag, nil
}

func (s *AdminTagService) Delete(ctx context.Context, tagID int64) error {
	return s.api.Do(ctx, "DELETE", tagPath(tagID), nil, nil)
}

func (s *AdminTagService) UpsertTranslation(ctx context.Context, tagID int64, req *models.TagTranslationRequest) (*models.AdminTag, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var tag models.AdminTag
	if err := s.api.Do(ctx, "POST", tagPath(tagID)+"/translations", req, &tag); err != nil {
		return nil, err
	}

	return &tag, nil
}

func (s *AdminTagService) DeleteTranslation(ctx context.Context, tagID int64, language string) (*models.AdminTag, error) {

	var tag models.AdminTag

	path := tagPath(tagID) + "/translations/" + url.PathEscape(language)
	if err := s.api.Do(ctx, "DELETE", path, nil, &tag); err != nil {
		return nil, err
	}

	return &tag, nil
}

func (s *AdminTagService) Reorder(ctx context.Context, items []models.ReorderItem) ([]models.AdminTag, error) {

	req := &models.ReorderRequest{Items: items}
	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	var resp models.ListResponse[models.AdminTag]
	if err := s.api.Do(ctx, "PATCH", "/api/v1/admin/tags/reorder", req, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (s *AdminTagService) ProductTags(ctx context.Context, productID int64) ([]models.AdminTag, error) {
	return s.entityTags(ctx, "GET", entityTagPath("products", productID), nil)
}

func (s *AdminTagService) AddProductTag(ctx context.Context, productID int64, req *models.EntityTagAddRequest) ([]models.AdminTag, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	return s.entityTags(ctx, "POST", entityTagPath("products", productID), req)
}

func (s *AdminTagService) RemoveProductTag(ctx context.Context, productID, tagID int64) ([]models.AdminTag, error) {
	return s.entityTags(ctx, "DELETE", entityTagPath("products", productID)+"/tags/"+strconv.FormatInt(tagID, 10), nil)
}

func (s *AdminTagService) TipTags(ctx context.Context, tipID int64) ([]models.AdminTag, error) {
	return s.entityTags(ctx, "GET", entityTagPath("tips", tipID), nil)
}

func (s *AdminTagService) AddTipTag(ctx context.Context, tipID int64, req *models.EntityTagAddRequest) ([]models.AdminTag, error) {

	if err := validateStruct(s.validate, req); err != nil {
		return nil, err
	}

	return s.entityTags(ctx, "POST", entityTagPath("tips", tipID), req)
}

func (s *AdminTagService) RemoveTipTag(ctx context.Context, tipID, tagID int64) ([]models.AdminTag, error) {
	return s.entityTags(ctx, "DELETE", entityTagPath("tips", tipID)+"/tags/"+strconv.FormatInt(tagID, 10), nil)
}

func (s *AdminTagService) entityTags(ctx context.Context, method, path string, body any) ([]models.AdminTag, error) {

	var resp models.ListResponse[models.AdminTag]
	if err := s.api.Do(ctx, method, path, body, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func tagPath(tagID int64) string {
	return "/api/v1/admin/tags/" + strconv.FormatInt(tagID, 10)
}

func entityTagPath(entity string, id int64) string {
	return "/api/v1/admin/tags/" + entity + "/" + strconv.FormatInt(id, 10)
}
