package service

import (
	"context"

	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
)

type TagService struct {
	api *httpapi.Client
}

func NewTagService(api *httpapi.Client) *TagService {
	return &TagService{api: api}
}

type TagListOptions struct {
	Language string
	Type     models.ProductType
	TipType  models.TipType
}

func (s *TagService) List(ctx context.Context, opts TagListOptions) ([]models.Tag, error) {

	params := langValues(opts.Language)

	if opts.Type != "" {
		params.Set("type", string(opts.Type))
	}

	if opts.TipType != "" {
		params.Set("tip_type", string(opts.TipType))
	}

	var resp models.ListResponse[models.Tag]
	if err := s.api.Do(ctx, "GET", withQuery("/api/v1/tags", params), nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}
