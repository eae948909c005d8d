package service

import (
	"context"

	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
)

type TipService struct {
	api *httpapi.Client
}

func NewTipService(api *httpapi.Client) *TipService {
	return &TipService{api: api}
}

type TipListOptions struct {
	Language string
	TipType  models.TipType
}

func (s *TipService) List(ctx context.Context, opts TipListOptions) ([]models.Tip, error) {

	params := langValues(opts.Language)

	if opts.TipType != "" {
		params.Set("tip_type", string(opts.TipType))
	}

	var resp models.ListResponse[models.Tip]
	if err := s.api.Do(ctx, "GET", withQuery("/api/v1/tips", params), nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}
