package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
)

type ProductService struct {
	api *httpapi.Client
}

func NewProductService(api *httpapi.Client) *ProductService {
	return &ProductService{api: api}
}

type ProductListOptions struct {
	Language string
	Search   string
	Type     models.ProductType
	TagIDs   []int64
}

func (s *ProductService) List(ctx context.Context, opts ProductListOptions) ([]models.Product, error) {

	params := langValues(opts.Language)

	if opts.Search != "" {
		params.Set("search", opts.Search)
	}

	if opts.Type != "" {
		params.Set("type", string(opts.Type))
	}

	if len(opts.TagIDs) > 0 {
		ids := make([]string, len(opts.TagIDs))
		for i, id := range opts.TagIDs {
			ids[i] = strconv.FormatInt(id, 10)
		}

		params.Set("tag_ids", strings.Join(ids, ","))
	}

	var resp models.ListResponse[models.Product]
	if err := s.api.Do(ctx, "GET", withQuery("/api/v1/products", params), nil, &resp); err != nil {
		return nil, err
	}

	return resp.Data, nil
}

func (s *ProductService) Get(ctx context.Context, lang string, id int64) (*models.Product, error) {

	var product models.Product

	path := withQuery("/api/v1/products/"+strconv.FormatInt(id, 10), langValues(lang))
	if err := s.api.Do(ctx, "GET", path, nil, &product); err != nil {
		return nil, err
	}

	return &product, nil
}
