// Package service holds the per-resource API call surface. Each service is a
// thin, validated binding from typed requests to backend endpoints; caching
// and invalidation live one layer up, in storefront.
package service

import (
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/guestconcierge/storefront-client/internal/errors"
)

// validateStruct runs the request payload through the schema validator.
// Failures block submission and never reach the network layer.
func validateStruct(validate *validator.Validate, data any) error {
	if err := validate.Struct(data); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			return errors.ValidationError("Invalid request payload").
				WithDetail(validationErrs.Error()).
				WithError(validationErrs)
		}

		return errors.ValidationError("Invalid request payload").WithError(err)
	}

	return nil
}

// withQuery appends non-empty query parameters to a path.
func withQuery(path string, params url.Values) string {
	encoded := params.Encode()
	if encoded == "" {
		return path
	}

	return path + "?" + encoded
}

func langValues(lang string) url.Values {
	params := url.Values{}
	if lang != "" {
		params.Set("language", lang)
	}

	return params
}
