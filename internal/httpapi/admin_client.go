package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/guestconcierge/storefront-client/internal/errors"
	"github.com/guestconcierge/storefront-client/internal/session"
)

// AdminClient attaches the stored admin bearer token to every request. An
// authorization failure clears the token and fires the configured expiry
// callback: once the backend rejects the token, nothing the client holds is
// trustworthy, so the caller is expected to abandon its state and return to
// the locale-scoped login screen.
type AdminClient struct {
	api           *Client
	session       session.Store
	lang          string
	onAuthExpired func(lang string)
	logger        *slog.Logger
}

func NewAdmin(api *Client, store session.Store, lang string, onAuthExpired func(lang string), logger *slog.Logger) *AdminClient {
	return &AdminClient{
		api:           api,
		session:       store,
		lang:          lang,
		onAuthExpired: onAuthExpired,
		logger:        logger,
	}
}

func (c *AdminClient) Do(ctx context.Context, method, path string, body, out any) error {

	header := http.Header{}
	if token, ok := c.session.Get(session.SlotAdminToken); ok {
		header.Set("Authorization", "Bearer "+token)
	}

	err := c.api.DoWithHeader(ctx, method, path, header, body, out)
	if err != nil && errors.IsUnauthorized(err) {

		c.logger.Warn("admin token rejected, clearing session", slog.String("path", path))

		if clearErr := c.session.Clear(session.SlotAdminToken); clearErr != nil {
			c.logger.Error("failed to clear admin token", slog.String("error", clearErr.Error()))
		}

		if c.onAuthExpired != nil {
			c.onAuthExpired(c.lang)
		}
	}

	return err
}

// Base exposes the underlying client for endpoints that must bypass the
// expiry callback, such as login and the verify probe.
func (c *AdminClient) Base() *Client {
	return c.api
}
