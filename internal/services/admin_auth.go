package service

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/guestconcierge/storefront-client/internal/errors"
	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
	"github.com/guestconcierge/storefront-client/internal/session"
)

// AdminAuthService talks to the login and verify endpoints directly on the
// base client: a 401 from login means a wrong password and a failed verify is
// an ordinary gate outcome, so neither may trigger the admin client's
// session-expiry path.
type AdminAuthService struct {
	api      *httpapi.Client
	session  session.Store
	validate *validator.Validate
}

func NewAdminAuthService(api *httpapi.Client, store session.Store, validate *validator.Validate) *AdminAuthService {
	return &AdminAuthService{
		api:      api,
		session:  store,
		validate: validate,
	}
}

func (s *AdminAuthService) Login(ctx context.Context, password string) error {

	req := &models.LoginRequest{Password: password}
	if err := validateStruct(s.validate, req); err != nil {
		return err
	}

	var resp models.LoginResponse
	if err := s.api.Do(ctx, "POST", "/api/v1/admin/login", req, &resp); err != nil {
		return err
	}

	if resp.Token == "" {
		return errors.DecodeError("Login response missing token")
	}

	return s.session.Set(session.SlotAdminToken, resp.Token)
}

// Verify performs the round trip behind every verify-on-mount gate. A
// missing token short-circuits to false without a network call.
func (s *AdminAuthService) Verify(ctx context.Context) bool {

	token, ok := s.session.Get(session.SlotAdminToken)
	if !ok {
		return false
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	err := s.api.DoWithHeader(ctx, "GET", "/api/v1/admin/verify", header, nil, nil)

	return err == nil
}

func (s *AdminAuthService) Logout() error {
	return s.session.Clear(session.SlotAdminToken)
}

func (s *AdminAuthService) HasToken() bool {
	_, ok := s.session.Get(session.SlotAdminToken)

	return ok
}
