package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/guestconcierge/storefront-client/internal/errors"
	"github.com/guestconcierge/storefront-client/internal/httpapi"
	"github.com/guestconcierge/storefront-client/internal/models"
)

// AdminDocumentService handles image uploads: the backend issues a signed
// URL, the client PUTs the bytes straight to object storage, and the public
// URL goes into the product or tip being edited.
type AdminDocumentService struct {
	api      *httpapi.AdminClient
	uploader *http.Client
}

func NewAdminDocumentService(api *httpapi.AdminClient) *AdminDocumentService {
	return &AdminDocumentService{
		api:      api,
		uploader: &http.Client{Timeout: 2 * time.Minute},
	}
}

type signedURLRequest struct {
	ContentType string `json:"contentType"`
}

func (s *AdminDocumentService) SignedUploadURL(ctx context.Context, contentType string) (*models.SignedUploadURL, error) {

	var signed models.SignedUploadURL

	req := &signedURLRequest{ContentType: contentType}
	if err := s.api.Do(ctx, "POST", "/api/v1/admin/documents/images/signed-url", req, &signed); err != nil {
		return nil, err
	}

	return &signed, nil
}

// UploadImage uploads raw image bytes and returns the public URL. The signed
// upload target is not part of the storefront API, so the request bypasses
// the casing boundary entirely.
func (s *AdminDocumentService) UploadImage(ctx context.Context, contentType string, image io.Reader) (string, error) {

	signed, err := s.SignedUploadURL(ctx, contentType)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(image)
	if err != nil {
		return "", errors.TransportError("Failed to read image").WithError(err)
	}

	req, err := http.NewRequestWithContext(ctx, "PUT", signed.UploadURL, bytes.NewReader(data))
	if err != nil {
		return "", errors.TransportError("Failed to build upload request").WithError(err)
	}

	req.Header.Set("Content-Type", contentType)

	resp, err := s.uploader.Do(req)
	if err != nil {
		return "", errors.TransportError("Upload failed").WithError(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", errors.FromStatus(resp.StatusCode).WithDetail("image upload rejected")
	}

	return signed.PublicURL, nil
}
