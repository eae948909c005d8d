// Package httpapi wraps the storefront backend's REST API. It owns the two
// casing boundaries: every outgoing body is converted to snake_case and every
// incoming body to camelCase, public and admin requests alike.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/guestconcierge/storefront-client/internal/casing"
	"github.com/guestconcierge/storefront-client/internal/errors"
	"github.com/guestconcierge/storefront-client/internal/metrics"
)

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: logger,
	}
}

// Do issues a request and decodes a successful JSON response into out.
// A nil out discards the response body; a nil body sends no body.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	return c.DoWithHeader(ctx, method, path, nil, body, out)
}

func (c *Client) DoWithHeader(ctx context.Context, method, path string, header http.Header, body, out any) error {

	var reqBody io.Reader

	if body != nil {
		data, err := EncodeWire(body)
		if err != nil {
			return err
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.TransportError("Failed to build request").WithError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	for key, values := range header {
		req.Header[key] = values
	}

	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveRequest(method, 0, time.Since(start))

		return errors.TransportError("Request failed").WithError(err)
	}

	defer resp.Body.Close()

	metrics.ObserveRequest(method, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.TransportError("Failed to read response body").WithError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {

		appErr := errors.FromStatus(resp.StatusCode)
		if desc := errorDescription(data); desc != "" {
			appErr = appErr.WithDetail(desc)
		}

		c.logger.Warn("API request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return appErr
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	return DecodeDomain(data, out)
}

// EncodeWire marshals a domain-format value and rewrites its keys to
// snake_case for the wire.
func EncodeWire(body any) ([]byte, error) {

	data, err := json.Marshal(body)
	if err != nil {
		return nil, errors.DecodeError("Failed to encode request body").WithError(err)
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, errors.DecodeError("Failed to encode request body").WithError(err)
	}

	wire, err := json.Marshal(casing.SnakeKeys(tree))
	if err != nil {
		return nil, errors.DecodeError("Failed to encode request body").WithError(err)
	}

	return wire, nil
}

// DecodeDomain parses a wire-format JSON body, rewrites its keys to
// camelCase, and decodes the result into the typed out value. The typed
// decode is the schema assertion: the transform itself is structural and
// validates nothing.
func DecodeDomain(data []byte, out any) error {

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return errors.DecodeError("Failed to parse response body").WithError(err)
	}

	domain, err := json.Marshal(casing.CamelizeKeys(tree))
	if err != nil {
		return errors.DecodeError("Failed to transform response body").WithError(err)
	}

	if err := json.Unmarshal(domain, out); err != nil {
		return errors.DecodeError("Response body does not match the expected shape").WithError(err)
	}

	return nil
}

// errorDescription pulls the backend's optional error_description field out
// of a failure body. Wire format, so no casing transform has run yet.
func errorDescription(data []byte) string {
	var body struct {
		ErrorDescription string `json:"error_description"`
	}

	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}

	return body.ErrorDescription
}
