package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pawmart/storefront-go/internal/domain"
	"github.com/pawmart/storefront-go/internal/port"
	"github.com/pawmart/storefront-go/pkg/validator"
)

// Client is the JSON-over-HTTP implementation of the commerce gateway.
// It is a thin adapter: no retries, no caching, one request per call.
// Form inputs are validated before any request goes out.
type Client struct {
	baseURL  string
	hc       *http.Client
	validate *validator.Validator
	log      *slog.Logger
}

func New(baseURL string, timeout time.Duration, log *slog.Logger) port.CommerceGateway {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		hc:       &http.Client{Timeout: timeout},
		validate: validator.New(),
		log:      log,
	}
}

type httpError struct {
	Status int
}

func (e *httpError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// do sends one request and decodes the response into out (when non-nil).
// Any non-2xx status is an error, except 404 which maps to ErrNotFound.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &httpError{Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// doAuth decodes the body regardless of status: the backend answers failed
// logins with a well-formed payload whose id is null and message is set.
func (c *Client) doAuth(ctx context.Context, path string, body, out any) error {
	resp, err := c.send(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Debug("gateway request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func userQuery(userID int64) url.Values {
	return url.Values{"userId": []string{fmt.Sprintf("%d", userID)}}
}
