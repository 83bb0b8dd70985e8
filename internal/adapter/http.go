package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

type httpSiteAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPSiteAdapter constructs an HTTP implementation of [SiteAdapter]
// for the server at address. A bare host:port is treated as http.
//
// Returns [ErrInvalidAddress] if address is empty or cannot be parsed as a
// valid URL.
func NewHTTPSiteAdapter(address string, timeout time.Duration, logger *logger.Logger) (SiteAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &httpSiteAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	// ":5500" means the local host
	if strings.HasPrefix(raw, ":") {
		raw = "localhost" + raw
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSiteAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	version := strings.TrimSpace(resp.String())
	if version == "" {
		return "", ErrEmptyVersion
	}
	return version, nil
}

func (h *httpSiteAdapter) Ping(ctx context.Context, path string) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	resp, err := h.request(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("ping %s: %w", path, err)
	}

	h.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("ping")

	if resp.StatusCode() >= http.StatusMultipleChoices && resp.StatusCode() < http.StatusBadRequest {
		return nil
	}
	return mapHTTPError(resp)
}

func (h *httpSiteAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, "healthcheck-"+uuid.NewString())
}
