package transport

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	entrezerrors "github.com/entrezutils/entrez-sdk-go/pkg/errors"
	"github.com/entrezutils/entrez-sdk-go/pkg/eutils"
	"github.com/entrezutils/entrez-sdk-go/pkg/logging"
)

// HTTPTransport implements Transport over plain HTTP POST with a
// form-encoded body. It is safe for concurrent use; every call is an
// independent round trip.
type HTTPTransport struct {
	baseURL   string
	userAgent string
	client    *http.Client
	logger    logging.Logger
}

// NewHTTPTransport creates a transport from config. Zero-valued config
// fields fall back to DefaultConfig.
func NewHTTPTransport(config Config) *HTTPTransport {
	defaults := DefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.Connection.Timeout == 0 {
		config.Connection = defaults.Connection
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{
			Timeout: config.Connection.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   config.Connection.Timeout,
					KeepAlive: config.Connection.KeepAlive,
				}).DialContext,
				MaxIdleConns:    config.Connection.MaxIdleConns,
				MaxConnsPerHost: config.Connection.MaxConnsPerHost,
				IdleConnTimeout: config.Connection.IdleConnTimeout,
			},
		}
	}

	return &HTTPTransport{
		baseURL:   strings.TrimRight(config.BaseURL, "/"),
		userAgent: config.UserAgent,
		client:    client,
		logger:    logging.Nop(),
	}
}

// SetLogger replaces the transport's logger. A nil logger disables
// transport logging.
func (t *HTTPTransport) SetLogger(logger logging.Logger) {
	if logger == nil {
		logger = logging.Nop()
	}
	t.logger = logger
}

// Do posts the params to <base>/e<tool>.fcgi and returns the body.
// The tool name lives in the URL path, never in the body.
func (t *HTTPTransport) Do(ctx context.Context, tool eutils.Tool, params eutils.Params) (io.ReadCloser, error) {
	requestID := uuid.NewString()
	endpoint := t.baseURL + "/" + tool.Endpoint()
	body := params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body))
	if err != nil {
		return nil, entrezerrors.RequestBuildError(tool.String(), err).
			WithContext(&entrezerrors.Context{
				RequestID: requestID,
				Tool:      tool.String(),
				Component: "HTTPTransport",
				Operation: "build_request",
			})
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	start := time.Now()
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, entrezerrors.TransportError(tool.String(), endpoint, err).
			WithContext(&entrezerrors.Context{
				RequestID: requestID,
				Tool:      tool.String(),
				Component: "HTTPTransport",
				Operation: "round_trip",
			})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, entrezerrors.HTTPStatusError(tool.String(), endpoint, resp.StatusCode).
			WithContext(&entrezerrors.Context{
				RequestID: requestID,
				Tool:      tool.String(),
				Component: "HTTPTransport",
				Operation: "round_trip",
			})
	}

	t.logger.Debug("round trip complete",
		logging.String("request_id", requestID),
		logging.String("tool", tool.String()),
		logging.Int("status", resp.StatusCode),
		logging.Duration("elapsed", time.Since(start)),
	)

	return resp.Body, nil
}
