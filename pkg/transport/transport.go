// Package transport provides the network primitive the Entrez SDK is
// built on: one POST-style round trip to an E-utilities endpoint,
// returning the raw response body.
//
// The transport performs no retries, validation, or line decoding —
// those belong to the calling layers.
package transport

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/entrezutils/entrez-sdk-go/pkg/eutils"
)

// DefaultBaseURL is the public E-utilities endpoint.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// Transport performs exactly one request/response exchange per call.
// The returned body is the caller's to consume and close; a transport
// error means no body was obtained.
type Transport interface {
	// Do posts the form-encoded params to the endpoint of the given
	// tool and returns the raw response body.
	Do(ctx context.Context, tool eutils.Tool, params eutils.Params) (io.ReadCloser, error)
}

// Config configures an HTTP transport.
type Config struct {
	// BaseURL is the endpoint prefix; tool paths are appended as
	// e<tool>.fcgi. Defaults to DefaultBaseURL.
	BaseURL string

	// UserAgent is sent with every request when non-empty.
	UserAgent string

	// Connection tunes the underlying HTTP client.
	Connection ConnectionConfig

	// HTTPClient overrides the constructed client entirely. Used by
	// tests; when set, Connection is ignored.
	HTTPClient *http.Client
}

// ConnectionConfig holds HTTP connection settings.
type ConnectionConfig struct {
	Timeout         time.Duration
	KeepAlive       time.Duration
	MaxIdleConns    int
	MaxConnsPerHost int
	IdleConnTimeout time.Duration
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Connection: ConnectionConfig{
			Timeout:         30 * time.Second,
			KeepAlive:       30 * time.Second,
			MaxIdleConns:    10,
			MaxConnsPerHost: 2,
			IdleConnTimeout: 90 * time.Second,
		},
	}
}
