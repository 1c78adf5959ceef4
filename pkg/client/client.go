// Package client implements the Entrez E-utilities call surface: single
// queries, history selection, and offset-window pagination, on top of a
// pkg/transport round-trip primitive.
package client

import (
	"context"
	"time"

	entrezerrors "github.com/entrezutils/entrez-sdk-go/pkg/errors"
	"github.com/entrezutils/entrez-sdk-go/pkg/eutils"
	"github.com/entrezutils/entrez-sdk-go/pkg/logging"
	"github.com/entrezutils/entrez-sdk-go/pkg/observability"
	"github.com/entrezutils/entrez-sdk-go/pkg/transport"
)

// Client drives the E-utilities through a Transport. All methods are
// synchronous; a call chain owns its line readers exclusively and no
// state is shared across calls, so a Client may be used from multiple
// goroutines.
type Client struct {
	transport transport.Transport
	logger    logging.Logger
	metrics   observability.MetricsProvider
	tracing   *observability.TracingProvider
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the metrics provider.
func WithMetrics(metrics observability.MetricsProvider) Option {
	return func(c *Client) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

// WithTracing sets the tracing provider.
func WithTracing(tracing *observability.TracingProvider) Option {
	return func(c *Client) {
		c.tracing = tracing
	}
}

// New creates a Client on the given transport.
func New(t transport.Transport, options ...Option) *Client {
	c := &Client{
		transport: t,
		logger:    logging.Nop(),
		metrics:   observability.NopMetrics(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Query performs one E-utility invocation and returns its response
// lines as a lazy, single-pass reader. Validation is fail-fast: an
// unknown tool or parameter key fails before any network activity.
//
// Exactly one round trip is issued per call. Consuming the returned
// reader twice never re-issues the request; call Query again instead.
func (c *Client) Query(ctx context.Context, tool eutils.Tool, params eutils.Params) (*eutils.LineReader, error) {
	if !tool.IsValid() {
		err := entrezerrors.InvalidTool(tool.String())
		c.metrics.RecordError(ctx, string(entrezerrors.CategoryValidation))
		return nil, err
	}
	if err := params.Validate(); err != nil {
		c.metrics.RecordError(ctx, string(entrezerrors.CategoryValidation))
		return nil, err
	}

	return c.roundTrip(ctx, tool, params)
}

// roundTrip issues the single exchange and wraps the body. Callers have
// already validated tool and params.
func (c *Client) roundTrip(ctx context.Context, tool eutils.Tool, params eutils.Params) (*eutils.LineReader, error) {
	var endSpan func(error)
	if c.tracing != nil {
		spanCtx, span := c.tracing.StartToolSpan(ctx, tool.String())
		ctx = spanCtx
		endSpan = func(err error) {
			if err != nil {
				c.tracing.RecordError(ctx, err)
			}
			span.End()
		}
	}

	c.metrics.RecordInFlight(ctx, 1)
	start := time.Now()
	body, err := c.transport.Do(ctx, tool, params)
	elapsed := time.Since(start)
	c.metrics.RecordInFlight(ctx, -1)

	if err != nil {
		c.metrics.RecordQuery(ctx, tool.String(), "error", elapsed)
		if ee, ok := entrezerrors.AsEntrezError(err); ok {
			c.metrics.RecordError(ctx, string(ee.Category()))
		}
		c.logger.WithError(err).Error("query failed",
			logging.String("tool", tool.String()))
		if endSpan != nil {
			endSpan(err)
		}
		return nil, err
	}

	c.metrics.RecordQuery(ctx, tool.String(), "ok", elapsed)
	c.logger.Debug("query dispatched",
		logging.String("tool", tool.String()),
		logging.Duration("elapsed", elapsed))
	if endSpan != nil {
		endSpan(nil)
	}

	return eutils.NewLineReader(body), nil
}
