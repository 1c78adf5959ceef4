package client

import (
	"context"
	"strconv"

	entrezerrors "github.com/entrezutils/entrez-sdk-go/pkg/errors"
	"github.com/entrezutils/entrez-sdk-go/pkg/eutils"
	"github.com/entrezutils/entrez-sdk-go/pkg/logging"
	"github.com/entrezutils/entrez-sdk-go/pkg/pagination"
)

// PaginateOption configures a pagination run.
type PaginateOption func(*paginateConfig)

type paginateConfig struct {
	pageSize int
}

// WithPageSize overrides the per-window element count. Sizes outside
// the valid range fail the Paginate call.
func WithPageSize(size int) PaginateOption {
	return func(pc *paginateConfig) {
		pc.pageSize = size
	}
}

// Paginate applies tool to the stored result set behind hist, fetching
// it in retstart/retmax windows and returning the concatenated response
// lines as one lazy stream. Windows are fetched in ascending offset
// order, each only when the stream reaches it; at most one page is in
// flight or buffered at a time.
//
// hist must carry both WebEnv and QueryKey. A Count that is present but
// not a non-negative integer is rejected before any network activity.
func (c *Client) Paginate(ctx context.Context, tool eutils.Tool, db string, hist eutils.History, params eutils.Params, opts ...PaginateOption) (*PageReader, error) {
	cfg := paginateConfig{pageSize: pagination.DefaultPageSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !hist.HasSession() {
		err := entrezerrors.MissingHistory(hist.WebEnv, hist.QueryKey)
		c.metrics.RecordError(ctx, string(entrezerrors.CategoryHistory))
		return nil, err
	}
	count, ok := hist.CountValue()
	if !ok {
		if hist.Count != "" {
			err := entrezerrors.InvalidCount(hist.Count)
			c.metrics.RecordError(ctx, string(entrezerrors.CategoryHistory))
			return nil, err
		}
		count = 1
	}
	plan, err := pagination.NewPlan(count, cfg.pageSize)
	if err != nil {
		pageErr := entrezerrors.InvalidPageSize(cfg.pageSize, err)
		c.metrics.RecordError(ctx, string(entrezerrors.CategoryValidation))
		return nil, pageErr
	}
	c.logger.Debug("pagination planned",
		logging.String("tool", tool.String()),
		logging.String("db", db),
		logging.Int("count", count),
		logging.Int("pages", plan.Pages()))

	return &PageReader{
		client: c,
		ctx:    ctx,
		tool:   tool,
		db:     db,
		hist:   hist,
		extra:  params.Clone(),
		plan:   plan,
	}, nil
}

// PageReader streams the lines of a paginated run. It is single-pass
// and not safe for concurrent use. Close releases the page currently
// held open; it is safe to call at any point and more than once.
type PageReader struct {
	client *Client
	ctx    context.Context
	tool   eutils.Tool
	db     string
	hist   eutils.History
	extra  eutils.Params
	plan   pagination.Plan

	page   int
	cur    *eutils.LineReader
	text   string
	err    error
	closed bool
}

// Next advances to the next line, fetching the next window when the
// current one is exhausted. It returns false at end of stream or on the
// first error; check Err afterwards.
func (r *PageReader) Next() bool {
	if r.closed || r.err != nil {
		return false
	}
	for {
		if r.cur != nil {
			if r.cur.Next() {
				r.text = r.cur.Text()
				return true
			}
			err := r.cur.Err()
			r.cur = nil
			if err != nil {
				r.err = err
				return false
			}
		}
		if r.page >= r.plan.Pages() {
			r.closed = true
			return false
		}
		window := r.plan.Window(r.page)
		r.page++
		lines, err := r.client.Query(r.ctx, r.tool, r.windowParams(window))
		if err != nil {
			r.err = err
			return false
		}
		r.client.metrics.RecordPage(r.ctx, r.tool.String())
		r.cur = lines
	}
}

// windowParams merges the caller's parameters with the session handle
// and the window bounds. Window fields win over caller-supplied ones.
func (r *PageReader) windowParams(w pagination.Window) eutils.Params {
	params := r.extra.Clone()
	if r.db != "" {
		params[eutils.ParamDB] = r.db
	}
	params[eutils.ParamWebEnv] = r.hist.WebEnv
	params[eutils.ParamQueryKey] = r.hist.QueryKey
	params[eutils.ParamRetStart] = strconv.Itoa(w.Start)
	params[eutils.ParamRetMax] = strconv.Itoa(w.Size)
	return params
}

// Text returns the line most recently produced by Next.
func (r *PageReader) Text() string { return r.text }

// Err returns the first error the stream hit, if any.
func (r *PageReader) Err() error { return r.err }

// Close stops the stream and releases the open page, if any.
func (r *PageReader) Close() error {
	r.closed = true
	if r.cur != nil {
		err := r.cur.Close()
		r.cur = nil
		return err
	}
	return nil
}

// Collect drains the remaining stream into a slice and closes it.
func (r *PageReader) Collect() ([]string, error) {
	defer r.Close()
	var lines []string
	for r.Next() {
		lines = append(lines, r.Text())
	}
	return lines, r.Err()
}

// SearchApply runs a search against db for term, then applies tool to
// the full stored result set, returning the stitched line stream. It is
// the search-then-apply composition in one call: Select followed by
// Paginate over the resulting handle. An empty applyDB reuses the
// search database.
func (c *Client) SearchApply(ctx context.Context, db, term string, tool eutils.Tool, applyDB string, params eutils.Params, opts ...PaginateOption) (*PageReader, error) {
	hist, err := c.Select(ctx, eutils.ToolSearch, db, eutils.Params{
		eutils.ParamTerm: term,
	})
	if err != nil {
		return nil, err
	}
	if applyDB == "" {
		applyDB = db
	}
	return c.Paginate(ctx, tool, applyDB, hist, params, opts...)
}
