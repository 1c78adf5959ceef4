package client

import (
	"context"
	"time"

	entrezerrors "github.com/entrezutils/entrez-sdk-go/pkg/errors"
	"github.com/entrezutils/entrez-sdk-go/pkg/eutils"
	"github.com/entrezutils/entrez-sdk-go/pkg/logging"
)

// Select runs a history-establishing invocation against db and extracts
// the server session markers from the response. The call always carries
// usehistory=y so the server stores the result set; WebEnv, QueryKey and
// Count are taken from the first line on which each tag appears. Tags
// the server never reported stay zero-valued; Paginate decides what an
// absent Count means.
//
// The response is consumed in full and closed before Select returns.
func (c *Client) Select(ctx context.Context, tool eutils.Tool, db string, params eutils.Params) (eutils.History, error) {
	merged := params.Clone()
	merged[eutils.ParamUseHistory] = "y"
	if db != "" {
		merged[eutils.ParamDB] = db
	}

	start := time.Now()
	lines, err := c.Query(ctx, tool, merged)
	if err != nil {
		c.metrics.RecordSelect(ctx, db, "error", time.Since(start))
		return eutils.History{}, err
	}
	defer lines.Close()

	scanner := eutils.NewHistoryScanner()
	for lines.Next() {
		scanner.Scan(lines.Text())
	}
	if err := lines.Err(); err != nil {
		c.metrics.RecordSelect(ctx, db, "error", time.Since(start))
		wrapped := entrezerrors.Wrap(err, entrezerrors.CodeDecodingError,
			"reading selection response",
			entrezerrors.CategoryDecoding, entrezerrors.SeverityError).
			WithContext(&entrezerrors.Context{
				Tool:      tool.String(),
				Database:  db,
				Component: "Client",
				Operation: "select",
				Timestamp: time.Now(),
			})
		return eutils.History{}, wrapped
	}

	hist := scanner.History()
	c.metrics.RecordSelect(ctx, db, "ok", time.Since(start))
	c.logger.Debug("history selected",
		logging.String("tool", tool.String()),
		logging.String("db", db),
		logging.String("count", hist.Count),
		logging.Bool("session", hist.HasSession()))
	return hist, nil
}
