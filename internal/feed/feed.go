// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feed queries the arXiv Atom API for a submission-date window and
// parses the response into normalized paper records.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/arxiv-triage/internal/httputil"
	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// DefaultAPIBase is the production arXiv query endpoint.
const DefaultAPIBase = "http://export.arxiv.org/api/query"

// QueryURL builds the feed request URL for one category and date window.
// The search_query value uses arXiv's own `+AND+` join and bracketed range
// syntax, which the API expects verbatim rather than percent-encoded.
func QueryURL(base, category string, w types.DateWindow, start, maxResults int) string {
	searchQuery := fmt.Sprintf("cat:%s+AND+submittedDate:[%s+TO+%s]", category, w.Start, w.End)
	return fmt.Sprintf("%s?search_query=%s&sortBy=submittedDate&sortOrder=ascending&start=%d&max_results=%d",
		base, searchQuery, start, maxResults)
}

// Fetch queries the feed for the given window and returns the parsed
// records. A request failure, a non-200 status, or a malformed response
// body is an error; the caller degrades to "no candidates" at its stage
// boundary.
func Fetch(ctx context.Context, client *http.Client, cfg types.FeedConfig, w types.DateWindow) ([]types.PaperRecord, error) {
	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 100
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultAPIBase
	}

	url := QueryURL(base, cfg.Category, w, 0, maxResults)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned HTTP %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading feed response: %w", err)
	}

	return Parse(payload)
}
