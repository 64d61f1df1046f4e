// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

func testFeedCfg(baseURL string) types.FeedConfig {
	return types.FeedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		BaseURL:    baseURL,
		Category:   "astro-ph.GA",
		MaxResults: 100,
	}
}

func TestQueryURL(t *testing.T) {
	w := types.DateWindow{Start: "202504081400", End: "202504091400"}
	got := QueryURL(DefaultAPIBase, "astro-ph.GA", w, 0, 100)

	wantQuery := "search_query=cat:astro-ph.GA+AND+submittedDate:[202504081400+TO+202504091400]"
	if !strings.Contains(got, wantQuery) {
		t.Errorf("QueryURL = %q, want it to contain %q", got, wantQuery)
	}
	for _, param := range []string{"sortBy=submittedDate", "sortOrder=ascending", "start=0", "max_results=100"} {
		if !strings.Contains(got, param) {
			t.Errorf("QueryURL = %q, missing %q", got, param)
		}
	}
}

func TestFetch(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, sampleFeedXML)
	}))
	defer ts.Close()

	window := types.DateWindow{Start: "202504081400", End: "202504091400"}
	records, err := Fetch(context.Background(), ts.Client(), testFeedCfg(ts.URL), window)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("len(records) = %d, want 2", len(records))
	}
	if !strings.Contains(gotQuery, "astro-ph.GA") {
		t.Errorf("request query = %q, missing category", gotQuery)
	}
}

func TestFetchHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	_, err := Fetch(context.Background(), ts.Client(), testFeedCfg(ts.URL), types.DateWindow{})
	if err == nil {
		t.Fatal("Fetch on HTTP 503 = nil error, want error")
	}
}

func TestFetchMalformedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<feed><entry>")
	}))
	defer ts.Close()

	_, err := Fetch(context.Background(), ts.Client(), testFeedCfg(ts.URL), types.DateWindow{})
	if err == nil {
		t.Fatal("Fetch on malformed body = nil error, want error")
	}
}
