// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/arxiv-triage/internal/summarize"
	"github.com/pdiddy/arxiv-triage/pkg/types"
)

const pipelineFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <id>http://arxiv.org/abs/2504.06802v1</id>
    <title>Gas Flows in Dwarf Galaxies</title>
    <published>2025-04-09T12:00:00Z</published>
    <updated>2025-04-09T12:00:00Z</updated>
    <summary>We study cold gas accretion onto dwarf galaxies.</summary>
    <author><name>A. Author</name></author>
    <category term="astro-ph.GA" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2504.06803v1</id>
    <title>Withdrawn Placeholder</title>
  </entry>
</feed>`

type stubEmbedder struct {
	calls int
}

func (e *stubEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	e.calls++
	return []float64{1, 0}, nil
}

type stubGenerator struct {
	prompts []string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string, session *summarize.Session) (string, *summarize.Session, error) {
	g.prompts = append(g.prompts, prompt)
	next := session
	if next == nil {
		next = &summarize.Session{}
	}
	if len(g.prompts) == 1 {
		return "the first paper looks most relevant", next, nil
	}
	return "**Title:** Gas Flows in Dwarf Galaxies", next, nil
}

type stubExtractor struct {
	err error
}

func (e *stubExtractor) Extract(_ string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return "full paper text", nil
}

// newPipelineServer serves the feed on /query and a fake PDF for any /pdf/
// path, so a whole run stays local.
func newPipelineServer(t *testing.T, feedStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/query", func(w http.ResponseWriter, _ *http.Request) {
		if feedStatus != http.StatusOK {
			w.WriteHeader(feedStatus)
			return
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		fmt.Fprint(w, pipelineFeedXML)
	})
	mux.HandleFunc("/pdf/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "%PDF-1.4 stub")
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func testPipelineCfg(ts *httptest.Server, dir string) types.PipelineConfig {
	return types.PipelineConfig{
		Feed: types.FeedConfig{
			BaseURL:    ts.URL + "/query",
			Category:   "astro-ph.GA",
			MaxResults: 100,
			CutoffHour: 20,
		},
		Rank: types.RankConfig{Interest: "galaxy evolution", TopK: 3},
		Fetch: types.FetchConfig{
			PDFBase:     ts.URL + "/pdf/",
			MaxRetries:  3,
			Wait:        time.Millisecond,
			DownloadDir: dir,
		},
	}
}

func testDeps(ts *httptest.Server, gen summarize.Generator, ext *stubExtractor) Deps {
	return Deps{
		Clock:     func() time.Time { return time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC) },
		Zone:      time.UTC,
		Client:    ts.Client(),
		Embedder:  &stubEmbedder{},
		Generator: gen,
		Extractor: ext,
	}
}

func TestRun(t *testing.T) {
	ts := newPipelineServer(t, http.StatusOK)
	dir := t.TempDir()
	gen := &stubGenerator{}
	deps := testDeps(ts, gen, &stubExtractor{})

	var out, log bytes.Buffer
	if err := Run(context.Background(), deps, testPipelineCfg(ts, dir), &out, &log); err != nil {
		t.Fatalf("Run: %v\nlog:\n%s", err, log.String())
	}

	// The review reply and exactly one summary made the report; the entry
	// without an abstract was never a candidate.
	if !strings.Contains(out.String(), "the first paper looks most relevant") {
		t.Errorf("output missing review text:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "**Paper 1:** **Title:** Gas Flows in Dwarf Galaxies") {
		t.Errorf("output missing summary:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Paper 2") {
		t.Errorf("unexpected second paper in report:\n%s", out.String())
	}

	// One review prompt plus one summarization prompt.
	if len(gen.prompts) != 2 {
		t.Fatalf("generator calls = %d, want 2", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[1], "full paper text") {
		t.Errorf("summary prompt missing extracted text:\n%s", gen.prompts[1])
	}

	// The downloaded artifact was cleaned up.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("download dir not empty after run: %v", entries)
	}
}

func TestRunFeedFailureDegrades(t *testing.T) {
	ts := newPipelineServer(t, http.StatusInternalServerError)
	gen := &stubGenerator{}
	deps := testDeps(ts, gen, &stubExtractor{})

	var out, log bytes.Buffer
	if err := Run(context.Background(), deps, testPipelineCfg(ts, t.TempDir()), &out, &log); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "No papers were selected") {
		t.Errorf("output = %q, want empty-report message", out.String())
	}
	if len(gen.prompts) != 0 {
		t.Errorf("generator called %d times on a failed feed", len(gen.prompts))
	}
	if !strings.Contains(log.String(), "feed query failed") {
		t.Errorf("log missing degradation notice:\n%s", log.String())
	}
}

func TestRunExtractionFailureMarksPaper(t *testing.T) {
	ts := newPipelineServer(t, http.StatusOK)
	gen := &stubGenerator{}
	deps := testDeps(ts, gen, &stubExtractor{err: errors.New("garbled stream")})

	var out, log bytes.Buffer
	if err := Run(context.Background(), deps, testPipelineCfg(ts, t.TempDir()), &out, &log); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "summary unavailable") {
		t.Errorf("output missing failure marker:\n%s", out.String())
	}
	// Only the review call happened; no summarization prompt was sent.
	if len(gen.prompts) != 1 {
		t.Errorf("generator calls = %d, want 1", len(gen.prompts))
	}
}

func TestRunIncompleteDeps(t *testing.T) {
	var out, log bytes.Buffer
	err := Run(context.Background(), Deps{}, types.PipelineConfig{}, &out, &log)
	if err == nil {
		t.Fatal("Run with empty deps = nil error, want error")
	}
}
