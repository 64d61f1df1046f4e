// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch resolves paper identifiers to PDF URLs and downloads the
// documents with bounded retry and rate-limit pacing.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// DefaultPDFBase is the production arXiv PDF-serving endpoint.
const DefaultPDFBase = "http://export.arxiv.org/pdf/"

// sleep is swapped out by tests to observe pacing without real waits.
var sleep = time.Sleep

// ResolvePDFURL rewrites an abstract-page identifier of the form
// ".../abs/<ID>" to the PDF-serving URL "<base><ID>.pdf". The version
// suffix is kept. An empty base selects DefaultPDFBase. Returns "" when
// the identifier does not match the abstract-page shape.
func ResolvePDFURL(paperID, base string) string {
	const marker = "arxiv.org/abs/"
	if base == "" {
		base = DefaultPDFBase
	}
	idx := strings.Index(paperID, marker)
	if idx < 0 {
		return ""
	}
	id := strings.TrimSpace(paperID[idx+len(marker):])
	if id == "" {
		return ""
	}
	return base + id + ".pdf"
}

// Download fetches rawURL to cfg.DownloadDir, making at most
// cfg.MaxRetries network attempts. The returned bool reports success; the
// function never raises past its boundary — every failure mode degrades to
// absent.
//
// A transient failure (request error or bad status) on a non-final attempt
// sleeps cfg.Wait twice before the next attempt: once as retry backoff and
// once as rate-limit courtesy toward the host. The double wait is the
// established pacing policy for this endpoint; do not fold the two sleeps
// together. A transient failure on the final attempt still paces once when
// earlier retries happened. Success returns immediately with no sleep, and
// any non-network failure (e.g. the local file cannot be written) aborts
// without retrying.
func Download(client *http.Client, rawURL string, cfg types.FetchConfig, w io.Writer) (string, bool) {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	wait := cfg.Wait
	if wait <= 0 {
		wait = 3 * time.Second
	}

	destPath, err := localPath(rawURL, cfg.DownloadDir)
	if err != nil {
		fmt.Fprintf(w, "download failed: %v\n", err)
		return "", false
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		fmt.Fprintf(w, "attempting to download: %s (attempt %d/%d)\n", rawURL, attempt+1, maxRetries)

		err := fetchFile(client, rawURL, destPath, cfg.UserAgent)
		if err == nil {
			fmt.Fprintf(w, "downloaded: %s\n", destPath)
			return destPath, true
		}

		if !isTransient(err) {
			fmt.Fprintf(w, "download failed: %v\n", err)
			return "", false
		}

		fmt.Fprintf(w, "download failed (attempt %d/%d): %v\n", attempt+1, maxRetries, err)

		if attempt < maxRetries-1 {
			sleep(wait) // retry backoff
			sleep(wait) // rate-limit pacing
		} else if attempt > 0 {
			sleep(wait) // pacing after the last attempt when retries occurred
		}
	}

	fmt.Fprintf(w, "max retries reached, download failed: %s\n", rawURL)
	return "", false
}

// transientError marks a failure worth retrying: the request errored or
// the server answered with a non-200 status.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func isTransient(err error) bool {
	_, ok := err.(*transientError)
	return ok
}

// localPath derives the destination file path from the URL's base name.
func localPath(rawURL, dir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", rawURL, err)
	}
	base := path.Base(u.Path)
	if base == "" || base == "." || base == "/" {
		return "", fmt.Errorf("URL %q has no file name", rawURL)
	}
	return filepath.Join(dir, base), nil
}

// fetchFile performs one download attempt, writing to a temporary file and
// renaming on success so a failed attempt leaves no partial artifact.
func fetchFile(client *http.Client, rawURL, destPath, userAgent string) error {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/pdf")

	resp, err := client.Do(req)
	if err != nil {
		return &transientError{fmt.Errorf("HTTP request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return &transientError{fmt.Errorf("HTTP %d from %s", resp.StatusCode, rawURL)}
	}

	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating download directory: %w", err)
		}
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return &transientError{fmt.Errorf("writing download: %w", copyErr)}
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
