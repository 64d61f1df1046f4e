// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders the final Markdown report written to stdout.
package report

import (
	"fmt"
	"io"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

const greeting = "Good morning! Here's a quick look at some papers you might find relevant"

// Write renders the per-paper summaries as a Markdown report. A failed
// paper gets a failure line in place of its summary; an empty result set
// gets a short explanatory message instead of an empty report.
func Write(w io.Writer, results []types.SummaryResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No papers were selected for summarization today.")
		return
	}

	fmt.Fprintf(w, "%s\n\n", greeting)

	for i, r := range results {
		if r.Failed {
			fmt.Fprintf(w, "Paper %d (%s): summary unavailable\n\n", i+1, r.PaperID)
			continue
		}
		fmt.Fprintf(w, "**Paper %d:** %s\n\n", i+1, r.Text)
	}
}
