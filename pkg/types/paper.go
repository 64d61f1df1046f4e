// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-triage pipeline.
package types

// Author is one entry in a paper's ordered author list. Affiliation comes
// from the feed's own namespace and is usually absent.
type Author struct {
	Name        string `json:"name" yaml:"name"`
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// Link is one alternate/related link attached to a feed entry.
type Link struct {
	Href  string `json:"href,omitempty" yaml:"href,omitempty"`
	Rel   string `json:"rel,omitempty" yaml:"rel,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

// PaperRecord is one normalized entry from the arXiv Atom feed.
//
// Every text field is trimmed of surrounding whitespace when populated; the
// empty string means the element was absent from the entry. A record with
// neither ID nor Abstract cannot participate in ranking.
type PaperRecord struct {
	// ID is the canonical abstract-page URL (e.g.
	// "http://arxiv.org/abs/2504.06802v1"). Required for ranking and for
	// the downstream PDF fetch.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Published and Updated are the entry timestamps as reported by the
	// feed, kept verbatim.
	Published string `json:"published,omitempty" yaml:"published,omitempty"`
	Updated   string `json:"updated,omitempty" yaml:"updated,omitempty"`

	// Abstract is the paper abstract (the Atom summary element).
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Authors lists the paper authors in feed order.
	Authors []Author `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Categories holds the category terms carried by the feed's own
	// scheme; terms from foreign schemes on the same entry are dropped.
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// PrimaryCategory is the arXiv primary category term.
	PrimaryCategory string `json:"primary_category,omitempty" yaml:"primary_category,omitempty"`

	// Links lists the entry's link elements in feed order.
	Links []Link `json:"links,omitempty" yaml:"links,omitempty"`

	// Comment, JournalRef, and DOI are the arXiv-specific extension
	// elements.
	Comment    string `json:"comment,omitempty" yaml:"comment,omitempty"`
	JournalRef string `json:"journal_ref,omitempty" yaml:"journal_ref,omitempty"`
	DOI        string `json:"doi,omitempty" yaml:"doi,omitempty"`
}

// Rankable reports whether the record carries both an ID and an abstract,
// the minimum needed to participate in similarity ranking.
func (p PaperRecord) Rankable() bool {
	return p.ID != "" && p.Abstract != ""
}

// RankedPaper pairs a record with its cosine similarity to the interest
// statement. Ordering is descending by Similarity with ties keeping feed
// order (stable sort).
type RankedPaper struct {
	Record     PaperRecord `json:"record" yaml:"record"`
	Similarity float64     `json:"similarity" yaml:"similarity"`
}

// DateWindow is the submission-date range for one feed query. Both bounds
// are 12-digit YYYYMMDDhhmm strings in the feed's civil time zone. Computed
// once at process start and never mutated.
type DateWindow struct {
	Start string `json:"start" yaml:"start"`
	End   string `json:"end" yaml:"end"`
}

// SummaryResult records the summarization outcome for one selected paper.
// Failed marks a per-paper failure (fetch, extraction, or generation); it
// does not abort the batch.
type SummaryResult struct {
	PaperID string `json:"paper_id" yaml:"paper_id"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
	Failed  bool   `json:"failed,omitempty" yaml:"failed,omitempty"`
}
