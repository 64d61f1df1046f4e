// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feed

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// arxivScheme is the category scheme owned by the feed. Entries often carry
// additional categories under foreign schemes (ACM, MSC); those are dropped.
const arxivScheme = "http://arxiv.org/schemas/atom"

// Atom feed XML structures. The arXiv extension elements live in the
// http://arxiv.org/schemas/atom namespace.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID              string         `xml:"id"`
	Title           string         `xml:"title"`
	Published       string         `xml:"published"`
	Updated         string         `xml:"updated"`
	Summary         string         `xml:"summary"`
	Authors         []atomAuthor   `xml:"author"`
	Categories      []atomCategory `xml:"category"`
	PrimaryCategory atomCategory   `xml:"http://arxiv.org/schemas/atom primary_category"`
	Links           []atomLink     `xml:"link"`
	Comment         string         `xml:"http://arxiv.org/schemas/atom comment"`
	JournalRef      string         `xml:"http://arxiv.org/schemas/atom journal_ref"`
	DOI             string         `xml:"http://arxiv.org/schemas/atom doi"`
}

type atomAuthor struct {
	Name        string `xml:"name"`
	Affiliation string `xml:"http://arxiv.org/schemas/atom affiliation"`
}

type atomCategory struct {
	Term   string `xml:"term,attr"`
	Scheme string `xml:"scheme,attr"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Rel   string `xml:"rel,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// Parse converts a feed payload into normalized paper records. Absent
// elements become absent fields; every text field is whitespace-trimmed.
// Only a structurally malformed document returns an error — a well-formed
// document with no entries, or entries of unexpected shape, parses to
// whatever records can be read.
func Parse(payload []byte) ([]types.PaperRecord, error) {
	var f atomFeed
	if err := xml.Unmarshal(payload, &f); err != nil {
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	records := make([]types.PaperRecord, 0, len(f.Entries))
	for _, e := range f.Entries {
		r := types.PaperRecord{
			ID:              strings.TrimSpace(e.ID),
			Title:           strings.TrimSpace(e.Title),
			Published:       strings.TrimSpace(e.Published),
			Updated:         strings.TrimSpace(e.Updated),
			Abstract:        strings.TrimSpace(e.Summary),
			PrimaryCategory: strings.TrimSpace(e.PrimaryCategory.Term),
			Comment:         strings.TrimSpace(e.Comment),
			JournalRef:      strings.TrimSpace(e.JournalRef),
			DOI:             strings.TrimSpace(e.DOI),
		}

		for _, a := range e.Authors {
			r.Authors = append(r.Authors, types.Author{
				Name:        strings.TrimSpace(a.Name),
				Affiliation: strings.TrimSpace(a.Affiliation),
			})
		}

		for _, c := range e.Categories {
			if c.Scheme != arxivScheme {
				continue
			}
			r.Categories = append(r.Categories, c.Term)
		}

		for _, l := range e.Links {
			r.Links = append(r.Links, types.Link{
				Href:  l.Href,
				Rel:   l.Rel,
				Title: l.Title,
				Type:  l.Type,
			})
		}

		records = append(records, r)
	}
	return records, nil
}
