// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package review assembles the top-K ranked papers into a single review
// request for the generation model.
package review

import (
	"fmt"
	"strings"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// DefaultTopK is the number of ranked papers carried into review.
const DefaultTopK = 5

// Build serializes the first topK ranked papers into one instruction block
// asking the model to pick and justify the top 3 among them, and returns
// the ordered IDs of all topK papers.
//
// The model's top-3 choice is advisory prose shown to the human reader;
// the returned IDs drive the fetch/summarize loop and deliberately cover
// the full topK set, not the model's pick.
func Build(interest string, ranked []types.RankedPaper, topK int) (string, []string) {
	if topK <= 0 {
		topK = DefaultTopK
	}
	if len(ranked) < topK {
		topK = len(ranked)
	}
	top := ranked[:topK]

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your research interests: %q, please review the following arXiv paper metadata "+
		"and identify the most relevant ones. The papers are pre-ranked based on the semantic similarity "+
		"of their abstracts to your interests.\n\nArXiv Paper Metadata (Top Relevant):\n", interest)

	ids := make([]string, 0, len(top))
	for i, item := range top {
		p := item.Record
		ids = append(ids, p.ID)

		fmt.Fprintf(&b, "\n--- Paper %d (Similarity: %.4f) ---\n", i+1, item.Similarity)
		fmt.Fprintf(&b, "Title: %s\n", p.Title)
		fmt.Fprintf(&b, "ArXiv ID: %s\n", p.ID)
		fmt.Fprintf(&b, "Authors: %s\n", joinAuthors(p.Authors))
		fmt.Fprintf(&b, "Publish Date: %s\n", p.Published)
		fmt.Fprintf(&b, "Abstract: %s\n", p.Abstract)
		fmt.Fprintf(&b, "Categories: %s\n", strings.Join(p.Categories, ", "))
	}

	fmt.Fprintf(&b, "\nBased on the above metadata (ranked by abstract similarity), please identify the top 3 "+
		"papers that would be of most interest, considering both the similarity score and the content of the "+
		"abstract. For each of these top 3 papers, list the **Title**, **Similarity**, **ArXiv ID**, "+
		"**Author List**, **ArXiv Publish Date**, **Abstract**, and a brief **Reasoning** explaining why it "+
		"aligns with the research interests: %q. Format your response in Markdown, with each piece of "+
		"metadata on a new line.\n", interest)

	return b.String(), ids
}

func joinAuthors(authors []types.Author) string {
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, a.Name)
	}
	return strings.Join(names, ", ")
}
