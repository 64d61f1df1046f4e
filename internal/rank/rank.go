// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank orders candidate papers by semantic similarity of their
// abstracts to a fixed research-interest statement.
package rank

import (
	"context"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// Embedder turns text into a fixed-length numeric vector. Implementations
// must be deterministic for identical input within a run.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Cosine returns the cosine similarity of two vectors, in [-1, 1]. A zero
// vector on either side yields 0 rather than NaN.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Rank embeds the interest statement once, scores every rankable paper's
// abstract against it, and returns the papers in descending similarity
// order. Ties keep feed order. Papers missing an ID or abstract are
// silently excluded; a paper whose embedding call fails is dropped with a
// warning on w. An empty result is "nothing to summarize", not a failure —
// Rank errors only when the interest statement itself cannot be embedded.
func Rank(ctx context.Context, embedder Embedder, interest string, papers []types.PaperRecord, w io.Writer) ([]types.RankedPaper, error) {
	interestVec, err := embedder.Embed(ctx, interest)
	if err != nil {
		return nil, fmt.Errorf("embedding interest statement: %w", err)
	}

	ranked := make([]types.RankedPaper, 0, len(papers))
	for _, p := range papers {
		if !p.Rankable() {
			continue
		}
		vec, err := embedder.Embed(ctx, p.Abstract)
		if err != nil {
			fmt.Fprintf(w, "warning: embedding failed for %s: %v\n", p.ID, err)
			continue
		}
		ranked = append(ranked, types.RankedPaper{
			Record:     p,
			Similarity: Cosine(interestVec, vec),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity > ranked[j].Similarity
	})
	return ranked, nil
}
