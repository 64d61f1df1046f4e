// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

func ranked(id string, sim float64) types.RankedPaper {
	return types.RankedPaper{
		Record: types.PaperRecord{
			ID:         id,
			Title:      "Title for " + id,
			Published:  "2025-04-09T13:05:26Z",
			Abstract:   "Abstract for " + id,
			Authors:    []types.Author{{Name: "Alice Smith"}, {Name: "Bob Jones"}},
			Categories: []string{"astro-ph.GA", "astro-ph.SR"},
		},
		Similarity: sim,
	}
}

func TestBuildSelectsTopK(t *testing.T) {
	var papers []types.RankedPaper
	for i := 0; i < 8; i++ {
		papers = append(papers, ranked(fmt.Sprintf("http://arxiv.org/abs/%d", i), 1.0-float64(i)*0.1))
	}

	prompt, ids := Build("dense gas", papers, 5)
	if len(ids) != 5 {
		t.Fatalf("len(ids) = %d, want 5", len(ids))
	}
	for i, id := range ids {
		want := fmt.Sprintf("http://arxiv.org/abs/%d", i)
		if id != want {
			t.Errorf("ids[%d] = %s, want %s", i, id, want)
		}
	}
	if strings.Contains(prompt, "Paper 6") {
		t.Error("prompt contains papers beyond topK")
	}
}

func TestBuildFewerThanTopK(t *testing.T) {
	papers := []types.RankedPaper{
		ranked("http://arxiv.org/abs/a", 0.9),
		ranked("http://arxiv.org/abs/b", 0.8),
		ranked("http://arxiv.org/abs/c", 0.7),
	}

	_, ids := Build("dense gas", papers, 5)
	if len(ids) != 3 {
		t.Fatalf("len(ids) = %d, want 3", len(ids))
	}
	want := []string{"http://arxiv.org/abs/a", "http://arxiv.org/abs/b", "http://arxiv.org/abs/c"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %s, want %s", i, ids[i], want[i])
		}
	}
}

func TestBuildPromptContents(t *testing.T) {
	papers := []types.RankedPaper{ranked("http://arxiv.org/abs/2504.06802v1", 0.87654)}

	prompt, _ := Build("dense molecular gas", papers, 5)

	for _, want := range []string{
		"Similarity: 0.8765",
		"Title: Title for http://arxiv.org/abs/2504.06802v1",
		"ArXiv ID: http://arxiv.org/abs/2504.06802v1",
		"Authors: Alice Smith, Bob Jones",
		"Publish Date: 2025-04-09T13:05:26Z",
		"Categories: astro-ph.GA, astro-ph.SR",
		"dense molecular gas",
		"top 3",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildDefaultTopK(t *testing.T) {
	var papers []types.RankedPaper
	for i := 0; i < 10; i++ {
		papers = append(papers, ranked(fmt.Sprintf("http://arxiv.org/abs/%d", i), 0.5))
	}

	_, ids := Build("x", papers, 0)
	if len(ids) != DefaultTopK {
		t.Errorf("len(ids) = %d, want %d", len(ids), DefaultTopK)
	}
}

func TestBuildEmpty(t *testing.T) {
	prompt, ids := Build("x", nil, 5)
	if len(ids) != 0 {
		t.Errorf("len(ids) = %d, want 0", len(ids))
	}
	if prompt == "" {
		t.Error("prompt should still carry the instruction frame")
	}
}
