// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/embedding/openai"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

const defaultEmbedModel = "text-embedding-3-small"

// OpenAIEmbedder adapts an OpenAI-compatible embeddings endpoint to the
// Embedder interface.
type OpenAIEmbedder struct {
	inner *openai.Embedder
}

// NewOpenAIEmbedder constructs the embedding client from config. The API
// key is required; base URL and model fall back to library defaults.
func NewOpenAIEmbedder(ctx context.Context, cfg types.EmbeddingConfig) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("embedding API key is not configured")
	}
	model := cfg.Model
	if model == "" {
		model = defaultEmbedModel
	}

	inner, err := openai.NewEmbedder(ctx, &openai.EmbeddingConfig{
		APIKey:  cfg.APIKey,
		Model:   model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating embedding client: %w", err)
	}
	return &OpenAIEmbedder{inner: inner}, nil
}

// Embed returns the embedding vector for text.
func (e *OpenAIEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text to embed is empty")
	}
	vecs, err := e.inner.EmbedStrings(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vecs) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}
	return vecs[0], nil
}
