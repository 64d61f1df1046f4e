// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// geminiAPIBase is the Gemini generateContent endpoint root. Declared as a
// var so tests can substitute an httptest server.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta/models"

// GeminiClient is a Generator backed by the Gemini REST API. Each call
// replays the session history so the service sees the full conversation.
type GeminiClient struct {
	Client *http.Client
	Model  string
	APIKey string
}

// NewGeminiClient constructs the generation client from config.
func NewGeminiClient(client *http.Client, cfg types.SummaryConfig) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("generation API key is not configured")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiClient{Client: client, Model: model, APIKey: cfg.APIKey}, nil
}

// Gemini REST JSON structures.
type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig *geminiGenConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
	Temperature     float64 `json:"temperature,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt with the session's history and sampling
// config, and returns the response text plus the advanced session.
func (g *GeminiClient) Generate(ctx context.Context, prompt string, session *Session) (string, *Session, error) {
	if session == nil {
		session = &Session{}
	}

	contents := make([]geminiContent, 0, len(session.History)+1)
	for _, m := range session.History {
		contents = append(contents, geminiContent{Role: m.Role, Parts: []geminiPart{{Text: m.Text}}})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: prompt}}})

	reqBody := geminiRequest{Contents: contents}
	if session.Config != (GenConfig{}) {
		reqBody.GenerationConfig = &geminiGenConfig{
			MaxOutputTokens: session.Config.MaxOutputTokens,
			Temperature:     session.Config.Temperature,
			TopP:            session.Config.TopP,
		}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", session, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiAPIBase, g.Model, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", session, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", session, fmt.Errorf("generation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", session, fmt.Errorf("generation service returned HTTP %d", resp.StatusCode)
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", session, fmt.Errorf("parsing generation response: %w", err)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", session, fmt.Errorf("generation response contains no candidates")
	}

	var text string
	for _, p := range gr.Candidates[0].Content.Parts {
		text += p.Text
	}

	next := &Session{
		Config: session.Config,
		History: append(append([]Message{}, session.History...),
			Message{Role: "user", Text: prompt},
			Message{Role: "model", Text: text},
		),
	}
	return text, next, nil
}
