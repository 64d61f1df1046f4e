// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize produces structured natural-language summaries of
// extracted paper text through an external generation service.
package summarize

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// GenConfig holds the sampling parameters applied to a generation session.
type GenConfig struct {
	MaxOutputTokens int
	Temperature     float64
	TopP            float64
}

// summaryGenConfig is applied to the session once per summarization call,
// not globally.
var summaryGenConfig = GenConfig{
	MaxOutputTokens: 1024,
	Temperature:     0.3,
	TopP:            0.8,
}

// Message is one turn of conversation history.
type Message struct {
	Role string // "user" or "model"
	Text string
}

// Session is the conversational state threaded across generation calls.
// It is a value: Generate returns a new session with the exchange
// appended rather than mutating shared state.
type Session struct {
	Config  GenConfig
	History []Message
}

// WithConfig returns a copy of the session carrying cfg. A nil receiver
// starts a fresh session.
func (s *Session) WithConfig(cfg GenConfig) *Session {
	next := &Session{Config: cfg}
	if s != nil {
		next.History = s.History
	}
	return next
}

// Generator abstracts the text-generation service. Implementations send
// the prompt with the session's history and config, and return the
// response text plus the advanced session.
type Generator interface {
	Generate(ctx context.Context, prompt string, session *Session) (string, *Session, error)
}

// Summarize builds the few-shot summarization request for one paper's
// extracted text and delegates to gen. The session is configured with the
// summary sampling parameters for this call. The returned bool reports
// whether a usable summary was produced; failure is logged to w, never
// raised.
func Summarize(ctx context.Context, gen Generator, text string, examples []Example, session *Session, w io.Writer) (string, *Session, bool) {
	session = session.WithConfig(summaryGenConfig)

	prompt := buildSummaryPrompt(text, examples)

	reply, session, err := gen.Generate(ctx, prompt, session)
	if err != nil {
		fmt.Fprintf(w, "warning: summarization call failed: %v\n", err)
		return "", session, false
	}
	if strings.TrimSpace(reply) == "" {
		fmt.Fprintln(w, "warning: summarization returned no text")
		return "", session, false
	}
	return reply, session, true
}

// buildSummaryPrompt assembles the fixed formatting instructions, the
// few-shot pairs rendered verbatim, and the target document text.
func buildSummaryPrompt(text string, examples []Example) string {
	var b strings.Builder

	b.WriteString("Please summarize the following research paper. Your summary should be structured into " +
		"clear sections using Markdown headings (e.g., '### Data Used', '### Methodology', '### Key Findings').\n" +
		"For each summary, include:\n" +
		"- **Paper Title**\n" +
		"- **Short Author List**\n" +
		"- **ArXiv Link**\n" +
		"- **Data Used**\n" +
		"- **Methodology**\n" +
		"- **Key Findings**\n\n" +
		"Follow the structure and detail shown in the examples provided.\n\n" +
		"Here's a quick look at some example summaries:\n\n")

	for _, ex := range examples {
		fmt.Fprintf(&b, "Paper Input: %s\nSummary Output:\n%s\n\n", ex.Input, ex.Output)
	}

	b.WriteString("Now, summarize the following research paper:\n")
	b.WriteString(text)
	return b.String()
}
