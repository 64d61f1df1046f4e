package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-triage/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FeedConfig holds settings for the feed query stage.
type FeedConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the feed query endpoint. Empty selects the production
	// arXiv API.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Category is the arXiv category queried for new submissions
	// (e.g. "astro-ph.GA").
	Category string `json:"category" yaml:"category"`

	// MaxResults caps the number of feed entries requested (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// CutoffHour is the civil hour before which "today" is treated as the
	// previous calendar day, because the feed has not ingested the current
	// day's batch yet (default 20).
	CutoffHour int `json:"cutoff_hour" yaml:"cutoff_hour"`

	// TimeZone names the fixed civil zone anchoring the feed's
	// submission timestamps (default "America/New_York").
	TimeZone string `json:"time_zone" yaml:"time_zone"`
}

// RankConfig holds settings for the relevance ranking stage.
type RankConfig struct {
	// Interest is the fixed research-interest statement papers are ranked
	// against.
	Interest string `json:"interest" yaml:"interest"`

	// TopK is the number of ranked papers carried into review and
	// summarization (default 5).
	TopK int `json:"top_k" yaml:"top_k"`
}

// EmbeddingConfig holds settings for the embedding service client.
type EmbeddingConfig struct {
	// BaseURL is an OpenAI-compatible embeddings endpoint. Empty selects
	// the client library's default.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// APIKey authenticates against the embedding service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Model is the embedding model identifier (default "text-embedding-3-small").
	Model string `json:"model" yaml:"model"`
}

// FetchConfig holds settings for the PDF fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// PDFBase is the PDF-serving endpoint abstract-page identifiers are
	// rewritten to. Empty selects the production arXiv export host.
	PDFBase string `json:"pdf_base,omitempty" yaml:"pdf_base,omitempty"`

	// MaxRetries bounds the number of network attempts per URL (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// Wait is the pause applied between attempts, for both retry backoff
	// and rate-limit courtesy toward the feed host (default 3s).
	Wait time.Duration `json:"wait" yaml:"wait"`

	// DownloadDir is the directory downloaded PDFs are written to before
	// extraction. Artifacts are deleted after each paper's iteration.
	DownloadDir string `json:"download_dir" yaml:"download_dir"`
}

// SummaryConfig holds settings for the generation service and the
// summarization stage.
type SummaryConfig struct {
	// Model is the generation model identifier (e.g. "gemini-2.0-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the generation service. Required; the
	// process fails fast at startup when absent.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxOutputTokens, Temperature, and TopP are applied to the generation
	// session once per summarization call.
	MaxOutputTokens int     `json:"max_output_tokens" yaml:"max_output_tokens"`
	Temperature     float64 `json:"temperature" yaml:"temperature"`
	TopP            float64 `json:"top_p" yaml:"top_p"`

	// ExamplesFile optionally points at a YAML file of few-shot
	// input/output pairs overriding the built-in examples.
	ExamplesFile string `json:"examples_file,omitempty" yaml:"examples_file,omitempty"`
}

// PipelineConfig groups all stage configurations for one triage run.
type PipelineConfig struct {
	Feed      FeedConfig      `json:"feed" yaml:"feed"`
	Rank      RankConfig      `json:"rank" yaml:"rank"`
	Embedding EmbeddingConfig `json:"embedding" yaml:"embedding"`
	Fetch     FetchConfig     `json:"fetch" yaml:"fetch"`
	Summary   SummaryConfig   `json:"summary" yaml:"summary"`
}
