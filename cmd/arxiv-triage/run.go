package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-triage/internal/extract"
	"github.com/pdiddy/arxiv-triage/internal/pipeline"
	"github.com/pdiddy/arxiv-triage/internal/rank"
	"github.com/pdiddy/arxiv-triage/internal/review"
	"github.com/pdiddy/arxiv-triage/internal/secrets"
	"github.com/pdiddy/arxiv-triage/internal/summarize"
	"github.com/pdiddy/arxiv-triage/internal/window"
	"github.com/pdiddy/arxiv-triage/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultWait      = 3 * time.Second
	defaultUserAgent = "arxiv-triage/0.1"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one daily triage pass",
	Long: `Run executes the full triage pipeline once: compute the submission
window, query the feed, rank entries against the research interest, generate
the review, then fetch, extract, and summarize the top papers. The Markdown
report is written to stdout; progress goes to stderr.

A feed or ranking failure degrades to an empty report; a failure on one
paper marks that paper and the run continues. Only a missing Gemini API key
or broken dependency wiring aborts the run.`,
	RunE: runTriage,
}

func init() {
	runCmd.Flags().String("interest", "", "research-interest statement papers are ranked against")
	runCmd.Flags().String("category", "astro-ph.GA", "arXiv category to query")
	runCmd.Flags().Int("top-k", review.DefaultTopK, "number of top-ranked papers to summarize")
	runCmd.Flags().Int("max-results", 100, "maximum feed entries to request")
	runCmd.Flags().Int("cutoff-hour", window.DefaultCutoffHour, "civil hour before which the window rolls back a day")
	runCmd.Flags().String("time-zone", window.DefaultZone, "civil time zone anchoring the feed's submission dates")
	runCmd.Flags().Duration("timeout", defaultTimeout, "HTTP request timeout")
	runCmd.Flags().Duration("wait", defaultWait, "pause between download attempts")
	runCmd.Flags().Int("max-retries", 3, "download attempts per paper")
	runCmd.Flags().String("download-dir", "downloads", "directory for fetched PDFs (artifacts are deleted after use)")
	runCmd.Flags().String("model", "gemini-2.0-flash", "generation model identifier")
	runCmd.Flags().String("embedding-model", "", "embedding model identifier (default text-embedding-3-small)")
	runCmd.Flags().String("embedding-base-url", "", "OpenAI-compatible embeddings endpoint")
	runCmd.Flags().String("examples", "", "YAML file of few-shot summary examples")

	rootCmd.AddCommand(runCmd)
}

func runTriage(cmd *cobra.Command, args []string) error {
	interest, _ := cmd.Flags().GetString("interest")
	if interest == "" {
		interest = viper.GetString("interest")
	}
	if interest == "" {
		return fmt.Errorf("no research interest configured: pass --interest or set interest in the config file")
	}

	secretsDir, _ := cmd.Flags().GetString("secrets-dir")
	geminiKey, err := secrets.Require(loadedSecrets, secretsDir, secrets.GeminiAPIKey)
	if err != nil {
		return err
	}
	embeddingKey := loadedSecrets[secrets.EmbeddingAPIKey]
	if embeddingKey == "" {
		embeddingKey = viper.GetString("embedding_api_key")
	}

	category, _ := cmd.Flags().GetString("category")
	topK, _ := cmd.Flags().GetInt("top-k")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	cutoffHour, _ := cmd.Flags().GetInt("cutoff-hour")
	timeZone, _ := cmd.Flags().GetString("time-zone")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	wait, _ := cmd.Flags().GetDuration("wait")
	maxRetries, _ := cmd.Flags().GetInt("max-retries")
	downloadDir, _ := cmd.Flags().GetString("download-dir")
	model, _ := cmd.Flags().GetString("model")
	embeddingModel, _ := cmd.Flags().GetString("embedding-model")
	embeddingBaseURL, _ := cmd.Flags().GetString("embedding-base-url")
	examplesFile, _ := cmd.Flags().GetString("examples")

	cfg := types.PipelineConfig{
		Feed: types.FeedConfig{
			HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent},
			Category:   category,
			MaxResults: maxResults,
			CutoffHour: cutoffHour,
			TimeZone:   timeZone,
		},
		Rank: types.RankConfig{Interest: interest, TopK: topK},
		Embedding: types.EmbeddingConfig{
			BaseURL: embeddingBaseURL,
			APIKey:  embeddingKey,
			Model:   embeddingModel,
		},
		Fetch: types.FetchConfig{
			HTTPConfig:  types.HTTPConfig{Timeout: timeout, UserAgent: defaultUserAgent},
			MaxRetries:  maxRetries,
			Wait:        wait,
			DownloadDir: downloadDir,
		},
		Summary: types.SummaryConfig{
			Model:        model,
			APIKey:       geminiKey,
			ExamplesFile: examplesFile,
		},
	}

	zone, err := window.LoadZone(timeZone)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	ctx := cmd.Context()

	embedder, err := rank.NewOpenAIEmbedder(ctx, cfg.Embedding)
	if err != nil {
		return err
	}

	generator, err := summarize.NewGeminiClient(client, cfg.Summary)
	if err != nil {
		return err
	}

	examples := summarize.DefaultExamples()
	if examplesFile != "" {
		examples, err = summarize.LoadExamples(examplesFile)
		if err != nil {
			return err
		}
	}

	deps := pipeline.Deps{
		Clock:     time.Now,
		Zone:      zone,
		Client:    client,
		Embedder:  embedder,
		Generator: generator,
		Extractor: extract.NewPDFExtractor(),
		Examples:  examples,
	}

	return pipeline.Run(ctx, deps, cfg, os.Stdout, os.Stderr)
}
