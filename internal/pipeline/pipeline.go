package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/lidspan/internal/cache"
	"github.com/ppiankov/lidspan/internal/extract"
	"github.com/ppiankov/lidspan/internal/langid"
	"github.com/ppiankov/lidspan/internal/model"
	"github.com/ppiankov/lidspan/internal/segment"
	"github.com/ppiankov/lidspan/internal/util"
)

// Pipeline wires fetching, politeness, text extraction and segmentation
// into one flow
type Pipeline struct {
	fetcher   *Fetcher
	robots    *util.RobotsChecker
	extractor *extract.TextExtractor
	segmenter *segment.Segmenter
	renderer  *Renderer
	config    *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	provider, err := langid.NewProvider(langid.ConfigFromModel(cfg.LangID))
	if err != nil {
		return nil, fmt.Errorf("init language classifier: %w", err)
	}

	if cfg.Cache.Enabled {
		provider = langid.NewCached(provider, newPredictionStore(cfg.Cache), cfg.Cache.TTL)
	}

	return &Pipeline{
		fetcher: NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes,
			cfg.HTTP.InsecureTLS, cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
		robots:    util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		extractor: extract.NewTextExtractor(),
		segmenter: segment.New(provider, cfg.Segmenter),
		renderer:  NewRenderer(),
		config:    cfg,
	}, nil
}

// newPredictionStore picks the cache layering from configuration
func newPredictionStore(cfg model.CacheConfig) cache.Cache {
	if cfg.Dir != "" {
		return cache.NewLayered(cfg.TTL, cfg.Dir, cfg.TTL)
	}
	return cache.NewMemory(cfg.TTL, 10*time.Minute)
}

// SegmentText segments a single text value
func (p *Pipeline) SegmentText(ctx context.Context, text string) (*model.Result, error) {
	spans, err := p.segmenter.Segment(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}

	return &model.Result{
		Text:        text,
		SegmentedAt: time.Now().UTC(),
		Spans:       spans,
	}, nil
}

// ScanURL fetches a page, extracts its visible text and segments it
func (p *Pipeline) ScanURL(ctx context.Context, url string) (*model.Result, error) {
	allowed, err := p.robots.CanFetch(ctx, url)
	if err == nil && !allowed {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", url)
	}

	fetched, err := p.fetcher.FetchWithRetry(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	text, err := p.extractor.Extract(fetched.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	spans, err := p.segmenter.Segment(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("segment: %w", err)
	}

	return &model.Result{
		SourceURL:   fetched.FinalURL,
		Text:        text,
		SegmentedAt: time.Now().UTC(),
		FetchMeta:   &fetched.Meta,
		Spans:       spans,
	}, nil
}

// RenderResult renders the result to the configured outputs
func (p *Pipeline) RenderResult(result *model.Result, jsonPath, yamlPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(result, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if yamlPath != "" {
		if err := p.renderer.RenderYAML(result, yamlPath); err != nil {
			return fmt.Errorf("render YAML: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote YAML: %s\n", yamlPath)
		}
	}

	switch p.config.Output.Format {
	case "json":
		return p.renderer.WriteJSON(result, os.Stdout)
	case "yaml":
		return p.renderer.WriteYAML(result, os.Stdout)
	default:
		p.renderer.RenderSummary(result, os.Stdout)
	}
	return nil
}
