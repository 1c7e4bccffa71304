// Package segment turns raw text into script- and language-tagged spans.
// The pipeline is: split text into script runs, classify each run (per token
// for shared-alphabet scripts, by weighted vote otherwise), then merge
// adjacent spans that agree on both script and language.
package segment

import (
	"context"
	"fmt"

	"github.com/ppiankov/lidspan/internal/langid"
	"github.com/ppiankov/lidspan/internal/model"
	"github.com/ppiankov/lidspan/internal/script"
	"github.com/ppiankov/lidspan/internal/vote"
)

// Segmenter partitions text into contiguous spans, each tagged with a
// Unicode script, a predicted language, and a confidence value. It holds no
// mutable state across calls; one instance may serve concurrent callers as
// long as its collaborators do.
type Segmenter struct {
	splitter *script.Splitter
	provider langid.Provider
	voter    *vote.Voter
	cfg      model.SegmenterConfig
}

// New creates a segmenter around the given language classifier, using the
// default table-driven script classifier. Zero-valued config fields fall
// back to the documented defaults.
func New(provider langid.Provider, cfg model.SegmenterConfig) *Segmenter {
	return NewWithScriptClassifier(provider, nil, cfg)
}

// NewWithScriptClassifier creates a segmenter with an explicit script
// classifier collaborator.
func NewWithScriptClassifier(provider langid.Provider, scripts script.Classifier, cfg model.SegmenterConfig) *Segmenter {
	if cfg.MinClassifyConfidence == 0 {
		cfg.MinClassifyConfidence = 0.60
	}
	if cfg.TokenWeightCap <= 0 {
		cfg.TokenWeightCap = 10
	}
	if cfg.MinVoteTokenLen <= 0 {
		cfg.MinVoteTokenLen = 2
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 1
	}

	return &Segmenter{
		splitter: script.NewSplitter(scripts),
		provider: provider,
		voter:    vote.NewVoter(provider, cfg.MinVoteTokenLen, cfg.TokenWeightCap),
		cfg:      cfg,
	}
}

// Segment partitions text into ordered, non-overlapping spans. All offsets
// are code-point indices into text. An empty input yields no spans; a
// classifier failure aborts the whole call.
func (s *Segmenter) Segment(ctx context.Context, text string) ([]model.Span, error) {
	if text == "" {
		return nil, nil
	}

	runes := []rune(text)

	var spans []model.Span
	for _, run := range s.splitter.Split(text) {
		runSpans, err := s.classifyRun(ctx, runes, run)
		if err != nil {
			return nil, fmt.Errorf("classify run [%d,%d): %w", run.Start, run.End, err)
		}
		spans = append(spans, runSpans...)
	}

	return Merge(spans), nil
}

// classifyRun dispatches one script run to the right classification
// strategy.
func (s *Segmenter) classifyRun(ctx context.Context, runes []rune, run script.Run) ([]model.Span, error) {
	if run.Script == model.ScriptCommon {
		return []model.Span{{
			Start:  run.Start,
			End:    run.End,
			Script: model.ScriptCommon,
			Lang:   model.LangUnd,
		}}, nil
	}

	text := string(runes[run.Start:run.End])
	if run.Script.SharedAlphabet() {
		return s.classifyTokenwise(ctx, text, run)
	}
	return s.classifyWhole(ctx, text, run)
}
