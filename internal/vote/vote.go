// Package vote aggregates per-token language classifications into one
// run-level decision via weighted voting.
package vote

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ppiankov/lidspan/internal/langid"
	"github.com/ppiankov/lidspan/internal/model"
)

// epsilon keeps the confidence ratio defined when weights round to zero
const epsilon = 1e-9

// Voter decides a run-level language by weighted vote across word tokens.
// Each eligible token votes for its top-1 language with weight
// min(length, weightCap) x probability.
type Voter struct {
	provider    langid.Provider
	minTokenLen int
	weightCap   int
}

// NewVoter creates a voter backed by the given classifier. Zero or negative
// limits select the defaults (minimum token length 2, weight cap 10).
func NewVoter(provider langid.Provider, minTokenLen, weightCap int) *Voter {
	if minTokenLen <= 0 {
		minTokenLen = 2
	}
	if weightCap <= 0 {
		weightCap = 10
	}
	return &Voter{
		provider:    provider,
		minTokenLen: minTokenLen,
		weightCap:   weightCap,
	}
}

// Dominant returns the winning language and its share of the total vote
// weight. Trimmed tokens shorter than the minimum are too noisy to classify
// and are skipped; if nothing votes the result is ("und", 0).
func (v *Voter) Dominant(ctx context.Context, tokens []model.Token) (string, float64, error) {
	weights := make(map[string]float64)
	var total float64

	for _, tok := range tokens {
		text := strings.TrimSpace(tok.Text)
		length := utf8.RuneCountInString(text)
		if length < v.minTokenLen || !tok.IsWord() {
			continue
		}

		preds, err := v.provider.Predict(ctx, text, 1)
		if err != nil {
			return "", 0, fmt.Errorf("classify token %q: %w", text, err)
		}
		if len(preds) == 0 {
			continue
		}

		if length > v.weightCap {
			length = v.weightCap
		}
		weight := float64(length) * preds[0].Prob
		weights[preds[0].Lang] += weight
		total += weight
	}

	if len(weights) == 0 {
		return model.LangUnd, 0.0, nil
	}

	var winner string
	var best float64
	for lang, weight := range weights {
		if weight > best || (weight == best && (winner == "" || lang < winner)) {
			winner = lang
			best = weight
		}
	}

	return winner, best / (total + epsilon), nil
}
