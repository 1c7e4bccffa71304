package langid

import (
	"context"

	"github.com/pemistahl/lingua-go"
	"github.com/ppiankov/lidspan/internal/model"
)

// LinguaProvider runs the lingua-go detector in-process. Language models are
// loaded lazily on first use and stay resident afterwards, so per-token
// calls never reload anything. The detector is immutable after construction
// and safe for concurrent use.
type LinguaProvider struct {
	detector lingua.LanguageDetector
}

// NewLinguaProvider creates the in-process language classifier
func NewLinguaProvider() *LinguaProvider {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()
	return &LinguaProvider{detector: detector}
}

// Name returns the provider name
func (p *LinguaProvider) Name() string {
	return "lingua"
}

// Predict returns up to k ranked guesses for text
func (p *LinguaProvider) Predict(ctx context.Context, text string, k int) ([]model.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if k <= 0 {
		k = 1
	}

	values := p.detector.ComputeLanguageConfidenceValues(text)

	preds := make([]model.Prediction, 0, k)
	for _, cv := range values {
		if len(preds) == k {
			break
		}
		preds = append(preds, model.Prediction{
			Lang: NormalizeLang(cv.Language().IsoCode639_1().String()),
			Prob: cv.Value(),
		})
	}
	return preds, nil
}
