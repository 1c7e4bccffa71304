package segment

import (
	"context"
	"fmt"
	"strings"

	"github.com/ppiankov/lidspan/internal/model"
	"github.com/ppiankov/lidspan/internal/script"
	"github.com/ppiankov/lidspan/internal/tokenize"
)

// classifyTokenwise walks a Latin or Cyrillic run token by token, where
// code-switching across languages is common. The walk is a two-state
// machine: either no span is open, or exactly one span is under
// construction.
//
//   - A non-word token extends the open span without reclassification, or
//     becomes a standalone Common span when nothing is open.
//   - A word token below the confidence floor is demoted to "und".
//   - A word token matching the open span's language extends it and
//     re-averages its confidence; any other word token flushes the open
//     span and opens a new one.
func (s *Segmenter) classifyTokenwise(ctx context.Context, text string, run script.Run) ([]model.Span, error) {
	var spans []model.Span
	var open *model.Span

	for _, tok := range tokenize.Tokens(text, run.Start) {
		if !tok.IsWord() {
			if open != nil {
				open.End = tok.End
			} else {
				spans = append(spans, model.Span{
					Start:  tok.Start,
					End:    tok.End,
					Script: model.ScriptCommon,
					Lang:   model.LangUnd,
				})
			}
			continue
		}

		preds, err := s.provider.Predict(ctx, tok.Text, s.cfg.TopK)
		if err != nil {
			return nil, fmt.Errorf("classify token %q: %w", tok.Text, err)
		}

		lang, prob := model.LangUnd, 0.0
		if len(preds) > 0 {
			lang, prob = preds[0].Lang, preds[0].Prob
		}
		if prob < s.cfg.MinClassifyConfidence {
			// Too uncertain to commit to a specific language
			lang = model.LangUnd
		}

		if open != nil && open.Lang == lang {
			open.End = tok.End
			// Two-point smoothing: later tokens weigh more than
			// earlier ones.
			open.Confidence = (open.Confidence + prob) / 2
			continue
		}

		if open != nil {
			spans = append(spans, *open)
		}
		open = &model.Span{
			Start:      tok.Start,
			End:        tok.End,
			Script:     run.Script,
			Lang:       lang,
			Confidence: prob,
		}
	}

	if open != nil {
		spans = append(spans, *open)
	}
	return spans, nil
}

// classifyWhole decides one language for an entire run of a script where
// code-switching is not expected. The run's word tokens vote; if none of
// them was strong enough to vote, the whole run text is classified as one
// string, which gives the classifier more context than any single token had.
func (s *Segmenter) classifyWhole(ctx context.Context, text string, run script.Run) ([]model.Span, error) {
	lang, conf, err := s.voter.Dominant(ctx, tokenize.Words(text, run.Start))
	if err != nil {
		return nil, err
	}

	if lang == model.LangUnd && strings.TrimSpace(text) != "" {
		preds, err := s.provider.Predict(ctx, text, s.cfg.TopK)
		if err != nil {
			return nil, fmt.Errorf("classify run text: %w", err)
		}
		if len(preds) > 0 {
			lang, conf = preds[0].Lang, preds[0].Prob
		}
	}

	return []model.Span{{
		Start:      run.Start,
		End:        run.End,
		Script:     run.Script,
		Lang:       lang,
		Confidence: conf,
	}}, nil
}
