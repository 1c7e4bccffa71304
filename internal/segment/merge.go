package segment

import "github.com/ppiankov/lidspan/internal/model"

// Merge coalesces adjacent spans that share both script and language. The
// confidence of a growing span is re-averaged against each absorbed span in
// turn, so earlier contributions decay geometrically rather than by count —
// the same smoothing rule the per-token walk uses. Merge is idempotent: its
// output never contains two adjacent spans with equal script and language.
func Merge(spans []model.Span) []model.Span {
	if len(spans) == 0 {
		return spans
	}

	merged := make([]model.Span, 0, len(spans))
	for _, sp := range spans {
		if n := len(merged); n > 0 &&
			merged[n-1].Script == sp.Script &&
			merged[n-1].Lang == sp.Lang {
			merged[n-1].End = sp.End
			merged[n-1].Confidence = (merged[n-1].Confidence + sp.Confidence) / 2
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}
