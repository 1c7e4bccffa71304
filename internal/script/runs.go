package script

import "github.com/ppiankov/lidspan/internal/model"

// Run is a maximal stretch of characters sharing one script resolution.
// Start and End are code-point offsets into the input text. Script is
// ScriptCommon for punctuation/symbol/separator/number runs.
type Run struct {
	Script model.ScriptTag
	Start  int
	End    int
}

// Splitter scans text into ordered, non-overlapping script runs.
type Splitter struct {
	classifier Classifier
}

// NewSplitter creates a run splitter. A nil classifier selects the default
// table-driven one.
func NewSplitter(c Classifier) *Splitter {
	if c == nil {
		c = NewTableClassifier()
	}
	return &Splitter{classifier: c}
}

// Split partitions text into script runs, strictly left to right.
//
// Separators extend whatever run is open, so words of one script stay in a
// single run. Punctuation, symbols and numbers close a script run and open a
// Common run, except that a Common run at the end of the text is folded back
// into a preceding script run: sentence-final punctuation belongs with the
// words it closes. Characters matching neither a script nor the Common
// categories close the open run and are excluded from any run.
func (s *Splitter) Split(text string) []Run {
	runes := []rune(text)

	var runs []Run
	var cur Run
	open := false

	flush := func() {
		if open {
			runs = append(runs, cur)
			open = false
		}
	}

	for i, r := range runes {
		if tag, ok := s.classifier.Lookup(r); ok {
			if open && cur.Script == tag {
				cur.End = i + 1
				continue
			}
			flush()
			cur = Run{Script: tag, Start: i, End: i + 1}
			open = true
			continue
		}

		if isSeparator(r) {
			if open {
				cur.End = i + 1
			} else {
				cur = Run{Script: model.ScriptCommon, Start: i, End: i + 1}
				open = true
			}
			continue
		}

		if isCommon(r) {
			if open && cur.Script == model.ScriptCommon {
				cur.End = i + 1
				continue
			}
			flush()
			cur = Run{Script: model.ScriptCommon, Start: i, End: i + 1}
			open = true
			continue
		}

		// No script, not punctuation/symbol/separator/number: the
		// character is dropped and splits the surrounding runs.
		flush()
	}
	flush()

	// Fold a trailing Common run into the script run it follows
	if n := len(runs); n >= 2 &&
		runs[n-1].Script == model.ScriptCommon &&
		runs[n-2].Script != model.ScriptCommon &&
		runs[n-2].End == runs[n-1].Start {
		runs[n-2].End = runs[n-1].End
		runs = runs[:n-1]
	}

	return runs
}
