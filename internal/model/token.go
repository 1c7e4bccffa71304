package model

import "unicode"

// Token is a word or single non-word unit produced by the tokenizer. Start
// and End are absolute code-point offsets into the original text. Tokens are
// transient: they live only while one script run is being classified.
type Token struct {
	Text  string
	Start int
	End   int
}

// IsWord reports whether the token contains at least one letter.
func (t Token) IsWord() bool {
	for _, r := range t.Text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// Prediction is one ranked language guess from a classifier: a language code
// and its probability in [0,1]. Classifiers return predictions sorted by
// descending probability; the probabilities need not sum to 1.
type Prediction struct {
	Lang string  `json:"lang"`
	Prob float64 `json:"prob"`
}
