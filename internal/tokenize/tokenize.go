// Package tokenize splits text into word and non-word units while preserving
// exact code-point offsets into the original input.
package tokenize

import (
	"unicode"

	"github.com/ppiankov/lidspan/internal/model"
)

// Tokens splits text into tokens covering it exactly: each token is either a
// maximal run of letters (a word) or a single non-letter character. base is
// the code-point offset of text within the original input; token offsets are
// absolute.
func Tokens(text string, base int) []model.Token {
	runes := []rune(text)

	var tokens []model.Token
	i := 0
	for i < len(runes) {
		if unicode.IsLetter(runes[i]) {
			j := i + 1
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			tokens = append(tokens, model.Token{
				Text:  string(runes[i:j]),
				Start: base + i,
				End:   base + j,
			})
			i = j
			continue
		}
		tokens = append(tokens, model.Token{
			Text:  string(runes[i : i+1]),
			Start: base + i,
			End:   base + i + 1,
		})
		i++
	}
	return tokens
}

// Words returns only the word tokens of text.
func Words(text string, base int) []model.Token {
	var words []model.Token
	for _, tok := range Tokens(text, base) {
		if tok.IsWord() {
			words = append(words, tok)
		}
	}
	return words
}
