package script

import (
	"unicode"

	"github.com/ppiankov/lidspan/internal/model"
)

// Classifier maps a single character to a script tag. The second return is
// false when the character matches no script in the priority list; such
// characters never become part of any run.
type Classifier interface {
	Lookup(r rune) (model.ScriptTag, bool)
}

// priority is the fixed, ordered list of script membership tests. Predicates
// are evaluated per character in this order; first match wins.
var priority = []struct {
	tag   model.ScriptTag
	table *unicode.RangeTable
}{
	{model.ScriptLatin, unicode.Latin},
	{model.ScriptCyrillic, unicode.Cyrillic},
	{model.ScriptArabic, unicode.Arabic},
	{model.ScriptDevanagari, unicode.Devanagari},
	{model.ScriptHan, unicode.Han},
	{model.ScriptHiragana, unicode.Hiragana},
	{model.ScriptKatakana, unicode.Katakana},
	{model.ScriptHangul, unicode.Hangul},
	{model.ScriptGreek, unicode.Greek},
	{model.ScriptHebrew, unicode.Hebrew},
	{model.ScriptThai, unicode.Thai},
	{model.ScriptBengali, unicode.Bengali},
	{model.ScriptGurmukhi, unicode.Gurmukhi},
	{model.ScriptGujarati, unicode.Gujarati},
	{model.ScriptOriya, unicode.Oriya},
	{model.ScriptTamil, unicode.Tamil},
	{model.ScriptTelugu, unicode.Telugu},
	{model.ScriptKannada, unicode.Kannada},
	{model.ScriptMalayalam, unicode.Malayalam},
	{model.ScriptSinhala, unicode.Sinhala},
	{model.ScriptLao, unicode.Lao},
	{model.ScriptKhmer, unicode.Khmer},
	{model.ScriptMyanmar, unicode.Myanmar},
	{model.ScriptTibetan, unicode.Tibetan},
}

// TableClassifier resolves characters against the standard library's Unicode
// script range tables.
type TableClassifier struct{}

// NewTableClassifier creates the default script classifier
func NewTableClassifier() *TableClassifier {
	return &TableClassifier{}
}

// Lookup returns the script tag for r, or false if r belongs to none of the
// supported scripts.
func (TableClassifier) Lookup(r rune) (model.ScriptTag, bool) {
	for _, p := range priority {
		if unicode.Is(p.table, r) {
			return p.tag, true
		}
	}
	return "", false
}

// isSeparator reports whether r is a separator (general category Z).
func isSeparator(r rune) bool {
	return unicode.In(r, unicode.Z)
}

// isCommon reports whether r belongs to the punctuation, symbol, separator
// or number general categories.
func isCommon(r rune) bool {
	return unicode.In(r, unicode.P, unicode.S, unicode.Z, unicode.N)
}
