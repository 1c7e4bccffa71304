package model

// ScriptTag names a Unicode script, or the pseudo-script "Common" for
// punctuation, symbol, separator and number characters.
type ScriptTag string

const (
	ScriptLatin      ScriptTag = "Latin"
	ScriptCyrillic   ScriptTag = "Cyrillic"
	ScriptArabic     ScriptTag = "Arabic"
	ScriptDevanagari ScriptTag = "Devanagari"
	ScriptHan        ScriptTag = "Han"
	ScriptHiragana   ScriptTag = "Hiragana"
	ScriptKatakana   ScriptTag = "Katakana"
	ScriptHangul     ScriptTag = "Hangul"
	ScriptGreek      ScriptTag = "Greek"
	ScriptHebrew     ScriptTag = "Hebrew"
	ScriptThai       ScriptTag = "Thai"
	ScriptBengali    ScriptTag = "Bengali"
	ScriptGurmukhi   ScriptTag = "Gurmukhi"
	ScriptGujarati   ScriptTag = "Gujarati"
	ScriptOriya      ScriptTag = "Oriya"
	ScriptTamil      ScriptTag = "Tamil"
	ScriptTelugu     ScriptTag = "Telugu"
	ScriptKannada    ScriptTag = "Kannada"
	ScriptMalayalam  ScriptTag = "Malayalam"
	ScriptSinhala    ScriptTag = "Sinhala"
	ScriptLao        ScriptTag = "Lao"
	ScriptKhmer      ScriptTag = "Khmer"
	ScriptMyanmar    ScriptTag = "Myanmar"
	ScriptTibetan    ScriptTag = "Tibetan"
	ScriptCommon     ScriptTag = "Common"
)

// LangUnd is the sentinel language code for "undetermined".
const LangUnd = "und"

// SharedAlphabet reports whether the script is one where code-switching
// across languages is common enough to require per-token classification.
func (s ScriptTag) SharedAlphabet() bool {
	return s == ScriptLatin || s == ScriptCyrillic
}

// Span is a contiguous character range tagged with one (script, language,
// confidence) triple. Start and End are code-point offsets into the input
// text, with Start < End and Confidence in [0,1].
type Span struct {
	Start      int       `json:"start" yaml:"start"`
	End        int       `json:"end" yaml:"end"`
	Script     ScriptTag `json:"script" yaml:"script"`
	Lang       string    `json:"lang" yaml:"lang"`
	Confidence float64   `json:"confidence" yaml:"confidence"`
}
