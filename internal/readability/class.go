// Package readability implements the Tateisi et al. (1988) readability
// formula for Japanese text.
package readability

// Class is the character class a single codepoint belongs to.
type Class int

// Character classes. The four letter classes come first so they can index
// per-class counters directly.
const (
	Alphabet Class = iota
	Hiragana
	Katakana
	Kanji
	Kuten
	Toten
	Other
)

const letterClasses = 4

var classNames = [...]string{
	Alphabet: "alphabet",
	Hiragana: "hiragana",
	Katakana: "katakana",
	Kanji:    "kanji",
	Kuten:    "kuten",
	Toten:    "toten",
	Other:    "other",
}

// LetterClasses lists the classes that form runs, in counter order.
func LetterClasses() []Class {
	return []Class{Alphabet, Hiragana, Katakana, Kanji}
}

// String returns the lowercase class name.
func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return "unknown"
	}
	return classNames[c]
}

// IsLetter reports whether c is one of the run-forming classes.
func (c Class) IsLetter() bool {
	return c >= Alphabet && c <= Kanji
}

// ClassOf classifies a codepoint. Ranges are checked in priority order and
// the first match wins, so 0x5B-0x60 ([\]^_`) land in Alphabet.
func ClassOf(r rune) Class {
	switch {
	case (r >= 0x0041 && r <= 0x007A) || (r >= 0xFF21 && r <= 0xFF5A):
		return Alphabet
	case r >= 0x3041 && r <= 0x3096:
		return Hiragana
	case r >= 0x30A1 && r <= 0x30FA:
		return Katakana
	case r >= 0x4E00 && r <= 0x9FBF:
		return Kanji
	case r == '。':
		return Kuten
	case r == '、':
		return Toten
	default:
		return Other
	}
}
