package match

import (
	"unicode"

	"github.com/inkwell-text/inkwell/inline"
)

// DefaultMaxLength caps how far the backward scan walks from the caret.
const DefaultMaxLength = 50

// Match is an accepted trigger match at a point in time.
type Match struct {
	// Trigger is the trigger character that opened the match.
	Trigger rune

	// Keyword is the text between the trigger and the caret, trigger
	// character excluded.
	Keyword string

	// Start is the rune offset of the trigger character, so callers can
	// replace the typed trigger+keyword prefix.
	Start int
}

// Scan walks backward from the caret looking for an active trigger match.
//
// Starting at caret-1 and looking at most maxLen runes back (maxLen <= 0
// means DefaultMaxLength):
//   - whitespace terminates the window immediately; no match
//   - a registered trigger character is accepted only at start of text or
//     when the rune before it is whitespace or not a word character, so
//     "email@domain" never matches while "hi @bob" does
//   - anything else keeps scanning
func Scan(text []rune, caret int, reg *inline.Registry, maxLen int) (Match, bool) {
	if maxLen <= 0 {
		maxLen = DefaultMaxLength
	}
	if caret > len(text) {
		caret = len(text)
	}

	cursor := caret - 1
	if cursor < 0 {
		return Match{}, false
	}

	for i := cursor; i >= 0 && cursor-i < maxLen; i-- {
		r := text[i]

		if reg.Contains(r) {
			if i == 0 || !IsWordRune(text[i-1]) {
				return Match{
					Trigger: r,
					Keyword: string(text[i+1 : cursor+1]),
					Start:   i,
				}, true
			}
			continue
		}
		if unicode.IsSpace(r) {
			return Match{}, false
		}
	}
	return Match{}, false
}

// IsWordRune reports whether r extends a word for boundary purposes.
// The class is deliberately ASCII: [A-Za-z0-9_].
func IsWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '_':
		return true
	default:
		return false
	}
}
