// Package metrics derives size features from text so telemetry can describe
// prompts and tool output without recording them.
package metrics

import (
	"unicode"
	"unicode/utf8"
)

// Features holds basic local text features derived from an input string.
type Features struct {
	Bytes int
	Runes int
	Words int
	Lines int
}

// CountFeatures computes byte, rune, word and line counts in one pass.
// Words are maximal runs of non-space runes; lines are 0 for "" and otherwise
// one more than the number of '\n' runes.
func CountFeatures(s string) Features {
	f := Features{Bytes: len(s)}
	if s == "" {
		return f
	}
	f.Lines = 1
	inWord := false
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		f.Runes++
		if r == '\n' {
			f.Lines++
		}
		if unicode.IsSpace(r) {
			inWord = false
			continue
		}
		if !inWord {
			f.Words++
			inWord = true
		}
	}
	return f
}
