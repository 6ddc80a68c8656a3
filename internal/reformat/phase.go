package reformat

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ReadLength is the fixed width of sequence and quality lines.
const ReadLength = 76

// Phase is the record line the scanner expects next.
type Phase int

const (
	ExpectHeader Phase = iota
	ExpectSequence
	ExpectSeparator
	ExpectQuality
)

func (p Phase) String() string {
	switch p {
	case ExpectHeader:
		return "header"
	case ExpectSequence:
		return "sequence"
	case ExpectSeparator:
		return "separator"
	case ExpectQuality:
		return "quality"
	}
	return "unknown"
}

// isSpace matches unicode.IsSpace plus the ASCII information separators
// (0x1C–0x1F), which str-splitting tools also treat as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Normalize deletes every whitespace character in line, not just the ends.
func Normalize(line string) string {
	if strings.IndexFunc(line, isSpace) < 0 {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if !isSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Step applies one transition. token must already be normalized and length
// is measured in characters. When emit is false the line is discarded and
// next is always ExpectHeader, except that an over-long header candidate
// keeps the machine in ExpectHeader as well.
func Step(p Phase, token string, length int) (next Phase, out string, emit bool) {
	n := utf8.RuneCountInString(token)
	switch p {
	case ExpectHeader:
		if n < length {
			return ExpectSequence, "@" + token, true
		}
	case ExpectSequence:
		if n == length {
			return ExpectSeparator, token, true
		}
	case ExpectSeparator:
		if n == 0 {
			return ExpectQuality, "+", true
		}
	case ExpectQuality:
		if n == length {
			return ExpectHeader, token, true
		}
	}
	return ExpectHeader, "", false
}
