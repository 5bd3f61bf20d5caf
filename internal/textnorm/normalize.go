// Package textnorm post-processes a winning OCR extraction. The rules are
// deliberately small and idempotent: normalizing already-normalized text is
// a no-op, and nothing here ever truncates content.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)

	// Digit-for-letter confusions are only fixed inside otherwise
	// alphabetic words ("G0OGLE", "5YSTEM"); standalone numbers are
	// left alone so amounts and ids survive.
	reZeroInWord = regexp.MustCompile(`([A-Za-z])0|0([A-Za-z])`)
	reFiveInWord = regexp.MustCompile(`([A-Za-z])5|5([A-Za-z])`)
)

// fixed single-rune confusion table, applied everywhere.
var confusions = strings.NewReplacer(
	"|", "I",
	"¦", "I",
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// Normalize collapses whitespace runs to single spaces, fixes well-known
// OCR character confusions, drops non-printable artifacts and trims.
func Normalize(s string) string {
	if s == "" {
		return s
	}

	// Strip artifacts first: a non-printable rune between spaces must not
	// leave a double space behind the whitespace collapse.
	s = stripNonPrintable(s)
	s = reWhitespace.ReplaceAllString(s, " ")
	s = confusions.Replace(s)
	s = fixDigitConfusions(s)
	return strings.TrimSpace(s)
}

// fixDigitConfusions rewrites 0->O and 5->S when the digit touches a
// letter. Applied repeatedly until stable so runs like "0O0O" and words
// like "B00K" converge; the pass count is bounded by the word length.
func fixDigitConfusions(s string) string {
	for {
		next := reZeroInWord.ReplaceAllString(s, "${1}O${2}")
		next = reFiveInWord.ReplaceAllString(next, "${1}S${2}")
		if next == s {
			return s
		}
		s = next
	}
}

func stripNonPrintable(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}
