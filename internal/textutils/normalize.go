// Package textutils provides text normalization and line repair helpers for
// freeform chat transcripts.
package textutils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFC after removing combining marks, so "mães"
// becomes "maes".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	chatMetadata  = regexp.MustCompile(`^\[[^\]]*\]\s*[^:]*:\s*`)
	digitThenWord = regexp.MustCompile(`(\d)([\p{L}])`)
	firstDigits   = regexp.MustCompile(`\d+`)
)

// Normalize canonicalizes text for substring matching: lowercase, accents
// stripped, whitespace runs collapsed to a single space, trimmed.
// It is idempotent and never fails; un-transformable input degrades to the
// lowercased original.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		stripped = lowered
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(stripped, " "))
}

// StripChatMetadata removes a leading "[timestamp] sender: " transcript
// annotation, recovering the substantive message content.
func StripChatMetadata(line string) string {
	return chatMetadata.ReplaceAllString(line, "")
}

// SeparateDigitRuns inserts a space between a digit and an immediately
// following letter, so "20kids" reads as "20 kids". Source transcripts
// frequently concatenate a count and its label.
func SeparateDigitRuns(line string) string {
	return digitThenWord.ReplaceAllString(line, "$1 $2")
}

// FirstNumber extracts the first contiguous digit run in line as a
// non-negative base-10 integer.
func FirstNumber(line string) (int, bool) {
	match := firstDigits.FindString(line)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		// Digit run too long for an int; treat as no usable number.
		return 0, false
	}
	return n, true
}

// IsAcknowledgement reports whether the line is only the "ok" token,
// optionally padded with whitespace.
func IsAcknowledgement(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "ok")
}
