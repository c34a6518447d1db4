// Package extract implements regex-based field recovery with typed
// transforms. Extraction is best-effort: a pattern that fails to compile or
// match yields no value, never an error.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/mentat/internal/model"
)

var germanDateRe = regexp.MustCompile(`(\d{2})\.(\d{2})\.(\d{4})`)

// ParseGermanDate converts a DD.MM.YYYY date to YYYY-MM-DD. Returns false if
// the string does not contain a date of that shape.
func ParseGermanDate(dateStr string) (string, bool) {
	m := germanDateRe.FindStringSubmatch(dateStr)
	if m == nil {
		return "", false
	}
	day, month, year := m[1], m[2], m[3]
	return fmt.Sprintf("%s-%s-%s", year, month, day), true
}

// Compile builds a Go regexp from a stored pattern, translating the
// case-insensitive flag into an inline (?i) group.
func Compile(rp model.RegexPattern) (*regexp.Regexp, error) {
	pattern := rp.Pattern
	if strings.Contains(rp.Flags, "i") {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}

// WithRegex applies a regex pattern to raw text and returns the extracted
// value. An unset capture group defaults to the first group. A
// configured transform is applied to the captured value; unknown transform
// names pass the value through unchanged.
func WithRegex(text string, rp model.RegexPattern) (string, bool) {
	re, err := Compile(rp)
	if err != nil {
		return "", false
	}

	match := re.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}

	group := rp.CaptureGroup
	if group <= 0 {
		group = 1
	}
	if group >= len(match) {
		return "", false
	}

	value := match[group]
	if value == "" {
		return "", false
	}

	switch rp.Transform {
	case "parseGermanDate":
		return ParseGermanDate(value)
	case "uppercase":
		return strings.ToUpper(value), true
	case "trim":
		return strings.TrimSpace(value), true
	default:
		return value, true
	}
}

// Matches reports whether the pattern is present in the text at all. Used
// for presence tests like VAT-inclusive detection where no value is taken.
func Matches(text string, rp model.RegexPattern) bool {
	re, err := Compile(rp)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
