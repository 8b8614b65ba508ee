package utils

import (
	"regexp"
	"strings"
)

var (
	controlChars   = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`)
	multiSpace     = regexp.MustCompile(`\s+`)
	injectionChars = regexp.MustCompile("[<>\"'`;{}]")
	slugSeparators = regexp.MustCompile(`[\s\-]+`)
	slugInvalid    = regexp.MustCompile(`[^a-z0-9_]`)
)

// SanitizeString replaces control characters with spaces and collapses
// repeated whitespace
func SanitizeString(s string) string {
	result := controlChars.ReplaceAllString(s, " ")
	result = multiSpace.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// SanitizeAddress prepares free-text address input for upstream calls:
// control characters and characters usable for injection are stripped.
func SanitizeAddress(s string) string {
	return SanitizeString(injectionChars.ReplaceAllString(s, ""))
}

// Slugify converts an arbitrary display name into a stable snake_case
// identifier, e.g. "Wayve Max-2" becomes "wayve_max_2"
func Slugify(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = slugSeparators.ReplaceAllString(slug, "_")
	slug = slugInvalid.ReplaceAllString(slug, "")
	return strings.Trim(slug, "_")
}

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	if maxLength <= 3 {
		return "..."
	}

	return string(runes[:maxLength-3]) + "..."
}
