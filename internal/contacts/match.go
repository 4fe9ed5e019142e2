package contacts

import (
	"regexp"
	"strings"
)

// RoleMatchThreshold is the minimum keyword-overlap fraction for a
// search result to count as holding the target role. Exposed so tests
// can probe the boundary directly.
const RoleMatchThreshold = 0.5

// pastRolePattern signals a former holder of the role. Word boundaries
// keep "Experience" from matching "ex" and "pastor" from matching
// "past"; "previously" still counts.
var pastRolePattern = regexp.MustCompile(`\b(former|past|ex-|previous(?:ly)?|retired)\b`)

// IsPastRole reports whether a result title describes a past role
// holder. The check runs on the title only and is a hard reject.
func IsPastRole(title string) bool {
	return pastRolePattern.MatchString(strings.ToLower(title))
}

// RoleMatchScore computes the fraction of the target term's keywords
// present anywhere in the text. A leading "vp " expands to
// "vice president " so abbreviation and expansion match each other.
// Deliberately loose: keyword overlap, not exact phrase.
func RoleMatchScore(term, text string) float64 {
	t := strings.ToLower(term)
	if rest, found := strings.CutPrefix(t, "vp "); found {
		t = "vice president " + rest
	}

	keywords := strings.Fields(t)
	if len(keywords) == 0 {
		return 0
	}

	haystack := strings.ToLower(text)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			matches++
		}
	}
	return float64(matches) / float64(len(keywords))
}
