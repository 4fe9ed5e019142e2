package contacts

import (
	"regexp"
	"strings"

	"github.com/sells-group/prospect-cli/internal/ner"
)

// credentialPatterns strip honorific and credential tokens before NER
// so "Jane Doe PhD" tags cleanly as a person.
var credentialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bFAAN\b`),
	regexp.MustCompile(`(?i)\bDNP\b`),
	regexp.MustCompile(`(?i)\bPhD\b`),
	regexp.MustCompile(`(?i)\bMD\b`),
	regexp.MustCompile(`(?i)\bDr\.`),
	regexp.MustCompile(`(?i)\bMBA\b`),
}

// orgWords mark entities that are organizations misread as persons.
var orgWords = []string{
	"Health", "Medical", "System", "Holdings", "Group", "Global",
	"China", "Payment", "Services", "Inc", "Ltd", "Contact", "Team",
	"Profile", "View", "LinkedIn", "Member",
}

// entitySuffixes reject business-entity remnants inside a candidate name.
var entitySuffixes = []string{" pvt", " ltd", " inc", " corp"}

// nameTokenPattern allows letters, dots, and hyphens per token
// ("Ravi P.", "Jean-Luc").
var nameTokenPattern = regexp.MustCompile(`^[A-Za-z.\-]+$`)

// Extractor pulls person names out of search-result titles.
type Extractor struct {
	rec ner.Recognizer
}

// NewExtractor creates a name extractor over a recognizer. A nil
// recognizer extracts nothing.
func NewExtractor(rec ner.Recognizer) *Extractor {
	return &Extractor{rec: rec}
}

// Extract returns the first valid person name found in text: the first
// token as the first name and the remaining tokens joined as the last
// name. The company name cross-filters entities that are really the
// company.
func (e *Extractor) Extract(text, companyName string) (first, last string, ok bool) {
	if text == "" || e.rec == nil {
		return "", "", false
	}

	clean := text
	for _, p := range credentialPatterns {
		clean = p.ReplaceAllString(clean, "")
	}

	for _, ent := range e.rec.Entities(clean) {
		if ent.Label != ner.LabelPerson {
			continue
		}

		name := strings.TrimSpace(ent.Text)
		if !plausiblePersonName(name, companyName) {
			continue
		}

		parts := strings.Fields(name)
		if len(parts) < 2 || !validNameShape(parts) {
			continue
		}

		return parts[0], strings.Join(parts[1:], " "), true
	}

	return "", "", false
}

// plausiblePersonName rejects entity text that overlaps the company
// name in either direction or carries organization vocabulary.
func plausiblePersonName(name, companyName string) bool {
	lowerName := strings.ToLower(name)

	if companyName != "" {
		lowerCompany := strings.ToLower(companyName)
		if strings.Contains(lowerName, lowerCompany) || strings.Contains(lowerCompany, lowerName) {
			return false
		}
	}

	for _, bad := range orgWords {
		if strings.Contains(lowerName, strings.ToLower(bad)) {
			return false
		}
	}
	for _, suffix := range entitySuffixes {
		if strings.Contains(lowerName, suffix) {
			return false
		}
	}
	return true
}

// validNameShape requires each token to be letters/dots/hyphens and to
// start uppercase when it starts with a letter.
func validNameShape(parts []string) bool {
	for _, p := range parts {
		if !nameTokenPattern.MatchString(p) {
			return false
		}
		r := rune(p[0])
		if isLetter(r) && !isUpper(r) {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
