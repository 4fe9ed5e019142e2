package contacts

import (
	"regexp"
	"strings"

	"github.com/sells-group/prospect-cli/internal/model"
)

// Confidence scores assigned by the enrichment heuristic. External
// verification may overwrite these later.
const (
	confidenceWithEmail    = 50
	confidenceWithoutEmail = 10
)

var nonAlpha = regexp.MustCompile(`[^a-zA-Z]`)

// Enrich synthesizes a best-guess email for a contact from its name
// parts and the company domain, using the conventional
// first.last@domain pattern. This is a guess, not a lookup; the mail
// server is never probed here and EmailValid stays false until an
// external check runs.
func Enrich(c model.Contact, domain string) model.Contact {
	if c.FirstName != "" && c.LastName != "" && domain != "" {
		first := nonAlpha.ReplaceAllString(strings.ToLower(c.FirstName), "")
		last := nonAlpha.ReplaceAllString(strings.ToLower(c.LastName), "")
		c.Email = first + "." + last + "@" + domain
		c.EmailValid = false
		c.ConfidenceScore = confidenceWithEmail
		return c
	}

	c.Email = ""
	c.ConfidenceScore = confidenceWithoutEmail
	return c
}
