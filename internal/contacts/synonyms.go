package contacts

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// defaultSynonyms maps canonical role labels to search-friendly
// alternate phrasings, in priority order.
var defaultSynonyms = map[string][]string{
	"CTO":      {"Chief Technology Officer", "VP Engineering", "Vice President Engineering", "Head of Engineering"},
	"CEO":      {"Chief Executive Officer", "Founder", "Co-Founder", "Managing Director", "MD", "Owner"},
	"CFO":      {"Chief Financial Officer", "VP Finance", "Vice President Finance"},
	"CMO":      {"Chief Marketing Officer", "VP Marketing", "Vice President Marketing"},
	"VP Sales": {"Head of Sales", "Chief Revenue Officer", "CRO", "Director of Sales", "Vice President Sales"},
	"Founder":  {"Co-Founder", "CEO", "Owner"},
}

// SynonymExpander expands a canonical role label into the ordered list
// of terms to search.
type SynonymExpander struct {
	synonyms map[string][]string
}

// NewSynonymExpander creates an expander with the built-in role map.
func NewSynonymExpander() *SynonymExpander {
	return &SynonymExpander{synonyms: defaultSynonyms}
}

// Expand returns the search terms for a role: the canonical label
// itself first, then its synonyms in listed order. Unknown roles search
// only the literal label.
func (e *SynonymExpander) Expand(role string) []string {
	terms := []string{role}
	return append(terms, e.synonyms[role]...)
}

// Merge overlays role entries onto the expander's map. An override
// replaces the whole synonym list for its role.
func (e *SynonymExpander) Merge(overrides map[string][]string) {
	merged := make(map[string][]string, len(e.synonyms)+len(overrides))
	for k, v := range e.synonyms {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	e.synonyms = merged
}

// LoadSynonyms reads a role→synonyms YAML file, used to extend the
// built-in map from config.
func LoadSynonyms(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "contacts: read synonyms %s", path)
	}

	var m map[string][]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, eris.Wrapf(err, "contacts: parse synonyms %s", path)
	}
	return m, nil
}
