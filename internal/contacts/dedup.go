package contacts

import "github.com/sells-group/prospect-cli/internal/model"

// DedupContacts collapses contacts sharing the exact first+last name
// key. Insertion order is preserved and the first occurrence wins, so
// the operation is idempotent.
func DedupContacts(contacts []model.Contact) []model.Contact {
	seen := make(map[string]struct{}, len(contacts))
	unique := contacts[:0:0]
	for _, c := range contacts {
		key := c.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}
