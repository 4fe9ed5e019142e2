// Package export writes prospect lists to CSV and XLSX, one row per
// contact. Companies without contacts still get a row so the list shows
// every discovered prospect.
package export

import (
	"strings"

	"github.com/sells-group/prospect-cli/internal/model"
)

var header = []string{
	"Company", "Industry", "Website", "Contact", "Role",
	"Email", "Phone", "Trigger", "Trigger URL", "LinkedIn",
}

// Rows flattens companies into export rows, header excluded.
func Rows(companies []model.Company) [][]string {
	var rows [][]string
	for _, company := range companies {
		website := company.Domain
		if website != "" && !strings.HasPrefix(website, "http") {
			website = "https://" + website
		}

		var trigger, triggerURL string
		if company.Trigger != nil {
			trigger = company.Trigger.Description
			triggerURL = company.Trigger.URL
		}

		if len(company.Contacts) == 0 {
			rows = append(rows, []string{
				company.Name, company.Industry, website,
				"", "", "", "", trigger, triggerURL, company.LinkedInURL,
			})
			continue
		}

		for _, contact := range company.Contacts {
			linkedin := contact.LinkedInURL
			if linkedin == "" {
				linkedin = company.LinkedInURL
			}
			rows = append(rows, []string{
				company.Name, company.Industry, website,
				contact.FullName(), contact.Title,
				contact.Email, contact.Phone,
				trigger, triggerURL, linkedin,
			})
		}
	}
	return rows
}
