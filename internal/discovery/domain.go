package discovery

import "strings"

// ExtractDomain derives a bare domain from a URL. LinkedIn company
// pages get special treatment: the corporate domain is guessed from the
// company slug ("razorpay-inc" → "razorpay.com") rather than read from
// the URL, and LinkedIn URLs that don't match the company-page pattern
// yield an empty string instead of a guess. The empty string is the
// universal failure value; this function never fails loudly.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	clean := strings.ReplaceAll(rawURL, "https://", "")
	clean = strings.ReplaceAll(clean, "http://", "")
	clean = strings.TrimPrefix(clean, "www.")

	if strings.Contains(clean, "linkedin.com") {
		return guessFromCompanySlug(clean)
	}

	domain, _, _ := strings.Cut(clean, "/")
	return domain
}

// guessFromCompanySlug handles linkedin.com/company/<slug>/... URLs.
// The slug's first hyphen-separated segment plus ".com" is the guess.
// A bare slug with no further path is not the company-page pattern and
// produces no guess.
func guessFromCompanySlug(cleanURL string) string {
	_, after, found := strings.Cut(cleanURL, "/company/")
	if !found {
		return ""
	}

	slug, _, hasPath := strings.Cut(after, "/")
	if !hasPath {
		return ""
	}

	slug, _, _ = strings.Cut(slug, "?")
	base, _, _ := strings.Cut(slug, "-")
	if base == "" {
		return ""
	}
	return base + ".com"
}
