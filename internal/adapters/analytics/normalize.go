package analytics

import "seolink/internal/domain"

// Normalize strips scheme and host and drops a trailing slash except on the root
func Normalize(url string) string {
	return domain.NormalizeURL(url)
}
