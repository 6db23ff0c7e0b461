package sanitizer

import "strings"

// NormalizeImageURL enforces HTTPS and a lowercase domain while preserving
// the path as stored by the image host.
func NormalizeImageURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}

	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "https://")

	parts := strings.SplitN(url, "/", 2)
	domain := strings.ToLower(parts[0])

	var path string
	if len(parts) > 1 {
		path = "/" + parts[1]
	}

	return strings.TrimSuffix("https://"+domain+path, "/")
}
