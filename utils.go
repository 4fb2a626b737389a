package sgdi

import "strings"

func NormalizeURL(targetURL string) string {
	targetURL = strings.TrimSpace(targetURL)
	if len(targetURL) < 4 || !strings.HasPrefix(strings.ToLower(targetURL), "http") {
		return "http://" + targetURL
	}
	return targetURL
}
