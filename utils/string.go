package utils

import "strings"

// Keywords splits a search query into lower-cased keywords.
func Keywords(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

func HasAllKeywords(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if !strings.Contains(text, keyword) {
			return false
		}
	}
	return true
}

// FirstNonEmpty returns the first non-empty string of values.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
