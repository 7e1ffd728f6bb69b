package utils

import "strings"

// Slug lowercases and replaces spaces with the given separator.
func Slug(s, sep string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), sep)
}
