package core

import "strings"

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// CleanStrings applies CleanString to every element of `ss` in place.
func CleanStrings(ss []string, lower ...bool) []string {
	for i := range ss {
		ss[i] = CleanString(ss[i], lower...)
	}
	return ss
}
