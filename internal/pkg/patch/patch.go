package patch

import "strings"

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// TrimOr trims the pointed-to string; nil or blank yields fallback.
func TrimOr(ptr *string, fallback string) string {
	if ptr == nil {
		return fallback
	}
	if t := strings.TrimSpace(*ptr); t != "" {
		return t
	}
	return fallback
}
