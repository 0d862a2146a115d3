package utils

import "strings"

// Ternary returns a when cond holds, b otherwise.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// ArrayContains reports whether any element satisfies match, returning its index.
func ArrayContains[T any](set []T, match func(elem T) bool) (int, bool) {
	for idx, elem := range set {
		if match(elem) {
			return idx, true
		}
	}
	return -1, false
}

// SplitAndTrim splits s on sep, trims every part and drops the empty ones.
func SplitAndTrim(s, sep string) []string {
	parts := []string{}
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
