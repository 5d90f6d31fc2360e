package helper

import "strings"

// TrimPtr trims a non-nil string pointer in place and returns it.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// NilIfBlank returns nil for nil or whitespace-only strings, otherwise the trimmed value.
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
