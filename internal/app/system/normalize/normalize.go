// internal/app/system/normalize/normalize.go

// Package normalize provides canonical forms for user-supplied identifiers
// so that lookups and uniqueness checks behave consistently no matter how
// the value was typed.
package normalize

import "strings"

// Email trims whitespace and lowercases the address. Email comparison in
// the stores is always done on the normalized form.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role trims and lowercases a role name for comparison against the
// allowed role set.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
