// internal/app/system/inputval/inputval.go

// Package inputval validates user-supplied input before it reaches the
// stores or the mailer. Validation here is shape-only; business rules
// (duplicate admins, self-removal) live with the features that own them.
package inputval

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether s is a plausible email address.
//
// It uses net/mail's RFC 5322 parser and then rejects the display-name
// form ("Name <user@host>") and a few shapes the parser tolerates but
// real providers reject (leading/trailing/consecutive dots).
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// Reject "Display Name <user@host>" - we want a bare address.
	if addr.Address != s {
		return false
	}

	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	for _, part := range []string{local, domain} {
		if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") {
			return false
		}
		if strings.Contains(part, "..") {
			return false
		}
	}
	return true
}

// Required trims s and reports whether anything is left. Callers use it
// for required-field checks so that whitespace-only input does not pass.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}
