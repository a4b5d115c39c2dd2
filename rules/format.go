package rules

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/conform"
)

// Email rejects strings that are not a usable email address. The check
// parses per RFC 5322 and then restricts to the addr-spec shapes seen in
// web forms: a non-empty local part and a dotted domain.
func Email(value string) conform.Constraint {
	return conform.Constraint{
		ID:    "format.email",
		Input: value,
		Test: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			parts := strings.Split(addr.Address, "@")
			if len(parts) != 2 {
				return false
			}

			local, domain := parts[0], parts[1]
			if local == "" {
				return false
			}
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for _, part := range strings.Split(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Text: func() string {
			return "must be a valid email address"
		},
	}
}

// URL rejects strings that are not an absolute URL with a scheme and host.
func URL(value string) conform.Constraint {
	return conform.Constraint{
		ID:    "format.url",
		Input: value,
		Test: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			return u.Scheme != "" && u.Host != ""
		},
		Text: func() string {
			return "must be a valid URL"
		},
	}
}

// UUID rejects strings that are not a canonical UUID. Length and hyphen
// positions are checked before parsing, so malformed input fails cheaply.
func UUID(value string) conform.Constraint {
	return conform.Constraint{
		ID:    "format.uuid",
		Input: value,
		Test: func() bool {
			if len(value) != 36 {
				return false
			}
			if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		Text: func() string {
			return "must be a valid UUID"
		},
	}
}
