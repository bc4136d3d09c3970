package obfuscate

import (
	"errors"
	"strings"
	"unicode"
)

// ErrNotEmail means the input does not satisfy the simplified e-mail grammar.
var ErrNotEmail = errors.New("not an email address")

// localMask is the fixed block hiding the interior of the local-part.
// Fixed length on purpose: the mask must not leak how many characters it hides.
const localMask = "*****"

// Email is a validated local@domain pair. Values are constructed only via
// ParseEmail, so Masked never re-checks the grammar.
type Email struct {
	local  string
	domain string
}

// ParseEmail validates the simplified grammar: exactly one '@'; a non-empty
// local-part with no whitespace; a non-empty domain with no whitespace and at
// least one '.' with non-empty labels around every dot. Character classes
// beyond that are not enforced.
func ParseEmail(s string) (Email, error) {
	at := strings.IndexByte(s, '@')
	if at < 0 || strings.IndexByte(s[at+1:], '@') >= 0 {
		return Email{}, ErrNotEmail
	}

	local, domain := s[:at], s[at+1:]
	if local == "" || domain == "" {
		return Email{}, ErrNotEmail
	}
	if strings.ContainsFunc(local, unicode.IsSpace) || strings.ContainsFunc(domain, unicode.IsSpace) {
		return Email{}, ErrNotEmail
	}
	if !validDomain(domain) {
		return Email{}, ErrNotEmail
	}

	return Email{local: local, domain: domain}, nil
}

func validDomain(domain string) bool {
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	return true
}

// LocalPart returns the substring before '@' as parsed.
func (e Email) LocalPart() string { return e.local }

// Domain returns the substring after '@' as parsed.
func (e Email) Domain() string { return e.domain }

func (e Email) String() string { return e.local + "@" + e.domain }

// Masked lowercases the whole address and hides the interior of the
// local-part behind a fixed five-star block between its first and last
// character. The block is always inserted, even for one- or two-rune local
// parts. The domain is kept as-is after lowercasing.
// Examples:
//
//	"local-part@domain-name.com" -> "l*****t@domain-name.com"
//	"Ab@Example.COM"             -> "a*****b@example.com"
func (e Email) Masked() string {
	local := []rune(strings.ToLower(e.local))
	domain := strings.ToLower(e.domain)

	var b strings.Builder
	b.Grow(len(e.local) + len(localMask) + 1 + len(domain))
	b.WriteRune(local[0])
	b.WriteString(localMask)
	b.WriteRune(local[len(local)-1])
	b.WriteByte('@')
	b.WriteString(domain)
	return b.String()
}
