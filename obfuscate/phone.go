package obfuscate

import (
	"errors"
	"strings"
)

// ErrNotPhone means the input does not satisfy the phone grammar.
var ErrNotPhone = errors.New("not a phone number")

const (
	// minPhoneDigits is the lower bound that separates phone numbers from
	// arbitrary digit strings.
	minPhoneDigits = 9
	// keepVisibleDigits is how many trailing digits stay unmasked.
	keepVisibleDigits = 4
)

// PhoneNumber is a validated phone value. The original layout is preserved
// so masking can reproduce group boundaries as dashes. Constructed only via
// ParsePhone.
type PhoneNumber struct {
	raw    string
	digits int
}

// ParsePhone validates the phone grammar: every byte is a digit, a space, or
// '+'; '+' appears at most once and only as the first byte; at least nine
// digits in total.
func ParsePhone(s string) (PhoneNumber, error) {
	digits := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == ' ':
		case c == '+':
			if i != 0 {
				return PhoneNumber{}, ErrNotPhone
			}
		default:
			return PhoneNumber{}, ErrNotPhone
		}
	}
	if digits < minPhoneDigits {
		return PhoneNumber{}, ErrNotPhone
	}
	return PhoneNumber{raw: s, digits: digits}, nil
}

// DigitCount returns the number of digit characters.
func (p PhoneNumber) DigitCount() int { return p.digits }

// HasPlus reports whether the value carries the leading '+'.
func (p PhoneNumber) HasPlus() bool { return strings.HasPrefix(p.raw, "+") }

func (p PhoneNumber) String() string { return p.raw }

// Masked keeps the last four digits, replaces every earlier digit with '*',
// turns spaces into '-' and keeps the leading '+', all in original order.
// Examples:
//
//	"+44 123 456 789"  -> "+**-***-**6-789"
//	"+7 999 123 45 67" -> "+*-***-***-45-67"
//	"123456789"        -> "*****6789"
func (p PhoneNumber) Masked() string {
	var b strings.Builder
	b.Grow(len(p.raw))

	seen := 0
	for i := 0; i < len(p.raw); i++ {
		switch c := p.raw[i]; c {
		case ' ':
			b.WriteByte('-')
		case '+':
			b.WriteByte('+')
		default:
			seen++
			if p.digits-seen < keepVisibleDigits {
				b.WriteByte(c)
			} else {
				b.WriteByte('*')
			}
		}
	}
	return b.String()
}
