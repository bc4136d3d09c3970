// Package obfuscate classifies free-form contact values as e-mail addresses
// or phone numbers and renders partially masked versions of them.
//
// Parsing is intentionally permissive: the goal is form-processing hygiene,
// not RFC 5322 / E.164 compliance.
package obfuscate

import "errors"

// ErrUnrecognized means the input matched neither the e-mail grammar nor the
// phone grammar. There is no partial output in that case.
var ErrUnrecognized = errors.New("unrecognized contact value")

// Kind tags the outcome of Classify.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmail
	KindPhone
)

func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindPhone:
		return "phone"
	default:
		return "unknown"
	}
}

// Classification is the tagged result of Classify. Exactly one of Email/Phone
// is meaningful, selected by Kind.
type Classification struct {
	Kind  Kind
	Email Email
	Phone PhoneNumber
}

// Classify attempts the e-mail grammar first, then the phone grammar, and
// short-circuits on the first match. The grammars are mutually exclusive
// (e-mails require '@', which the phone grammar forbids), so order only
// matters for consistency.
func Classify(s string) Classification {
	if e, err := ParseEmail(s); err == nil {
		return Classification{Kind: KindEmail, Email: e}
	}
	if p, err := ParsePhone(s); err == nil {
		return Classification{Kind: KindPhone, Phone: p}
	}
	return Classification{Kind: KindUnknown}
}

// Obfuscate masks an e-mail address or a phone number.
// Examples:
//
//	"local-part@domain-name.com" -> "l*****t@domain-name.com"
//	"+44 123 456 789"            -> "+**-***-**6-789"
//	"123456789"                  -> "*****6789"
//	"12345678"                   -> ErrUnrecognized (only 8 digits)
//
// Pure and stateless; safe for concurrent use.
func Obfuscate(s string) (string, error) {
	switch c := Classify(s); c.Kind {
	case KindEmail:
		return c.Email.Masked(), nil
	case KindPhone:
		return c.Phone.Masked(), nil
	default:
		return "", ErrUnrecognized
	}
}
