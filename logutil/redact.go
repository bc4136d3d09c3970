package logutil

import (
	"regexp"
	"strings"

	"github.com/vortex-fintech/form-lib/obfuscate"
)

var defaultSensitiveRe = regexp.MustCompile(`(?i)(email|phone|contact|password|pass|secret|token|otp)`)

const defaultReplacement = "[REDACTED]"

// SanitizeFormFields prepares form field values for logging. In development
// and debug envs values pass through untouched. Elsewhere, values under
// sensitive keys are partially masked when they classify as an e-mail or a
// phone number, and fully replaced otherwise.
func SanitizeFormFields(
	fields map[string]string,
	env string,
	replacement string,
	sensitiveKeys ...string,
) map[string]string {
	if fields == nil {
		return nil
	}

	e := strings.ToLower(env)
	if e == "development" || e == "debug" {
		return fields
	}

	if replacement == "" {
		replacement = defaultReplacement
	}

	sens := map[string]struct{}{}
	for _, k := range sensitiveKeys {
		sens[strings.ToLower(k)] = struct{}{}
	}

	sanitized := make(map[string]string, len(fields))
	for field, val := range fields {
		lk := strings.ToLower(field)
		if _, ok := sens[lk]; !ok && !defaultSensitiveRe.MatchString(lk) {
			sanitized[field] = val
			continue
		}
		if masked, err := obfuscate.Obfuscate(val); err == nil {
			sanitized[field] = masked
		} else {
			sanitized[field] = replacement
		}
	}

	return sanitized
}
