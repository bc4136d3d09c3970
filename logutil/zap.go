package logutil

import (
	"sort"

	"go.uber.org/zap"

	"github.com/vortex-fintech/form-lib/obfuscate"
)

// MaskedString builds a zap field that never carries the raw contact value:
// the value is partially masked when it classifies as an e-mail or a phone
// number, and fully replaced otherwise.
func MaskedString(key, val string) zap.Field {
	if masked, err := obfuscate.Obfuscate(val); err == nil {
		return zap.String(key, masked)
	}
	return zap.String(key, defaultReplacement)
}

// Fields converts a (sanitized) field map into zap fields in key order.
func Fields(m map[string]string) []zap.Field {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.String(k, m[k]))
	}
	return out
}
