package relay

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "KW"

// HashPII applies the one-way hash the ad platforms require:
// trim, lower-case, SHA-256, hex. Deterministic for a given value
// regardless of surrounding case or whitespace.
func HashPII(raw string) string {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// CanonicalPhone brings a raw phone value to E.164 before hashing so
// that 99123456, 0099123456-style variants and +96599123456 all hash
// identically. Values libphonenumber cannot parse fall back to a
// digits-and-plus strip.
func CanonicalPhone(raw string) string {
	cleaned := stripToDial(raw)
	if cleaned == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 9:
		// A single leading zero is a local-dialing artifact, not a
		// trunk prefix in Kuwait.
		cleaned = cleaned[1:]
	case strings.HasPrefix(cleaned, "965") && len(cleaned) == 11:
		// Country code written without the plus.
		cleaned = "+" + cleaned
	}

	number, err := phonenumbers.Parse(cleaned, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		return cleaned
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

func stripToDial(raw string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HashPhone is the composition used for the ph field.
func HashPhone(raw string) string {
	canonical := CanonicalPhone(raw)
	if canonical == "" {
		return ""
	}
	return HashPII(canonical)
}
