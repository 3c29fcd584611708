package kernel

import (
	"strings"

	"opsworker/internal/pkg/errs"
)

// PhoneNumber is a WhatsApp-addressable number: digits only, with a leading
// national 0 replaced by the 62 country code.
type PhoneNumber string

// NewPhoneNumber normalizes raw. It returns a ValueIsRequiredError when raw
// holds no digits at all.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	normalized := NormalizePhoneNumber(raw)
	if normalized == "" {
		return "", errs.NewValueIsRequiredError("phone number")
	}
	return PhoneNumber(normalized), nil
}

// NormalizePhoneNumber strips every non-digit and rewrites a leading 0 to 62.
// An empty input yields an empty string.
func NormalizePhoneNumber(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	if strings.HasPrefix(digits, "0") {
		return "62" + digits[1:]
	}
	return digits
}

func (p PhoneNumber) String() string {
	return string(p)
}
