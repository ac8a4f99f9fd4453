package model

import "strings"

// CountryPrefix replaces a leading trunk "0" during normalization.
const CountryPrefix = "+49"

// NormalizePhone turns a raw phone string into international format on a
// best-effort basis. It never fails: input it cannot make sense of comes back
// stripped of non-digits, and an input without digits yields "".
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	b.Grow(len(phone))
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "+" {
		return ""
	}

	switch {
	case strings.HasPrefix(cleaned, "0"):
		return CountryPrefix + cleaned[1:]
	case strings.HasPrefix(cleaned, "49"):
		return "+" + cleaned
	}
	return cleaned
}
