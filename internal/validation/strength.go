package validation

import "unicode"

// PasswordStrength scores a password 0-100 additively: +25 for length >= 8,
// +25 more for length >= 12, +25 for mixed case, +15 for a digit, +10 for a
// symbol. Advisory only; it never gates submission.
func PasswordStrength(password string) int {
	score := 0
	if len(password) >= 8 {
		score += 25
	}
	if len(password) >= 12 {
		score += 25
	}
	if hasMixedCase(password) {
		score += 25
	}
	if hasDigit(password) {
		score += 15
	}
	if hasSymbol(password) {
		score += 10
	}
	return score
}

// StrengthLabel maps a strength score to its display label.
func StrengthLabel(score int) string {
	switch {
	case score < 30:
		return "Weak"
	case score < 60:
		return "Fair"
	case score < 80:
		return "Good"
	default:
		return "Strong"
	}
}

func hasSymbol(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
