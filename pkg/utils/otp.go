package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// GenerateOTP returns a uniformly random 6-digit code in [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %v", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// NormalizePhone reduces a phone input to its bare 10 digits. Accepts
// "+91"/"91"/"0" prefixed forms and separators; returns false when the
// result is not exactly 10 digits.
func NormalizePhone(input string) (string, bool) {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		digits = digits[2:]
	case len(digits) == 11 && strings.HasPrefix(digits, "0"):
		digits = digits[1:]
	}

	if len(digits) != 10 {
		return "", false
	}
	return digits, true
}

// PhoneVariants lists the representations an account's phone number may
// have been stored under.
func PhoneVariants(digits string) []string {
	return []string{
		digits,
		"+91" + digits,
		"91" + digits,
		"0" + digits,
	}
}

// SyntheticEmail builds the email-shaped login key used when a user
// signs up without a real email address.
func SyntheticEmail(digits string) string {
	return digits + "@phone.local"
}
