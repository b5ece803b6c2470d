package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	nonDigitsRegex = regexp.MustCompile(`[^0-9]`)
)

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizeCpfCnpj strips formatting characters from a Brazilian tax id
func NormalizeCpfCnpj(doc string) string {
	return nonDigitsRegex.ReplaceAllString(doc, "")
}

// IsValidCpfCnpj checks that a tax id has a CPF (11 digits) or CNPJ
// (14 digits) shape. Check-digit validation is left to the payment gateway.
func IsValidCpfCnpj(doc string) bool {
	digits := NormalizeCpfCnpj(doc)
	return len(digits) == 11 || len(digits) == 14
}

// MaskEmail masks the local part of an email address
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	domain := parts[1]

	var maskedLocal string
	if len(localPart) <= 2 {
		maskedLocal = localPart
	} else {
		maskedLocal = localPart[:2] + strings.Repeat("*", len(localPart)-2)
	}

	return maskedLocal + "@" + domain
}

// MaskCpfCnpj keeps only the last 4 digits of a tax id visible
func MaskCpfCnpj(doc string) string {
	digits := NormalizeCpfCnpj(doc)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}
