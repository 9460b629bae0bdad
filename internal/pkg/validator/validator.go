package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// NormalizeRUT strips dots and uppercases the verifier digit, keeping the
// dash before it: "12.345.678-k" -> "12345678-K".
func NormalizeRUT(rut string) string {
	rut = strings.ReplaceAll(strings.TrimSpace(rut), ".", "")
	return strings.ToUpper(rut)
}

var rutRegex = regexp.MustCompile(`^\d{7,8}-[\dK]$`)

// IsValidRUT validates a Chilean national ID (RUT), including its mod-11
// check digit. Accepts dotted or plain formats.
func IsValidRUT(rut string) bool {
	rut = NormalizeRUT(rut)
	if !rutRegex.MatchString(rut) {
		return false
	}

	parts := strings.Split(rut, "-")
	body, verifier := parts[0], parts[1]

	sum := 0
	factor := 2
	for i := len(body) - 1; i >= 0; i-- {
		digit := int(body[i] - '0')
		sum += digit * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}

	remainder := 11 - (sum % 11)
	var expected string
	switch remainder {
	case 11:
		expected = "0"
	case 10:
		expected = "K"
	default:
		expected = strconv.Itoa(remainder)
	}

	return verifier == expected
}

// IsValidClock checks "HH:MM" (optionally with seconds) time-of-day strings.
var clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

func IsValidClock(s string) bool {
	return clockRegex.MatchString(s)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
