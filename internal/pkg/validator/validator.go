package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/biotrack-hr/attendance-backend-go/internal/pkg/timeutil"
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

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// IsValidDate checks the YYYY-MM-DD layout used across the API.
func IsValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// IsValidTimeOfDay checks the HH:MM / HH:MM:SS layouts used for shift
// boundaries and punch times.
func IsValidTimeOfDay(s string) bool {
	_, err := timeutil.Parse(s)
	return err == nil
}

// IsValidDuration checks a non-negative Go duration string ("15m", "1h30m").
func IsValidDuration(s string) bool {
	d, err := time.ParseDuration(s)
	return err == nil && d >= 0
}
