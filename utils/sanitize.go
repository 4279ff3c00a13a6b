package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Sanitize cleans HTML content to prevent XSS attacks.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}

// SanitizeTrim cleans and trims user-entered text fields such as captions and
// goal titles.
func SanitizeTrim(input string) string {
	return strings.TrimSpace(sanitizer.Sanitize(input))
}
