package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern matches ordinary lowercase addresses
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// PasswordMinLength applies to newly created users
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// ValidEmail reports whether the address is well-formed.
func ValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.ToLower(strings.TrimSpace(email)))
}

// ValidCode reports whether an entity code (department, course, subject) is
// uppercase alphanumeric, with dashes allowed between segments (e.g. BTECH-CSE).
func ValidCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	if code != strings.ToUpper(code) {
		return false
	}
	for _, char := range code {
		if !((char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-') {
			return false
		}
	}
	return !strings.HasPrefix(code, "-") && !strings.HasSuffix(code, "-")
}
