package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Account identifier pattern - letters and digits, 3 to 32 chars
	IdentifierPattern = `^[A-Za-z0-9]{3,32}$`

	// Attendance code pattern - uppercase letters and digits
	CodePattern = `^[A-Z0-9]{4,12}$`

	// Password min length
	PasswordMinLength = 6

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Identifier *regexp.Regexp
	Code       *regexp.Regexp
}{
	Identifier: regexp.MustCompile(IdentifierPattern),
	Code:       regexp.MustCompile(CodePattern),
}

// ValidIdentifier reports whether id is an acceptable account or course ID
func ValidIdentifier(id string) bool {
	return CompiledPatterns.Identifier.MatchString(id)
}

// ValidCode reports whether s has the shape of an attendance code
func ValidCode(s string) bool {
	return CompiledPatterns.Code.MatchString(s)
}

// ValidPassword reports whether a password meets the minimum length
func ValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}

// ValidName reports whether a display name is within bounds
func ValidName(name string) bool {
	return len(name) >= NameMinLength && len(name) <= NameMaxLength
}
