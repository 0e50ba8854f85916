package errors

import (
	"regexp"
	"strings"
)

// profileIDRegex matches profile ids that are safe to use as a path segment.
var profileIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateProfileID validates a profile id before it is used as a storage key.
// The rules are conservative because FileStore maps ids to directories:
//   - No empty ids
//   - Maximum length of 128 characters
//   - Letters, digits, '.', '_' and '-' only, starting with a letter or digit
//   - No parent directory sequences
func ValidateProfileID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidProfile, "profile id cannot be empty")
	}
	if len(id) > 128 {
		return New(ErrCodeInvalidProfile, "profile id too long (max 128 characters)")
	}
	if strings.Contains(id, "..") {
		return New(ErrCodeInvalidProfile, "profile id cannot contain '..'")
	}
	if !profileIDRegex.MatchString(id) {
		return New(ErrCodeInvalidProfile, "invalid profile id: %q", id)
	}
	return nil
}

// ValidateProfileVersion rejects negative versions. Zero means "latest".
func ValidateProfileVersion(version int) error {
	if version < 0 {
		return New(ErrCodeInvalidProfile, "profile version must be >= 0, got %d", version)
	}
	return nil
}
