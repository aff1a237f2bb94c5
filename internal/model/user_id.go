package model

import "regexp"

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// IsValidUserID reports whether id looks like an identity-service user id.
func IsValidUserID(id string) bool {
	return userIDPattern.MatchString(id)
}
