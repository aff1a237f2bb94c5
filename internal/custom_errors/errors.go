package custom_errors

import "errors"

// Validation
var (
	ErrValidation     = errors.New("validation failed")
	ErrInvalidBlogID  = errors.New("invalid blog id")
	ErrInvalidUserID  = errors.New("invalid user id")
	ErrNoUpdateFields = errors.New("no fields to update")
)

// Access
var (
	ErrUnauthenticated = errors.New("missing caller identity")
	ErrForbidden       = errors.New("access denied")
	ErrNotBlogAuthor   = errors.New("caller is not the author of the blog")
)

// Blog
var (
	ErrBlogNotFound = errors.New("blog not found")
)

// User service
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrExternalServiceError = errors.New("external service error")
)

// Database
var (
	ErrDatabaseQuery = errors.New("database query failed")
	ErrDatabaseScan  = errors.New("database scan failed")
)
