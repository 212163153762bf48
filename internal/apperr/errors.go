package apperr

import "errors"

// Sentinel errors shared by usecases and handlers. Handlers map these to
// fixed HTTP status/message pairs; anything else surfaces as a generic 500.
var (
	// validation
	ErrTitleRequired = errors.New("title is required")

	// registration conflicts
	ErrUsernameTaken = errors.New("username already exists")
	ErrEmailTaken    = errors.New("email already exists")

	// authentication
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	// resource absent, or present but owned by someone else. The two cases
	// are deliberately indistinguishable to the caller.
	ErrTaskNotFound = errors.New("task not found")

	// admin gate
	ErrNotAdmin = errors.New("admin access required")
)
