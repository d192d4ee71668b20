package credential

import "errors"

// Expected failures of the credential service. Anything else returned by an
// operation is an unexpected collaborator failure and is surfaced to the
// caller as a generic server error.
var (
	// ErrDuplicateEmail indicates the registration email is already in use.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalidCredentials indicates a login failed. It is deliberately the
	// same error whether the email is unknown or the password is wrong, so
	// callers cannot tell which field was at fault.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound indicates an authenticated user ID has no stored record.
	ErrUserNotFound = errors.New("user not found")
)
