package domain

import "errors"

var (
	// ErrSignInRequired gates cart mutations behind an active session.
	ErrSignInRequired = errors.New("sign in required")

	ErrNotFound = errors.New("not found")
)

// AuthError carries a user-displayable message for a failed login or
// registration. It covers both backend rejections (wrong password, email
// taken) and transport failures mapped to a generic connectivity message.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
