package oauth

import "errors"

var (
	ErrNoToken      = errors.New("no token found - please authenticate first")
	ErrTokenExpired = errors.New("token expired and no refresh token available")
	ErrEmptyToken   = errors.New("token is empty")
)

// IsCredentialUnavailable reports whether err means there is simply no usable
// credential, as opposed to a failure while obtaining one.
func IsCredentialUnavailable(err error) bool {
	return errors.Is(err, ErrNoToken) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrEmptyToken)
}
