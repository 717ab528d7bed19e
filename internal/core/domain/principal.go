package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// Principal is the authenticated caller, extracted from the bearer token by
// the transport layer and threaded explicitly into every service call.
// Services never read identity from ambient state.
type Principal struct {
	AccountID string
	Role      string
}
