package ports

import "context"

// AuthService verifies credentials and issues bearer tokens. Token
// verification on inbound requests lives in the transport middleware, not
// here.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *AccountView, error)
}
