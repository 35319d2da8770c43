package domain

import "time"

// TokenVerifier verifies a bearer token and returns the caller identity.
type TokenVerifier interface {
	Verify(token string) (callerID string, err error)
}

// TokenIssuer signs a bearer token for the given subject. Production tokens
// come from the hosted auth provider; the local issuer backs the admintoken
// tool.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}
