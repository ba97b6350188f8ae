package authenticator

import "errors"

var (
	ErrTokenExpired = errors.New("token is expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

type TokenEngine[T any] interface {
	// Generate signs a token whose subject is sub and whose payload is obj. The expiration is
	// decided by the engine configuration.
	Generate(sub string, obj T) (string, error)

	// Verify checks signature, issuer, audience and lifetime of the token, then returns its
	// payload. An expired token yields an error wrapping ErrTokenExpired, every other failure
	// wraps ErrTokenInvalid.
	Verify(token string) (T, error)
}
