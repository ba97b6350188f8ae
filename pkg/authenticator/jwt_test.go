package authenticator_test

import (
	"errors"
	"testing"
	"time"

	"github.com/adventboard/backend/config"
	"github.com/adventboard/backend/pkg/authenticator"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID   uint   `json:"id"`
	Role string `json:"role"`
}

func testTokenConfigs(expiration time.Duration) config.TokenConfigs {
	return config.TokenConfigs{
		Secret:     "secret",
		Issuer:     "adventboard",
		Audience:   "adventboard-web",
		Expiration: expiration,
	}
}

func TestJWT(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload](testTokenConfigs(time.Minute))
	token, err := engine.Generate("7", payload{ID: 7, Role: "Admin"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, payload{ID: 7, Role: "Admin"}, obj)
}

func TestJWTExpiration(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload](testTokenConfigs(time.Nanosecond))
	token, err := engine.Generate("7", payload{ID: 7})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
	require.True(t, errors.Is(err, authenticator.ErrTokenExpired))
}

func TestJWTWrongSecret(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload](testTokenConfigs(time.Minute))
	token, err := engine.Generate("7", payload{ID: 7})
	require.NoError(t, err)

	cfg := testTokenConfigs(time.Minute)
	cfg.Secret = "another-secret"
	_, err = authenticator.NewTokenEngine[payload](cfg).Verify(token)
	require.True(t, errors.Is(err, authenticator.ErrTokenInvalid))
}

func TestJWTIssuerAndAudience(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload](testTokenConfigs(time.Minute))
	token, err := engine.Generate("7", payload{ID: 7})
	require.NoError(t, err)

	cfg := testTokenConfigs(time.Minute)
	cfg.Issuer = "someone-else"
	_, err = authenticator.NewTokenEngine[payload](cfg).Verify(token)
	require.True(t, errors.Is(err, authenticator.ErrTokenInvalid))

	cfg = testTokenConfigs(time.Minute)
	cfg.Audience = "mobile"
	_, err = authenticator.NewTokenEngine[payload](cfg).Verify(token)
	require.True(t, errors.Is(err, authenticator.ErrTokenInvalid))
}

func TestJWTMalformed(t *testing.T) {
	engine := authenticator.NewTokenEngine[payload](testTokenConfigs(time.Minute))
	_, err := engine.Verify("not-a-token")
	require.True(t, errors.Is(err, authenticator.ErrTokenInvalid))
}
