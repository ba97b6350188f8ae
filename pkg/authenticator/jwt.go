package authenticator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/adventboard/backend/config"
)

type standardClaims[T any] struct {
	jwt.RegisteredClaims
	Object T `json:"obj"`
}

type jwtTokenEngine[T any] struct {
	secret     []byte
	issuer     string
	audience   string
	expiration time.Duration

	now func() time.Time
}

func NewTokenEngine[T any](cfg config.TokenConfigs) TokenEngine[T] {
	return &jwtTokenEngine[T]{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		expiration: cfg.Expiration,
		now:        time.Now,
	}
}

func (e *jwtTokenEngine[T]) Generate(sub string, obj T) (string, error) {
	now := e.now()
	claims := standardClaims[T]{
		Object: obj,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    e.issuer,
			Audience:  jwt.ClaimStrings{e.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(e.expiration)),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   sub,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(e.secret)
}

func (e *jwtTokenEngine[T]) Verify(token string) (T, error) {
	var empty T
	var claims standardClaims[T]
	_, err := jwt.ParseWithClaims(
		token, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return e.secret, nil
		},
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return empty, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return empty, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !claims.VerifyIssuer(e.issuer, true) {
		return empty, fmt.Errorf("%w: unexpected issuer %q", ErrTokenInvalid, claims.Issuer)
	}

	if !claims.VerifyAudience(e.audience, true) {
		return empty, fmt.Errorf("%w: unexpected audience %v", ErrTokenInvalid, claims.Audience)
	}

	return claims.Object, nil
}
