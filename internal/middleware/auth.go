package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/adventboard/backend/pkg/authenticator"
	"github.com/adventboard/backend/pkg/errorx"
	"github.com/adventboard/backend/pkg/router"
	"github.com/adventboard/backend/pkg/xcontext"
)

type AuthVerifier struct{}

func NewAuthVerifier() *AuthVerifier {
	return &AuthVerifier{}
}

// Middleware verifies the bearer access token and puts its payload into the context.
func (a *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := bearerToken(ctx)
		if token == "" {
			return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		info, err := xcontext.TokenEngine(ctx).Verify(token)
		if err != nil {
			if errors.Is(err, authenticator.ErrTokenExpired) {
				return nil, errorx.New(errorx.TokenExpired, "Access token is expired")
			}

			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return nil, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		ctx = xcontext.WithAccessToken(ctx, info)
		ctx = xcontext.WithRequestUserID(ctx, info.ID)
		return ctx, nil
	}
}

func bearerToken(ctx context.Context) string {
	req := xcontext.HTTPRequest(ctx)
	if req == nil {
		return ""
	}

	auth, token, found := strings.Cut(req.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(auth, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}
