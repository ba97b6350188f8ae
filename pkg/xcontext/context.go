package xcontext

import (
	"context"
	"net/http"
	"time"

	"github.com/adventboard/backend/config"
	"github.com/adventboard/backend/internal/model"
	"github.com/adventboard/backend/pkg/authenticator"
	"github.com/adventboard/backend/pkg/logger"
)

type (
	configsKey     struct{}
	loggerKey      struct{}
	tokenEngineKey struct{}
	httpRequestKey struct{}
	requestIDKey   struct{}
	startTimeKey   struct{}
	userIDKey      struct{}
	accessTokenKey struct{}
	errorKey       struct{}
)

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, _ := ctx.Value(configsKey{}).(config.Configs)
	return cfg
}

func WithLogger(ctx context.Context, logger logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		return logger.NewLogger("info")
	}
	return l
}

func WithTokenEngine(
	ctx context.Context, engine authenticator.TokenEngine[model.AccessToken],
) context.Context {
	return context.WithValue(ctx, tokenEngineKey{}, engine)
}

func TokenEngine(ctx context.Context) authenticator.TokenEngine[model.AccessToken] {
	engine, _ := ctx.Value(tokenEngineKey{}).(authenticator.TokenEngine[model.AccessToken])
	return engine
}

func WithHTTPRequest(ctx context.Context, req *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, req)
}

func HTTPRequest(ctx context.Context) *http.Request {
	req, _ := ctx.Value(httpRequestKey{}).(*http.Request)
	return req
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func WithStartTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, startTimeKey{}, t)
}

func StartTime(ctx context.Context) time.Time {
	t, _ := ctx.Value(startTimeKey{}).(time.Time)
	return t
}

func WithRequestUserID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// RequestUserID returns zero if the request is not authenticated.
func RequestUserID(ctx context.Context) uint {
	id, _ := ctx.Value(userIDKey{}).(uint)
	return id
}

func WithAccessToken(ctx context.Context, token model.AccessToken) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

func AccessToken(ctx context.Context) (model.AccessToken, bool) {
	token, ok := ctx.Value(accessTokenKey{}).(model.AccessToken)
	return token, ok
}

func WithError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errorKey{}, err)
}

func Error(ctx context.Context) error {
	err, _ := ctx.Value(errorKey{}).(error)
	return err
}
