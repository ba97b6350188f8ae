package router

import (
	"context"
	"net/http"

	"github.com/adventboard/backend/config"
	"github.com/adventboard/backend/internal/model"
	"github.com/adventboard/backend/pkg/authenticator"
	"github.com/adventboard/backend/pkg/errorx"
	"github.com/adventboard/backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. A non-nil returned context replaces the request
// context, a non-nil error aborts the request.
type MiddlewareFunc func(ctx context.Context) (context.Context, error)

// CloserFunc runs after the response is written, whatever the outcome.
type CloserFunc func(ctx context.Context)

type Router struct {
	engine *gin.Engine
	group  *gin.RouterGroup

	db          *gorm.DB
	cfg         config.Configs
	logger      logger.Logger
	tokenEngine authenticator.TokenEngine[model.AccessToken]

	befores []MiddlewareFunc
	closers []CloserFunc
}

func New(db *gorm.DB, cfg config.Configs, logger logger.Logger) *Router {
	switch cfg.Env {
	case "test":
		gin.SetMode(gin.TestMode)
	case "local", "dev":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.NoRoute(func(c *gin.Context) {
		writeError(c, errorx.New(errorx.NotFound, "Not found %s", c.Request.URL.Path))
	})

	basePath := cfg.ApiServer.BasePath
	if basePath == "" {
		basePath = "/"
	}

	return &Router{
		engine:      engine,
		group:       engine.Group(basePath),
		db:          db,
		cfg:         cfg,
		logger:      logger,
		tokenEngine: authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken),
	}
}

// Branch returns a router sharing the routes of r but with its own copy of middlewares, so
// that middlewares added to the branch do not leak into r.
func (r *Router) Branch() *Router {
	clone := *r
	clone.befores = append([]MiddlewareFunc{}, r.befores...)
	clone.closers = append([]CloserFunc{}, r.closers...)
	return &clone
}

func (r *Router) Before(m MiddlewareFunc) {
	r.befores = append(r.befores, m)
}

func (r *Router) AddCloser(c CloserFunc) {
	r.closers = append(r.closers, c)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	route(r, http.MethodGet, pattern, handler)
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	route(r, http.MethodPost, pattern, handler)
}

func PUT[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	route(r, http.MethodPut, pattern, handler)
}

// Handler returns the http.Handler serving every registered route behind the CORS policy.
func (r *Router) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   r.cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Location", "Token-Expired", "X-Request-Id"},
		AllowCredentials: true,
	}).Handler(r.engine)
}
