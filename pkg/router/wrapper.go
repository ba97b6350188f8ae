package router

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/adventboard/backend/pkg/errorx"
	"github.com/adventboard/backend/pkg/xcontext"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func route[Request, Response any](
	r *Router,
	method, pattern string,
	handler HandlerFunc[Request, Response],
) {
	befores := append([]MiddlewareFunc{}, r.befores...)
	closers := append([]CloserFunc{}, r.closers...)
	basePath := r.group.BasePath()

	r.group.Handle(method, pattern, func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		ctx := r.newContext(c.Request, requestID)
		defer func() {
			for _, closer := range closers {
				closer(ctx)
			}
		}()

		resp, err := func() (*Response, error) {
			for _, before := range befores {
				newCtx, err := before(ctx)
				if err != nil {
					return nil, err
				}

				if newCtx != nil {
					ctx = newCtx
				}
			}

			req := new(Request)
			if err := bind(c, req); err != nil {
				return nil, errorx.New(errorx.BadRequest, "Invalid request: %v", err)
			}

			return handler(ctx, req)
		}()

		if err != nil {
			ctx = xcontext.WithError(ctx, err)
			writeError(c, err)
			return
		}

		writeResponse(c, basePath, resp)
	})
}

func (r *Router) newContext(req *http.Request, requestID string) context.Context {
	ctx := req.Context()
	ctx = xcontext.WithConfigs(ctx, r.cfg)
	ctx = xcontext.WithLogger(ctx, r.logger)
	ctx = xcontext.WithDB(ctx, r.db)
	ctx = xcontext.WithTokenEngine(ctx, r.tokenEngine)
	ctx = xcontext.WithHTTPRequest(ctx, req)
	ctx = xcontext.WithRequestID(ctx, requestID)
	ctx = xcontext.WithStartTime(ctx, time.Now())
	return ctx
}

// bind fills req from the JSON body, then from the path parameters.
func bind(c *gin.Context, req any) error {
	if c.Request.Method != http.MethodGet && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	if len(c.Params) > 0 {
		if err := c.ShouldBindUri(req); err != nil {
			return err
		}
	}

	return nil
}
