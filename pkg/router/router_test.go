package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adventboard/backend/pkg/errorx"
	"github.com/adventboard/backend/pkg/logger"
	"github.com/adventboard/backend/pkg/router"
	"github.com/adventboard/backend/pkg/testutil"
	"github.com/adventboard/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	ID   uint   `uri:"id" json:"-"`
	Name string `json:"name"`
}

type echoResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	UserID uint   `json:"userId"`
}

type createdResponse struct {
	ID uint `json:"id"`
}

func (r createdResponse) CreatedLocation() string {
	return "/items/7"
}

func newTestRouter(t *testing.T) *router.Router {
	ctx := testutil.NewMockContext()
	cfg := testutil.NewMockConfigs()
	cfg.Cors.AllowedOrigins = []string{"http://localhost:5173"}

	return router.New(xcontext.DB(ctx), cfg, logger.NewLogger("error"))
}

func do(t *testing.T, r *router.Router, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)
	return w
}

func TestRouter_Bind(t *testing.T) {
	r := newTestRouter(t)
	router.PUT(r, "/items/:id", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{ID: req.ID, Name: req.Name}, nil
	})

	w := do(t, r, http.MethodPut, "/api/items/12", `{"name":"foo"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var resp echoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, echoResponse{ID: 12, Name: "foo"}, resp)

	w = do(t, r, http.MethodPut, "/api/items/abc", `{"name":"foo"}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPut, "/api/items/12", `{"name":`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/unknown", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_Created(t *testing.T) {
	r := newTestRouter(t)
	router.POST(r, "/items", func(ctx context.Context, req *echoRequest) (*createdResponse, error) {
		return &createdResponse{ID: 7}, nil
	})

	w := do(t, r, http.MethodPost, "/api/items", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "/api/items/7", w.Header().Get("Location"))
	require.JSONEq(t, `{"id":7}`, w.Body.String())
}

func TestRouter_Errors(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		err     error
		status  int
		code    errorx.Code
		expired bool
	}{
		{name: "not found", err: errorx.New(errorx.NotFound, "Not found competition"), status: 404, code: errorx.NotFound},
		{name: "conflict", err: errorx.New(errorx.AlreadyExists, "Already joined"), status: 400, code: errorx.AlreadyExists},
		{name: "forbidden", err: errorx.New(errorx.PermissionDenied, "Permission denied"), status: 403, code: errorx.PermissionDenied},
		{name: "expired", err: errorx.New(errorx.TokenExpired, "Token is expired"), status: 401, code: errorx.TokenExpired, expired: true},
		{name: "unknown", err: errors.New("database is on fire"), status: 500, code: errorx.Unknown.Code},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			branch := r.Branch()
			branch.Before(func(ctx context.Context) (context.Context, error) {
				return nil, tt.err
			})

			router.GET(branch, "/"+strings.ReplaceAll(tt.name, " ", "-"),
				func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
					return &echoResponse{}, nil
				})

			w := do(t, r, http.MethodGet, "/api/"+strings.ReplaceAll(tt.name, " ", "-"), "", nil)
			require.Equal(t, tt.status, w.Code)

			var body struct {
				Code  errorx.Code `json:"code"`
				Error string      `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, tt.code, body.Code)
			if tt.code == errorx.Unknown.Code {
				require.Equal(t, errorx.Unknown.Message, body.Error)
			}

			if tt.expired {
				require.Equal(t, "true", w.Header().Get("Token-Expired"))
			} else {
				require.Empty(t, w.Header().Get("Token-Expired"))
			}
		})
	}
}

func TestRouter_BeforeAndCloser(t *testing.T) {
	r := newTestRouter(t)

	var closed []error
	r.AddCloser(func(ctx context.Context) {
		closed = append(closed, xcontext.Error(ctx))
	})

	authorized := r.Branch()
	authorized.Before(func(ctx context.Context) (context.Context, error) {
		return xcontext.WithRequestUserID(ctx, 5), nil
	})

	handler := func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{UserID: xcontext.RequestUserID(ctx)}, nil
	}
	router.GET(authorized, "/me", handler)
	router.GET(r, "/public", handler)

	w := do(t, r, http.MethodGet, "/api/me", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":0,"name":"","userId":5}`, w.Body.String())

	// The branch middleware does not apply to the parent router.
	w = do(t, r, http.MethodGet, "/api/public", "", nil)
	require.JSONEq(t, `{"id":0,"name":"","userId":0}`, w.Body.String())

	require.Len(t, closed, 2)
	require.NoError(t, closed[0])
	require.NoError(t, closed[1])
}

func TestRouter_CORS(t *testing.T) {
	r := newTestRouter(t)
	router.GET(r, "/items", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	w := do(t, r, http.MethodGet, "/api/items", "", map[string]string{"Origin": "http://localhost:5173"})
	require.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(t, r, http.MethodGet, "/api/items", "", map[string]string{"Origin": "http://evil.example"})
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
