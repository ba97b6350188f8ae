package router

import (
	"errors"
	"net/http"
	"path"

	"github.com/adventboard/backend/pkg/errorx"
	"github.com/gin-gonic/gin"
)

// CreatedResponse is implemented by responses of handlers creating a resource. The router
// answers 201 with a Location header made of the base path and CreatedLocation.
type CreatedResponse interface {
	CreatedLocation() string
}

type errorResponse struct {
	Code  errorx.Code `json:"code"`
	Error string      `json:"error"`
}

func writeResponse[Response any](c *gin.Context, basePath string, resp *Response) {
	if resp == nil {
		c.Status(http.StatusOK)
		return
	}

	if created, ok := any(resp).(CreatedResponse); ok {
		c.Header("Location", path.Join(basePath, created.CreatedLocation()))
		c.JSON(http.StatusCreated, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func writeError(c *gin.Context, err error) {
	var errx errorx.Error
	if !errors.As(err, &errx) {
		errx = errorx.Unknown
	}

	if errx.Code == errorx.TokenExpired {
		c.Header("Token-Expired", "true")
	}

	c.AbortWithStatusJSON(errx.Code.HTTPStatus(), errorResponse{Code: errx.Code, Error: errx.Message})
}
