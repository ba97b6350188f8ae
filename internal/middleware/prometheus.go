package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/adventboard/backend/internal/common"
	"github.com/adventboard/backend/pkg/errorx"
	"github.com/adventboard/backend/pkg/router"
	"github.com/adventboard/backend/pkg/xcontext"
)

func Prometheus() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		status := fmt.Sprint(responseStatus(ctx))
		duration := time.Since(xcontext.StartTime(ctx)).Seconds()

		common.PromCounters[common.HTTPRequestTotal].WithLabelValues(req.Method, status).Inc()
		common.PromHistograms[common.HTTPRequestDurationSeconds].
			WithLabelValues(req.Method, status).Observe(duration)
	}
}

func responseStatus(ctx context.Context) int {
	err := xcontext.Error(ctx)
	if err == nil {
		return http.StatusOK
	}

	var errx errorx.Error
	if errors.As(err, &errx) {
		return errx.Code.HTTPStatus()
	}

	return http.StatusInternalServerError
}
