package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adventboard/backend/pkg/errorx"
	"github.com/adventboard/backend/pkg/router"
	"github.com/adventboard/backend/pkg/xcontext"
)

func Logger() router.CloserFunc {
	return func(ctx context.Context) {
		req := xcontext.HTTPRequest(ctx)
		info := fmt.Sprintf("%s | %s | %s | %s",
			xcontext.RequestID(ctx), req.Method, req.URL.Path, time.Since(xcontext.StartTime(ctx)))

		if err := xcontext.Error(ctx); err != nil {
			var errx errorx.Error
			if errors.As(err, &errx) {
				xcontext.Logger(ctx).Warnf("%s | %d | %s", info, errx.Code, errx.Message)
			} else {
				xcontext.Logger(ctx).Errorf("%s | %d | %v", info, errorx.Unknown.Code, err)
			}
		} else {
			xcontext.Logger(ctx).Infof("%s", info)
		}
	}
}
