package middleware

import (
	"context"

	"github.com/adventboard/backend/internal/common"
	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/pkg/errorx"
	"github.com/adventboard/backend/pkg/router"
)

type OnlyAdmin struct {
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewOnlyAdmin() *OnlyAdmin {
	return &OnlyAdmin{
		globalRoleVerifier: common.NewGlobalRoleVerifier(),
	}
}

func (a *OnlyAdmin) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if err := a.globalRoleVerifier.Verify(ctx, entity.AdminRoles...); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}

		return nil, nil
	}
}
