package common

import (
	"context"
	"errors"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/pkg/enum"
	"github.com/adventboard/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
)

// GlobalRoleVerifier checks the role carried by the verified access token. The role is not
// looked up again in the database.
type GlobalRoleVerifier struct{}

func NewGlobalRoleVerifier() *GlobalRoleVerifier {
	return &GlobalRoleVerifier{}
}

func (verifier *GlobalRoleVerifier) Verify(ctx context.Context, requiredRoles ...entity.UserRole) error {
	token, ok := xcontext.AccessToken(ctx)
	if !ok {
		return errors.New("request is not authenticated")
	}

	role, err := enum.ToEnum[entity.UserRole](token.Role)
	if err != nil {
		return err
	}

	if !slices.Contains(requiredRoles, role) {
		return errors.New("user role does not have permission")
	}

	return nil
}
