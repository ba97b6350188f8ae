package domain

import (
	"context"
	"errors"
	"strconv"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/internal/model"
	"github.com/adventboard/backend/internal/repository"
	"github.com/adventboard/backend/pkg/crypto"
	"github.com/adventboard/backend/pkg/errorx"
	"github.com/adventboard/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Register(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
	RegisterAdmin(context.Context, *model.RegisterRequest) (*model.RegisterResponse, error)
}

type authDomain struct {
	userRepo       repository.UserRepository
	passwordParams crypto.PasswordParams
}

func NewAuthDomain(userRepo repository.UserRepository, passwordParams crypto.PasswordParams) *authDomain {
	return &authDomain{
		userRepo:       userRepo,
		passwordParams: passwordParams,
	}
}

func (d *authDomain) Register(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Password is required")
	}

	_, err = d.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Email is already registered")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	hash, err := crypto.HashPassword(req.Password, d.passwordParams)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{Email: email, PasswordHash: hash}
	if err := d.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "Email is already registered")
		}

		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	return d.authResponse(ctx, user)
}

func (d *authDomain) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	invalidCredentials := errorx.New(errorx.Unauthenticated, "Invalid email or password")

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Password is required")
	}

	user, err := d.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalidCredentials
		}

		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	ok, err := crypto.VerifyPassword(user.PasswordHash, req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot verify password of user %d: %v", user.ID, err)
		return nil, errorx.Unknown
	}

	if !ok {
		return nil, invalidCredentials
	}

	return d.authResponse(ctx, user)
}

// RegisterAdmin creates an admin account, or promotes the existing account with the same email
// and resets its password.
func (d *authDomain) RegisterAdmin(
	ctx context.Context, req *model.RegisterRequest,
) (*model.RegisterResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Password is required")
	}

	hash, err := crypto.HashPassword(req.Password, d.passwordParams)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		user.IsAdmin = true
		user.PasswordHash = hash
		if err := d.userRepo.UpdateByID(ctx, user.ID, user); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot promote user %d: %v", user.ID, err)
			return nil, errorx.Unknown
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &entity.User{Email: email, PasswordHash: hash, IsAdmin: true}
		if err := d.userRepo.Create(ctx, user); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create admin: %v", err)
			return nil, errorx.Unknown
		}

	default:
		xcontext.Logger(ctx).Errorf("Cannot get user by email: %v", err)
		return nil, errorx.Unknown
	}

	return d.authResponse(ctx, user)
}

func (d *authDomain) authResponse(ctx context.Context, user *entity.User) (*model.AuthResponse, error) {
	token, err := xcontext.TokenEngine(ctx).Generate(
		strconv.FormatUint(uint64(user.ID), 10),
		model.AccessToken{
			ID:    user.ID,
			Email: user.Email,
			Role:  string(user.Role()),
		},
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AuthResponse{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
	}, nil
}
