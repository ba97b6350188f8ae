package repository

import (
	"context"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/pkg/xcontext"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateByID(ctx context.Context, id uint, data *entity.User) error
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("email=?", email).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id uint, data *entity.User) error {
	updateMap := map[string]any{"is_admin": data.IsAdmin}
	if data.PasswordHash != "" {
		updateMap["password_hash"] = data.PasswordHash
	}

	return xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap).Error
}
