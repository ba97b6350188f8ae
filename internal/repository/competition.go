package repository

import (
	"context"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CompetitionRepository interface {
	Create(ctx context.Context, data *entity.Competition) error
	GetByID(ctx context.Context, id uint) (*entity.Competition, error)
	GetByIDWithParticipants(ctx context.Context, id uint) (*entity.Competition, error)
	GetList(ctx context.Context) ([]entity.Competition, error)
	UpdateByID(ctx context.Context, id uint, data *entity.Competition) error
}

type competitionRepository struct{}

func NewCompetitionRepository() *competitionRepository {
	return &competitionRepository{}
}

func preloadParticipants(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order(leaderboardOrder)
		}).
		Preload("Participants.User")
}

func (r *competitionRepository) Create(ctx context.Context, data *entity.Competition) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *competitionRepository) GetByID(ctx context.Context, id uint) (*entity.Competition, error) {
	var record entity.Competition
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *competitionRepository) GetByIDWithParticipants(
	ctx context.Context, id uint,
) (*entity.Competition, error) {
	var record entity.Competition
	err := preloadParticipants(xcontext.DB(ctx)).Where("id=?", id).Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *competitionRepository) GetList(ctx context.Context) ([]entity.Competition, error) {
	var result []entity.Competition
	if err := preloadParticipants(xcontext.DB(ctx)).Order("id ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateByID replaces every mutable field, including zero values.
func (r *competitionRepository) UpdateByID(ctx context.Context, id uint, data *entity.Competition) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Competition{}).
		Where("id=?", id).
		Select("name", "start_date", "end_date", "is_active").
		Updates(data)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
