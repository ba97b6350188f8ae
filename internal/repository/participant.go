package repository

import (
	"context"
	"errors"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/pkg/xcontext"
	"gorm.io/gorm"
)

const leaderboardOrder = "total_points DESC, join_date ASC, id ASC"

type ParticipantRepository interface {
	Create(ctx context.Context, data *entity.Participant) error
	Get(ctx context.Context, userID, competitionID uint) (*entity.Participant, error)
	GetList(ctx context.Context, competitionID uint) ([]entity.Participant, error)
	Increase(ctx context.Context, userID, competitionID uint, points int) error
}

type participantRepository struct{}

func NewParticipantRepository() *participantRepository {
	return &participantRepository{}
}

func (r *participantRepository) Create(ctx context.Context, data *entity.Participant) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *participantRepository) Get(ctx context.Context, userID, competitionID uint) (*entity.Participant, error) {
	var result entity.Participant
	err := xcontext.DB(ctx).
		Where("user_id=? AND competition_id=?", userID, competitionID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *participantRepository) GetList(ctx context.Context, competitionID uint) ([]entity.Participant, error) {
	var result []entity.Participant
	err := xcontext.DB(ctx).
		Preload("User").
		Where("competition_id=?", competitionID).
		Order(leaderboardOrder).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *participantRepository) Increase(ctx context.Context, userID, competitionID uint, points int) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Participant{}).
		Where("user_id=? AND competition_id=?", userID, competitionID).
		Update("total_points", gorm.Expr("total_points+?", points))

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of rows effected is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
