package repository

import (
	"context"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/pkg/xcontext"
)

type CompletionRepository interface {
	Create(ctx context.Context, data *entity.Completion) error
	Exists(ctx context.Context, dailyChallengeID, userID uint, partNumber int) (bool, error)
	Count(ctx context.Context, dailyChallengeID uint, partNumber int) (int64, error)
	GetListByCompetitionID(ctx context.Context, competitionID uint) ([]entity.Completion, error)
}

type completionRepository struct{}

func NewCompletionRepository() *completionRepository {
	return &completionRepository{}
}

func (r *completionRepository) Create(ctx context.Context, data *entity.Completion) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *completionRepository) Exists(
	ctx context.Context, dailyChallengeID, userID uint, partNumber int,
) (bool, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Completion{}).
		Where("daily_challenge_id=? AND user_id=? AND part_number=?", dailyChallengeID, userID, partNumber).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *completionRepository) Count(ctx context.Context, dailyChallengeID uint, partNumber int) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Completion{}).
		Where("daily_challenge_id=? AND part_number=?", dailyChallengeID, partNumber).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *completionRepository) GetListByCompetitionID(
	ctx context.Context, competitionID uint,
) ([]entity.Completion, error) {
	challengeIDs := xcontext.DB(ctx).
		Model(&entity.DailyChallenge{}).
		Select("id").
		Where("competition_id=?", competitionID)

	var result []entity.Completion
	err := xcontext.DB(ctx).
		Preload("User").
		Preload("DailyChallenge").
		Where("daily_challenge_id IN (?)", challengeIDs).
		Order("completion_time ASC, id ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
