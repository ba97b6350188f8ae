package repository

import (
	"context"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type DailyChallengeRepository interface {
	// GetOrCreateForUpdate returns the challenge of the given day, creating it if it does not
	// exist yet. The returned row is locked until the surrounding transaction ends.
	GetOrCreateForUpdate(ctx context.Context, competitionID uint, dayNumber int) (*entity.DailyChallenge, error)
}

type dailyChallengeRepository struct{}

func NewDailyChallengeRepository() *dailyChallengeRepository {
	return &dailyChallengeRepository{}
}

func (r *dailyChallengeRepository) GetOrCreateForUpdate(
	ctx context.Context, competitionID uint, dayNumber int,
) (*entity.DailyChallenge, error) {
	err := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "competition_id"}, {Name: "day_number"}},
			DoNothing: true,
		}).
		Create(&entity.DailyChallenge{CompetitionID: competitionID, DayNumber: dayNumber}).Error
	if err != nil {
		return nil, err
	}

	var result entity.DailyChallenge
	err = xcontext.DB(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("competition_id=? AND day_number=?", competitionID, dayNumber).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}
