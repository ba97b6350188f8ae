package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adventboard/backend/internal/common"
	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/internal/model"
	"github.com/adventboard/backend/internal/repository"
	"github.com/adventboard/backend/pkg/errorx"
	"github.com/adventboard/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type ChallengeDomain interface {
	Complete(context.Context, *model.CompleteChallengeRequest) (*model.CompleteChallengeResponse, error)
	GetCompletions(context.Context, *model.GetCompletionsRequest) (*model.GetCompletionsResponse, error)
}

type challengeDomain struct {
	competitionRepo    repository.CompetitionRepository
	participantRepo    repository.ParticipantRepository
	dailyChallengeRepo repository.DailyChallengeRepository
	completionRepo     repository.CompletionRepository
}

func NewChallengeDomain(
	competitionRepo repository.CompetitionRepository,
	participantRepo repository.ParticipantRepository,
	dailyChallengeRepo repository.DailyChallengeRepository,
	completionRepo repository.CompletionRepository,
) *challengeDomain {
	return &challengeDomain{
		competitionRepo:    competitionRepo,
		participantRepo:    participantRepo,
		dailyChallengeRepo: dailyChallengeRepo,
		completionRepo:     completionRepo,
	}
}

func (d *challengeDomain) Complete(
	ctx context.Context, req *model.CompleteChallengeRequest,
) (*model.CompleteChallengeResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	competition, err := d.competitionRepo.GetByID(ctx, req.CompetitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found competition")
		}

		xcontext.Logger(ctx).Errorf("Cannot get competition %d: %v", req.CompetitionID, err)
		return nil, errorx.Unknown
	}

	if !competition.IsActive {
		return nil, errorx.New(errorx.Unavailable, "Competition is not active")
	}

	if req.DayNumber < entity.MinDayNumber || req.DayNumber > entity.MaxDayNumber {
		return nil, errorx.New(errorx.BadRequest, "Day must be between %d and %d",
			entity.MinDayNumber, entity.MaxDayNumber)
	}

	if req.PartNumber != 1 && req.PartNumber != 2 {
		return nil, errorx.New(errorx.BadRequest, "Part must be 1 or 2")
	}

	if _, err := d.participantRepo.Get(ctx, userID, competition.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unavailable, "You must join the competition first")
		}

		xcontext.Logger(ctx).Errorf("Cannot get participant: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.RollbackDBTransaction(ctx)

	// The challenge row stays locked until commit, so completions of the same day are
	// serialized and positions are assigned in commit order.
	challenge, err := d.dailyChallengeRepo.GetOrCreateForUpdate(ctx, competition.ID, req.DayNumber)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get or create daily challenge: %v", err)
		return nil, errorx.Unknown
	}

	alreadyCompleted := errorx.New(errorx.AlreadyExists, "You already completed this part")
	exists, err := d.completionRepo.Exists(ctx, challenge.ID, userID, req.PartNumber)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check completion: %v", err)
		return nil, errorx.Unknown
	}

	if exists {
		return nil, alreadyCompleted
	}

	count, err := d.completionRepo.Count(ctx, challenge.ID, req.PartNumber)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count completions: %v", err)
		return nil, errorx.Unknown
	}

	completion := &entity.Completion{
		DailyChallengeID: challenge.ID,
		UserID:           userID,
		PartNumber:       req.PartNumber,
		Position:         int(count) + 1,
		CompletionTime:   time.Now(),
	}

	if err := d.completionRepo.Create(ctx, completion); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, alreadyCompleted
		}

		xcontext.Logger(ctx).Errorf("Cannot create completion: %v", err)
		return nil, errorx.Unknown
	}

	points := common.CalculatePoints(completion.Position)
	if err := d.participantRepo.Increase(ctx, userID, competition.ID, points); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase points of participant: %v", err)
		return nil, errorx.Unknown
	}

	participant, err := d.participantRepo.Get(ctx, userID, competition.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get participant: %v", err)
		return nil, errorx.Unknown
	}

	if err := xcontext.CommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit completion: %v", err)
		return nil, errorx.Unknown
	}

	common.PromCounters[common.ChallengeCompletionTotal].WithLabelValues(fmt.Sprint(req.PartNumber)).Inc()

	return &model.CompleteChallengeResponse{
		Position:    completion.Position,
		Points:      points,
		TotalPoints: participant.TotalPoints,
	}, nil
}

func (d *challengeDomain) GetCompletions(
	ctx context.Context, req *model.GetCompletionsRequest,
) (*model.GetCompletionsResponse, error) {
	if _, err := d.competitionRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found competition")
		}

		xcontext.Logger(ctx).Errorf("Cannot get competition %d: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	completions, err := d.completionRepo.GetListByCompetitionID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get completions of competition %d: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	result := model.GetCompletionsResponse{}
	for i := range completions {
		result = append(result, model.ConvertCompletion(&completions[i]))
	}

	return &result, nil
}
