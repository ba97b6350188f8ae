package domain

import (
	"context"
	"errors"
	"time"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/internal/model"
	"github.com/adventboard/backend/internal/repository"
	"github.com/adventboard/backend/pkg/errorx"
	"github.com/adventboard/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CompetitionDomain interface {
	Create(context.Context, *model.CreateCompetitionRequest) (*model.CreateCompetitionResponse, error)
	Update(context.Context, *model.UpdateCompetitionRequest) (*model.UpdateCompetitionResponse, error)
	GetList(context.Context, *model.GetCompetitionsRequest) (*model.GetCompetitionsResponse, error)
	Get(context.Context, *model.GetCompetitionRequest) (*model.GetCompetitionResponse, error)
	Join(context.Context, *model.JoinCompetitionRequest) (*model.JoinCompetitionResponse, error)
	GetParticipants(context.Context, *model.GetParticipantsRequest) (*model.GetParticipantsResponse, error)
}

type competitionDomain struct {
	competitionRepo repository.CompetitionRepository
	participantRepo repository.ParticipantRepository
}

func NewCompetitionDomain(
	competitionRepo repository.CompetitionRepository,
	participantRepo repository.ParticipantRepository,
) *competitionDomain {
	return &competitionDomain{
		competitionRepo: competitionRepo,
		participantRepo: participantRepo,
	}
}

func (d *competitionDomain) Create(
	ctx context.Context, req *model.CreateCompetitionRequest,
) (*model.CreateCompetitionResponse, error) {
	name, err := validateCompetition(req.Name, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	competition := &entity.Competition{
		Name:      name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  true,
	}

	if err := d.competitionRepo.Create(ctx, competition); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create competition: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCompetitionResponse{Competition: model.ConvertCompetition(competition)}, nil
}

func (d *competitionDomain) Update(
	ctx context.Context, req *model.UpdateCompetitionRequest,
) (*model.UpdateCompetitionResponse, error) {
	name, err := validateCompetition(req.Name, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	if _, err := d.getCompetition(ctx, req.ID); err != nil {
		return nil, err
	}

	err = d.competitionRepo.UpdateByID(ctx, req.ID, &entity.Competition{
		Name:      name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  req.IsActive,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update competition %d: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	competition, err := d.competitionRepo.GetByIDWithParticipants(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get competition %d: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	return &model.UpdateCompetitionResponse{Competition: model.ConvertCompetition(competition)}, nil
}

func (d *competitionDomain) GetList(
	ctx context.Context, req *model.GetCompetitionsRequest,
) (*model.GetCompetitionsResponse, error) {
	competitions, err := d.competitionRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get competition list: %v", err)
		return nil, errorx.Unknown
	}

	result := model.GetCompetitionsResponse{}
	for i := range competitions {
		result = append(result, model.ConvertCompetition(&competitions[i]))
	}

	return &result, nil
}

func (d *competitionDomain) Get(
	ctx context.Context, req *model.GetCompetitionRequest,
) (*model.GetCompetitionResponse, error) {
	competition, err := d.competitionRepo.GetByIDWithParticipants(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found competition")
		}

		xcontext.Logger(ctx).Errorf("Cannot get competition %d: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	return &model.GetCompetitionResponse{Competition: model.ConvertCompetition(competition)}, nil
}

func (d *competitionDomain) Join(
	ctx context.Context, req *model.JoinCompetitionRequest,
) (*model.JoinCompetitionResponse, error) {
	userID := xcontext.RequestUserID(ctx)

	competition, err := d.getCompetition(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !competition.IsActive {
		return nil, errorx.New(errorx.Unavailable, "Cannot join an inactive competition")
	}

	_, err = d.participantRepo.Get(ctx, userID, competition.ID)
	if err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "You already joined this competition")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get participant: %v", err)
		return nil, errorx.Unknown
	}

	err = d.participantRepo.Create(ctx, &entity.Participant{
		UserID:        userID,
		CompetitionID: competition.ID,
		JoinDate:      time.Now(),
		TotalPoints:   0,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "You already joined this competition")
		}

		xcontext.Logger(ctx).Errorf("Cannot create participant: %v", err)
		return nil, errorx.Unknown
	}

	return &model.JoinCompetitionResponse{Message: "Joined the competition successfully"}, nil
}

func (d *competitionDomain) GetParticipants(
	ctx context.Context, req *model.GetParticipantsRequest,
) (*model.GetParticipantsResponse, error) {
	if _, err := d.getCompetition(ctx, req.ID); err != nil {
		return nil, err
	}

	participants, err := d.participantRepo.GetList(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get participants of competition %d: %v", req.ID, err)
		return nil, errorx.Unknown
	}

	result := model.GetParticipantsResponse{}
	for i := range participants {
		result = append(result, model.ConvertParticipant(&participants[i]))
	}

	return &result, nil
}

func (d *competitionDomain) getCompetition(ctx context.Context, id uint) (*entity.Competition, error) {
	competition, err := d.competitionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found competition")
		}

		xcontext.Logger(ctx).Errorf("Cannot get competition %d: %v", id, err)
		return nil, errorx.Unknown
	}

	return competition, nil
}
