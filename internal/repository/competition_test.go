package repository

import (
	"testing"
	"time"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_competitionRepository_UpdateByID(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewCompetitionRepository()
	start := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	err := repo.UpdateByID(ctx, testutil.ActiveCompetition.ID, &entity.Competition{
		Name:      "Advent 2025",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 24),
		IsActive:  false,
	})
	require.NoError(t, err)

	c, err := repo.GetByID(ctx, testutil.ActiveCompetition.ID)
	require.NoError(t, err)
	require.Equal(t, "Advent 2025", c.Name)
	require.False(t, c.IsActive)
	require.True(t, start.Equal(c.StartDate))

	err = repo.UpdateByID(ctx, 999, &entity.Competition{Name: "missing"})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_competitionRepository_GetList(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewCompetitionRepository()
	competitions, err := repo.GetList(ctx)
	require.NoError(t, err)
	require.Len(t, competitions, 2)
	require.Equal(t, testutil.ActiveCompetition.ID, competitions[0].ID)
	require.Len(t, competitions[0].Participants, 1)
	require.Equal(t, testutil.User1.Email, competitions[0].Participants[0].User.Email)
	require.Empty(t, competitions[1].Participants)

	c, err := repo.GetByIDWithParticipants(ctx, testutil.ActiveCompetition.ID)
	require.NoError(t, err)
	require.Len(t, c.Participants, 1)

	_, err = repo.GetByIDWithParticipants(ctx, 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
