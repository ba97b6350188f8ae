package domain

import (
	"testing"
	"time"

	"github.com/adventboard/backend/internal/model"
	"github.com/adventboard/backend/internal/repository"
	"github.com/adventboard/backend/pkg/errorx"
	"github.com/adventboard/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newCompetitionDomain() *competitionDomain {
	return NewCompetitionDomain(
		repository.NewCompetitionRepository(),
		repository.NewParticipantRepository(),
	)
}

func Test_competitionDomain_Create(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCompetitionDomain()

	start := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	resp, err := d.Create(ctx, &model.CreateCompetitionRequest{
		Name:      "  Advent 2025  ",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 24),
	})
	require.NoError(t, err)
	require.NotZero(t, resp.ID)
	require.Equal(t, "Advent 2025", resp.Name)
	require.True(t, resp.IsActive)
	require.Empty(t, resp.Participants)
	require.Equal(t, "/competitions/3", resp.CreatedLocation())

	got, err := d.Get(ctx, &model.GetCompetitionRequest{ID: resp.ID})
	require.NoError(t, err)
	require.Equal(t, "Advent 2025", got.Name)
	require.True(t, got.IsActive)
}

func Test_competitionDomain_Create_Invalid(t *testing.T) {
	ctx := testutil.NewMockContext()
	d := newCompetitionDomain()
	start := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *model.CreateCompetitionRequest
	}{
		{
			name: "empty name",
			req:  &model.CreateCompetitionRequest{Name: " ", StartDate: start, EndDate: start},
		},
		{
			name: "missing dates",
			req:  &model.CreateCompetitionRequest{Name: "Advent"},
		},
		{
			name: "end before start",
			req:  &model.CreateCompetitionRequest{Name: "Advent", StartDate: start, EndDate: start.Add(-time.Hour)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Create(ctx, tt.req)
			requireErrorCode(t, err, errorx.BadRequest)
		})
	}
}

func Test_competitionDomain_Update(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCompetitionDomain()

	resp, err := d.Update(ctx, &model.UpdateCompetitionRequest{
		ID:        testutil.ActiveCompetition.ID,
		Name:      "Advent 2024 (closed)",
		StartDate: testutil.ActiveCompetition.StartDate,
		EndDate:   testutil.ActiveCompetition.EndDate,
		IsActive:  false,
	})
	require.NoError(t, err)
	require.Equal(t, "Advent 2024 (closed)", resp.Name)
	require.False(t, resp.IsActive)
	require.Len(t, resp.Participants, 1)

	_, err = d.Update(ctx, &model.UpdateCompetitionRequest{
		ID:        999,
		Name:      "Missing",
		StartDate: testutil.ActiveCompetition.StartDate,
		EndDate:   testutil.ActiveCompetition.EndDate,
	})
	requireErrorCode(t, err, errorx.NotFound)

	// Reopen the inactive competition.
	resp, err = d.Update(ctx, &model.UpdateCompetitionRequest{
		ID:        testutil.InactiveCompetition.ID,
		Name:      testutil.InactiveCompetition.Name,
		StartDate: testutil.InactiveCompetition.StartDate,
		EndDate:   testutil.InactiveCompetition.EndDate,
		IsActive:  true,
	})
	require.NoError(t, err)
	require.True(t, resp.IsActive)
}

func Test_competitionDomain_GetList(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCompetitionDomain()

	resp, err := d.GetList(ctx, &model.GetCompetitionsRequest{})
	require.NoError(t, err)
	require.Len(t, *resp, 2)

	first := (*resp)[0]
	require.Equal(t, testutil.ActiveCompetition.ID, first.ID)
	require.Len(t, first.Participants, 1)
	require.Equal(t, testutil.User1.Email, first.Participants[0].Email)
	require.Equal(t, 0, first.Participants[0].TotalPoints)

	require.NotNil(t, (*resp)[1].Participants)
	require.Empty(t, (*resp)[1].Participants)

	_, err = d.Get(ctx, &model.GetCompetitionRequest{ID: 999})
	requireErrorCode(t, err, errorx.NotFound)
}

func Test_competitionDomain_Join(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	d := newCompetitionDomain()

	user2Ctx := testutil.NewMockContextWithUserID(ctx, testutil.User2.ID)
	resp, err := d.Join(user2Ctx, &model.JoinCompetitionRequest{ID: testutil.ActiveCompetition.ID})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Message)

	participants, err := d.GetParticipants(ctx, &model.GetParticipantsRequest{ID: testutil.ActiveCompetition.ID})
	require.NoError(t, err)
	require.Len(t, *participants, 2)
	require.Equal(t, testutil.User2.Email, (*participants)[1].Email)
	require.Equal(t, 0, (*participants)[1].TotalPoints)

	// Joining twice.
	_, err = d.Join(user2Ctx, &model.JoinCompetitionRequest{ID: testutil.ActiveCompetition.ID})
	requireErrorCode(t, err, errorx.AlreadyExists)

	_, err = d.Join(user2Ctx, &model.JoinCompetitionRequest{ID: testutil.InactiveCompetition.ID})
	requireErrorCode(t, err, errorx.Unavailable)

	_, err = d.Join(user2Ctx, &model.JoinCompetitionRequest{ID: 999})
	requireErrorCode(t, err, errorx.NotFound)

	_, err = d.GetParticipants(ctx, &model.GetParticipantsRequest{ID: 999})
	requireErrorCode(t, err, errorx.NotFound)
}
