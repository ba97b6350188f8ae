package testutil

import (
	"context"
	"time"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/pkg/crypto"
	"github.com/adventboard/backend/pkg/xcontext"
)

const FixturePassword = "password123"

var fixturePasswordParams = crypto.PasswordParams{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

var (
	AdminUser = &entity.User{
		Base:    entity.Base{ID: 1},
		Email:   "admin@adventboard.dev",
		IsAdmin: true,
	}

	User1 = &entity.User{
		Base:  entity.Base{ID: 2},
		Email: "alice@adventboard.dev",
	}

	User2 = &entity.User{
		Base:  entity.Base{ID: 3},
		Email: "bob@adventboard.dev",
	}

	User3 = &entity.User{
		Base:  entity.Base{ID: 4},
		Email: "carol@adventboard.dev",
	}

	Users = []*entity.User{AdminUser, User1, User2, User3}
)

var (
	ActiveCompetition = &entity.Competition{
		Base:      entity.Base{ID: 1},
		Name:      "Advent 2024",
		StartDate: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.December, 25, 23, 59, 59, 0, time.UTC),
		IsActive:  true,
	}

	InactiveCompetition = &entity.Competition{
		Base:      entity.Base{ID: 2},
		Name:      "Advent 2023",
		StartDate: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2023, time.December, 25, 23, 59, 59, 0, time.UTC),
		IsActive:  false,
	}

	Competitions = []*entity.Competition{ActiveCompetition, InactiveCompetition}
)

var (
	// User1 joined the active competition, User2 and User3 did not.
	Participant1 = &entity.Participant{
		Base:          entity.Base{ID: 1},
		UserID:        User1.ID,
		CompetitionID: ActiveCompetition.ID,
		JoinDate:      time.Date(2024, time.December, 1, 8, 0, 0, 0, time.UTC),
	}

	Participants = []*entity.Participant{Participant1}
)

func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertCompetitions(ctx)
	InsertParticipants(ctx)
}

func InsertUsers(ctx context.Context) {
	for _, u := range Users {
		hash, err := crypto.HashPassword(FixturePassword, fixturePasswordParams)
		if err != nil {
			panic(err)
		}

		record := *u
		record.PasswordHash = hash
		if err := xcontext.DB(ctx).Create(&record).Error; err != nil {
			panic(err)
		}
	}
}

func InsertCompetitions(ctx context.Context) {
	for _, c := range Competitions {
		record := *c
		if err := xcontext.DB(ctx).Create(&record).Error; err != nil {
			panic(err)
		}
	}
}

func InsertParticipants(ctx context.Context) {
	for _, p := range Participants {
		record := *p
		if err := xcontext.DB(ctx).Create(&record).Error; err != nil {
			panic(err)
		}
	}
}
