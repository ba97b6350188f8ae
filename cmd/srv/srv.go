package main

import (
	"context"
	"net/http"

	"github.com/adventboard/backend/internal/domain"
	"github.com/adventboard/backend/internal/repository"
	"github.com/adventboard/backend/pkg/router"
	"github.com/urfave/cli/v2"
)

type srv struct {
	app    *cli.App
	ctx    context.Context
	server *http.Server
	router *router.Router

	userRepo           repository.UserRepository
	competitionRepo    repository.CompetitionRepository
	participantRepo    repository.ParticipantRepository
	dailyChallengeRepo repository.DailyChallengeRepository
	completionRepo     repository.CompletionRepository

	authDomain        domain.AuthDomain
	competitionDomain domain.CompetitionDomain
	challengeDomain   domain.ChallengeDomain
}
