package main

import (
	"github.com/adventboard/backend/internal/domain"
	"github.com/adventboard/backend/internal/model"
	"github.com/adventboard/backend/internal/repository"
	"github.com/adventboard/backend/migration"
	"github.com/adventboard/backend/pkg/authenticator"
	"github.com/adventboard/backend/pkg/crypto"
	"github.com/adventboard/backend/pkg/xcontext"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx).Database

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.Open(cfg.ConnectionString())
	case "sqlite":
		dialector = sqlite.Open(cfg.ConnectionString())
	default:
		dialector = postgres.Open(cfg.ConnectionString())
	}

	logLevel := gormlogger.Warn
	if xcontext.Configs(s.ctx).Env == "local" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) loadDatabase() {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.ctx = xcontext.WithTokenEngine(s.ctx,
		authenticator.NewTokenEngine[model.AccessToken](xcontext.Configs(s.ctx).Auth.AccessToken))
}

func (s *srv) migrateDB() {
	if err := migration.Migrate(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.competitionRepo = repository.NewCompetitionRepository()
	s.participantRepo = repository.NewParticipantRepository()
	s.dailyChallengeRepo = repository.NewDailyChallengeRepository()
	s.completionRepo = repository.NewCompletionRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, crypto.DefaultPasswordParams)
	s.competitionDomain = domain.NewCompetitionDomain(s.competitionRepo, s.participantRepo)
	s.challengeDomain = domain.NewChallengeDomain(
		s.competitionRepo,
		s.participantRepo,
		s.dailyChallengeRepo,
		s.completionRepo,
	)
}
