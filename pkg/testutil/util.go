package testutil

import (
	"context"
	"time"

	"github.com/adventboard/backend/config"
	"github.com/adventboard/backend/internal/model"
	"github.com/adventboard/backend/migration"
	"github.com/adventboard/backend/pkg/authenticator"
	"github.com/adventboard/backend/pkg/logger"
	"github.com/adventboard/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewMockConfigs() config.Configs {
	return config.Configs{
		Env: "test",
		Database: config.DatabaseConfigs{
			Driver:   "sqlite",
			Database: ":memory:",
		},
		ApiServer: config.APIServerConfigs{
			BasePath: "/api",
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Secret:     "secret",
				Issuer:     "adventboard",
				Audience:   "adventboard-web",
				Expiration: time.Minute,
			},
		},
		Log: config.LogConfigs{Level: "error"},
	}
}

// NewMockContext returns a context carrying a fresh in-memory database with every table
// migrated.
func NewMockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	// Every connection to :memory: opens a distinct database.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	cfg := NewMockConfigs()

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(cfg.Log.Level))
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.AccessToken))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func NewMockContextWithUserID(ctx context.Context, userID uint) context.Context {
	if ctx == nil {
		ctx = NewMockContext()
	}

	return xcontext.WithRequestUserID(ctx, userID)
}
