package migration

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/pkg/logger"
	"github.com/adventboard/backend/pkg/xcontext"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed postgres/*.sql mysql/*.sql
var migrationsFS embed.FS

type migrateLogger struct {
	logger logger.Logger
}

func (l *migrateLogger) Printf(format string, v ...any) {
	l.logger.Infof(strings.TrimSpace(format), v...)
}

func (l *migrateLogger) Verbose() bool {
	return false
}

// Migrate applies the versioned SQL migrations of the configured driver. The sqlite driver has no
// versioned migrations and falls back to AutoMigrate.
func Migrate(ctx context.Context) error {
	cfg := xcontext.Configs(ctx).Database
	if cfg.Driver == "sqlite" {
		return AutoMigrate(ctx)
	}

	db, err := xcontext.DB(ctx).DB()
	if err != nil {
		return err
	}

	var dir string
	var driver database.Driver
	switch cfg.Driver {
	case "mysql":
		dir = "mysql"
		driver, err = mysql.WithInstance(db, &mysql.Config{})
	case "", "postgres":
		dir = "postgres"
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return err
	}

	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, cfg.Database, driver)
	if err != nil {
		return err
	}

	m.Log = &migrateLogger{logger: xcontext.Logger(ctx)}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// AutoMigrate creates the tables straight from the entity definitions.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Competition{},
		&entity.Participant{},
		&entity.DailyChallenge{},
		&entity.Completion{},
	)
}
