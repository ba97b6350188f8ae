package main

import (
	"github.com/adventboard/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.loadDatabase()
	s.migrateDB()
	xcontext.Logger(s.ctx).Infof("Database is up to date")
	return nil
}
