package main

import (
	"github.com/adventboard/backend/internal/model"
	"github.com/adventboard/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCreateAdmin(cctx *cli.Context) error {
	s.loadDatabase()
	s.loadRepos()
	s.loadDomains()

	resp, err := s.authDomain.RegisterAdmin(s.ctx, &model.RegisterRequest{
		Email:    cctx.String("email"),
		Password: cctx.String("password"),
	})
	if err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Admin %s is ready with id %d", resp.Email, resp.ID)
	return nil
}
