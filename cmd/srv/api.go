package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adventboard/backend/internal/middleware"
	"github.com/adventboard/backend/pkg/prometheus"
	"github.com/adventboard/backend/pkg/router"
	"github.com/adventboard/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.loadDatabase()
	if xcontext.Configs(s.ctx).Database.AutoMigrate {
		s.migrateDB()
	}
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx)
	s.server = &http.Server{
		Addr:              cfg.ApiServer.Address(),
		Handler:           s.router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(s.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot shutdown server: %v", err)
		}
	}()

	if cfg.Metrics.Port != "" {
		go s.startMetrics(cfg.Metrics.Address())
	}

	xcontext.Logger(s.ctx).Infof("Starting server on %s%s", cfg.ApiServer.Address(), cfg.ApiServer.BasePath)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stopped")
	return nil
}

func (s *srv) startMetrics(address string) {
	metricsSrv := &http.Server{
		Addr:              address,
		Handler:           prometheus.NewHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	xcontext.Logger(s.ctx).Infof("Starting prometheus on %s", address)
	if err := metricsSrv.ListenAndServe(); err != nil {
		xcontext.Logger(s.ctx).Errorf("Prometheus server stopped: %v", err)
	}
}

func (s *srv) loadRouter() {
	s.router = router.New(xcontext.DB(s.ctx), xcontext.Configs(s.ctx), xcontext.Logger(s.ctx))
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	// Auth API
	{
		router.POST(s.router, "/auth/register", s.authDomain.Register)
		router.POST(s.router, "/auth/login", s.authDomain.Login)
	}

	// These following APIs need a valid access token.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.NewAuthVerifier().Middleware())
	{
		router.POST(authRouter, "/competitions/:id/join", s.competitionDomain.Join)
		router.POST(authRouter, "/competitions/:id/days/:day/complete", s.challengeDomain.Complete)
	}

	// These following APIs need an admin access token.
	adminRouter := authRouter.Branch()
	adminRouter.Before(middleware.NewOnlyAdmin().Middleware())
	{
		router.POST(adminRouter, "/competitions", s.competitionDomain.Create)
		router.PUT(adminRouter, "/competitions/:id", s.competitionDomain.Update)
	}

	// Public API
	{
		router.GET(s.router, "/competitions", s.competitionDomain.GetList)
		router.GET(s.router, "/competitions/:id", s.competitionDomain.Get)
		router.GET(s.router, "/competitions/:id/participants", s.competitionDomain.GetParticipants)
		router.GET(s.router, "/competitions/:id/completions", s.challengeDomain.GetCompletions)
	}
}
