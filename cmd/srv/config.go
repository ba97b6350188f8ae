package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adventboard/backend/config"
	"github.com/adventboard/backend/pkg/logger"
	"github.com/adventboard/backend/pkg/xcontext"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func defaultConfigs() config.Configs {
	return config.Configs{
		Env: "local",
		Database: config.DatabaseConfigs{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     "5432",
			Database: "adventboard",
			User:     "postgres",
		},
		ApiServer: config.APIServerConfigs{
			Port:     "8080",
			BasePath: "/api",
		},
		Auth: config.AuthConfigs{
			AccessToken: config.TokenConfigs{
				Issuer:     "adventboard",
				Audience:   "adventboard-web",
				Expiration: 7 * 24 * time.Hour,
			},
		},
		Cors: config.CorsConfigs{
			AllowedOrigins: []string{"http://localhost:5173", "http://localhost", "https://localhost"},
		},
		Log: config.LogConfigs{Level: "info"},
	}
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg := defaultConfigs()
	if path := cctx.String("config"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return err
		}
	}

	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.Database = config.DatabaseConfigs{
		Driver:      getEnv("DB_DRIVER", cfg.Database.Driver),
		Host:        getEnv("DB_HOST", cfg.Database.Host),
		Port:        getEnv("DB_PORT", cfg.Database.Port),
		Database:    getEnv("DB_DATABASE", cfg.Database.Database),
		User:        getEnv("DB_USER", cfg.Database.User),
		Password:    getEnv("DB_PASSWORD", cfg.Database.Password),
		AutoMigrate: parseBool(getEnv("DB_AUTO_MIGRATE", ""), cfg.Database.AutoMigrate),
	}
	cfg.ApiServer = config.APIServerConfigs{
		Host:     getEnv("API_HOST", cfg.ApiServer.Host),
		Port:     getEnv("API_PORT", cfg.ApiServer.Port),
		BasePath: getEnv("API_BASE_PATH", cfg.ApiServer.BasePath),
	}
	cfg.Metrics = config.MetricsConfigs{
		Host: getEnv("METRICS_HOST", cfg.Metrics.Host),
		Port: getEnv("METRICS_PORT", cfg.Metrics.Port),
	}
	cfg.Auth.AccessToken = config.TokenConfigs{
		Secret:     getEnv("TOKEN_SECRET", cfg.Auth.AccessToken.Secret),
		Issuer:     getEnv("TOKEN_ISSUER", cfg.Auth.AccessToken.Issuer),
		Audience:   getEnv("TOKEN_AUDIENCE", cfg.Auth.AccessToken.Audience),
		Expiration: parseDuration(getEnv("TOKEN_EXPIRATION", ""), cfg.Auth.AccessToken.Expiration),
	}
	cfg.Cors.AllowedOrigins = parseList(getEnv("CORS_ALLOWED_ORIGINS", ""), cfg.Cors.AllowedOrigins)
	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)

	if cfg.Auth.AccessToken.Secret == "" {
		return errors.New("TOKEN_SECRET must be set")
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(cfg.Log.Level))
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func parseBool(s string, fallback bool) bool {
	if s == "" {
		return fallback
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		panic(err)
	}

	return b
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}

	duration, err := time.ParseDuration(s)
	if err != nil {
		panic(err)
	}

	return duration
}

func parseList(s string, fallback []string) []string {
	if s == "" {
		return fallback
	}

	var result []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}
