package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "adventboard"
	s.app.Usage = "Advent challenge competition tracker"
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a TOML configuration file, environment variables take precedence",
			EnvVars: []string{"CONFIG_FILE"},
		},
	}
	s.app.Before = s.loadConfig
	s.app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Serve the REST api for authentication, competitions and completions.`,
		},
		{
			Action:      s.startMigrate,
			Name:        "migrate",
			Usage:       "Apply database migrations",
			Category:    "Database",
			Description: `Apply every pending versioned migration of the configured database driver.`,
		},
		{
			Action:   s.startCreateAdmin,
			Name:     "create-admin",
			Usage:    "Create an admin account or promote an existing one",
			Category: "Database",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "email", Required: true},
				&cli.StringFlag{Name: "password", Required: true, EnvVars: []string{"ADMIN_PASSWORD"}},
			},
			Description: `Create an admin account with the given credentials. If the email is already
registered, the account is promoted to admin and its password is reset.`,
		},
	}
}
