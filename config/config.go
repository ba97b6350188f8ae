package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs  `toml:"database"`
	ApiServer APIServerConfigs `toml:"api_server"`
	Metrics   MetricsConfigs   `toml:"metrics"`
	Auth      AuthConfigs      `toml:"auth"`
	Cors      CorsConfigs      `toml:"cors"`
	Log       LogConfigs       `toml:"log"`
}

type DatabaseConfigs struct {
	Driver      string `toml:"driver"`
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	Database    string `toml:"database"`
	User        string `toml:"user"`
	Password    string `toml:"password"`
	AutoMigrate bool   `toml:"auto_migrate"`
}

// ConnectionString returns the DSN understood by the gorm driver selected in Driver. For
// sqlite, Database is the file path.
func (d DatabaseConfigs) ConnectionString() string {
	switch d.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC&multiStatements=true",
			d.User,
			d.Password,
			d.Host,
			d.Port,
			d.Database,
		)
	case "sqlite":
		return d.Database
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			d.Host,
			d.Port,
			d.User,
			d.Password,
			d.Database,
		)
	}
}

type APIServerConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	BasePath string `toml:"base_path"`
}

func (s APIServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

// MetricsConfigs is the address of the prometheus endpoint. An empty Port disables it.
type MetricsConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

func (m MetricsConfigs) Address() string {
	return fmt.Sprintf("%s:%s", m.Host, m.Port)
}

type AuthConfigs struct {
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Secret     string        `toml:"secret"`
	Issuer     string        `toml:"issuer"`
	Audience   string        `toml:"audience"`
	Expiration time.Duration `toml:"expiration"`
}

type CorsConfigs struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

type LogConfigs struct {
	Level string `toml:"level"`
}
