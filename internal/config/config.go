// Package config loads BIZTIME_* environment variables (and a .env file when
// present) into Config.
package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const Prefix = "BIZTIME_"

type Config struct {
	AppPort string `koanf:"app_port" validate:"required,numeric"`
	Env     string `koanf:"env" validate:"required"`

	LogLevel string `koanf:"log_level" validate:"required,oneof=trace debug info warn error fatal panic disabled"`

	DBDriver         string `koanf:"db_driver" validate:"required,oneof=mysql postgres sqlite"`
	DBHost           string `koanf:"db_host" validate:"required_unless=DBDriver sqlite"`
	DBPort           string `koanf:"db_port" validate:"omitempty,numeric"`
	DBName           string `koanf:"db_name" validate:"required_unless=DBDriver sqlite"`
	DBUser           string `koanf:"db_user" validate:"required_unless=DBDriver sqlite"`
	DBPass           string `koanf:"db_pass"`
	DBSSLMode        string `koanf:"db_sslmode"`
	DBPath           string `koanf:"db_path" validate:"required_if=DBDriver sqlite"`
	DBAutoMigrate    bool   `koanf:"db_auto_migrate"`
	DBConnectRetries int    `koanf:"db_connect_retries" validate:"gte=0"`

	RedisAddr string `koanf:"redis_addr"`
	RedisDB   int    `koanf:"redis_db" validate:"gte=0"`

	IdempTTLSecs    int  `koanf:"idempotency_ttl_seconds" validate:"gt=0"`
	LegacyStatus    bool `koanf:"legacy_status"`
	ShutdownTimeout int  `koanf:"shutdown_timeout_seconds" validate:"gt=0"`
}

func Default() *Config {
	return &Config{
		AppPort:          "8080",
		Env:              "local",
		LogLevel:         "info",
		DBDriver:         "mysql",
		DBHost:           "mysql",
		DBPort:           "3306",
		DBName:           "biztime",
		DBUser:           "biztime",
		DBPass:           "biztime",
		DBSSLMode:        "disable",
		DBPath:           "biztime.db",
		DBAutoMigrate:    true,
		DBConnectRetries: 5,
		IdempTTLSecs:     300,
		ShutdownTimeout:  10,
	}
}

// Load overlays BIZTIME_* variables on Default and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(Prefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, Prefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	c := Default()
	if err := k.Unmarshal("", c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.DBDriver = strings.ToLower(c.DBDriver)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) Pretty() bool { return c.Env == "local" }

func (c *Config) Addr() string { return ":" + c.AppPort }

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}

func (c *Config) ShutdownGrace() time.Duration {
	return time.Duration(c.ShutdownTimeout) * time.Second
}

// DSN renders the connection string for DBDriver.
func (c *Config) DSN() string {
	switch c.DBDriver {
	case "postgres":
		sslmode := c.DBSSLMode
		if sslmode == "" {
			sslmode = "disable"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName, sslmode)
	case "sqlite":
		return c.DBPath + "?_foreign_keys=on"
	default:
		// parseTime needed for DATETIME
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
			c.DBUser, c.DBPass, net.JoinHostPort(c.DBHost, c.DBPort), c.DBName)
	}
}
