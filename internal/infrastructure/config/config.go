package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
	SMTP     SMTPConfig
}

type PostgresConfig struct {
	Host            string `env:"POSTGRES_HOST,     default=localhost"`
	Port            int    `env:"POSTGRES_PORT,     default=5432"`
	User            string `env:"POSTGRES_USER,     default=marketplace"`
	Password        string `env:"POSTGRES_PASSWORD"`
	Name            string `env:"POSTGRES_DB,       default=marketplace"`
	SSLMode         string `env:"POSTGRES_SSLMODE,  default=disable"`
	MaxOpenConns    int    `env:"POSTGRES_MAX_OPEN_CONNS, default=10"`
	MaxIdleConns    int    `env:"POSTGRES_MAX_IDLE_CONNS, default=5"`
	ConnMaxLifeMins int    `env:"POSTGRES_CONN_MAX_LIFE_MINUTES, default=30"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST, default=localhost"`
	Port     int    `env:"SMTP_PORT, default=587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM, default=no-reply@profinder.local"`
	Workers  int    `env:"MAIL_WORKERS, default=4"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
