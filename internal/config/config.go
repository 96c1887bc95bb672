package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN renders the pgx connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type LoggerConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type MailConfig struct {
	Host               string
	Port               int
	User               string
	Password           string
	SenderAddress      string
	SenderName         string
	InsecureSkipVerify bool
	RetryCount         int
	RetryBackoffMs     int
	TestRecipient      string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "waltz")
	v.SetDefault("DATABASE_PASSWORD", "waltz")
	v.SetDefault("DATABASE_NAME", "waltz")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("LOGGER_FILE", "")
	v.SetDefault("LOGGER_MAX_SIZE_MB", 50)
	v.SetDefault("LOGGER_MAX_BACKUPS", 5)
	v.SetDefault("LOGGER_MAX_AGE_DAYS", 30)
	v.SetDefault("MAIL_HOST", "localhost")
	v.SetDefault("MAIL_PORT", 587)
	v.SetDefault("MAIL_USER", "")
	v.SetDefault("MAIL_PASSWORD", "")
	v.SetDefault("MAIL_SENDER_ADDRESS", "noreply@waltz.local")
	v.SetDefault("MAIL_SENDER_NAME", "Waltz")
	v.SetDefault("MAIL_INSECURE_SKIP_VERIFY", false)
	v.SetDefault("MAIL_RETRY_COUNT", 3)
	v.SetDefault("MAIL_RETRY_BACKOFF_MS", 100)
	v.SetDefault("MAIL_TEST_RECIPIENT", "admin@waltz.local")

	// Env
	v.AutomaticEnv()

	lifetime, err := time.ParseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"))
	if err != nil {
		lifetime = 30 * time.Minute
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: lifetime,
		},
		Logger: LoggerConfig{
			Level:      v.GetString("LOGGER_LEVEL"),
			Format:     v.GetString("LOGGER_FORMAT"),
			File:       v.GetString("LOGGER_FILE"),
			MaxSizeMB:  v.GetInt("LOGGER_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOGGER_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOGGER_MAX_AGE_DAYS"),
		},
		Mail: MailConfig{
			Host:               v.GetString("MAIL_HOST"),
			Port:               v.GetInt("MAIL_PORT"),
			User:               v.GetString("MAIL_USER"),
			Password:           v.GetString("MAIL_PASSWORD"),
			SenderAddress:      v.GetString("MAIL_SENDER_ADDRESS"),
			SenderName:         v.GetString("MAIL_SENDER_NAME"),
			InsecureSkipVerify: v.GetBool("MAIL_INSECURE_SKIP_VERIFY"),
			RetryCount:         v.GetInt("MAIL_RETRY_COUNT"),
			RetryBackoffMs:     v.GetInt("MAIL_RETRY_BACKOFF_MS"),
			TestRecipient:      v.GetString("MAIL_TEST_RECIPIENT"),
		},
	}

	return cfg, nil
}
