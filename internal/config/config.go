package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	LogLevel           string        `mapstructure:"log_level"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	DB              string        `mapstructure:"db"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"sslmode"`
	MinConns        int           `mapstructure:"min_conns"`
	MaxConns        int           `mapstructure:"max_conns"`
	AcquireTimeout  time.Duration `mapstructure:"acquire_timeout"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DB, c.SSLMode,
	)
}

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	"api.environment":            "API_ENVIRONMENT",
	"api.log_level":              "LOG_LEVEL",
	"api.port":                   "API_PORT",
	"api.base_url":               "API_BASE_URL",
	"api.request_timeout":        "API_REQUEST_TIMEOUT",
	"gin.mode":                   "GIN_MODE",
	"postgres.host":              "DB_HOST",
	"postgres.port":              "DB_PORT",
	"postgres.db":                "DB_NAME",
	"postgres.user":              "DB_USER",
	"postgres.password":          "DB_PASSWORD",
	"postgres.sslmode":           "DB_SSLMODE",
	"postgres.min_conns":         "DB_MIN_CONN",
	"postgres.max_conns":         "DB_MAX_CONN",
	"postgres.acquire_timeout":   "DB_ACQUIRE_TIMEOUT",
	"postgres.conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "5000")
	v.SetDefault("api.base_url", "localhost:5000")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})
	v.SetDefault("api.request_timeout", 10*time.Second)
	v.SetDefault("gin.mode", "debug")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.db", "campus_events")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conns", 20)
	v.SetDefault("postgres.acquire_timeout", 5*time.Second)
	v.SetDefault("postgres.conn_max_lifetime", 30*time.Minute)
}

// Load reads the YAML file at path. A missing file is not an error: defaults
// and environment variables are enough to run.
func Load(path string) (*AppConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	return decode(v)
}

// Watch calls onChange with the reloaded config each time the file at path is
// written. Reloads that fail validation are logged and dropped.
func Watch(path string, onChange func(*AppConfig)) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("os.Stat -> %w", err)
	}

	v, err := newViper(path)
	if err != nil {
		return err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		conf, err := decode(v)
		if err != nil {
			zap.L().Warn("ignoring invalid config reload", zap.String("file", e.Name), zap.Error(err))
			return
		}

		zap.L().Info("config reloaded", zap.String("file", e.Name))
		onChange(conf)
	})
	v.WatchConfig()

	return nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("v.BindEnv(%s) -> %w", key, err)
		}
	}
	if domains := os.Getenv("API_ALLOWED_CORS_DOMAINS"); domains != "" {
		v.Set("api.allowed_cors_domains", strings.Split(domains, ","))
	}

	return v, nil
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	return conf, nil
}

func (c *AppConfig) Validate() error {
	switch {
	case c.API == nil || c.Gin == nil || c.Postgres == nil:
		return errors.New("api, gin and postgres sections are required")
	case c.API.Port == "":
		return errors.New("api.port must not be empty")
	case c.API.RequestTimeout <= 0:
		return errors.New("api.request_timeout must be positive")
	case c.Postgres.MinConns < 1:
		return fmt.Errorf("postgres.min_conns must be at least 1, got %d", c.Postgres.MinConns)
	case c.Postgres.MaxConns < c.Postgres.MinConns:
		return fmt.Errorf("postgres.max_conns (%d) must not be lower than min_conns (%d)",
			c.Postgres.MaxConns, c.Postgres.MinConns)
	case c.Postgres.AcquireTimeout <= 0:
		return errors.New("postgres.acquire_timeout must be positive")
	}

	return nil
}
