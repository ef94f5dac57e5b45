package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	Source  SourceConfig
	Auth    AuthConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
	Version  string
}

type DBConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxIdleConns int
	MaxOpenConns int
	AutoMigrate  bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// SourceConfig describes the upstream API records are pulled from.
type SourceConfig struct {
	BaseURL string
	Timeout time.Duration
}

// AuthConfig guards the sync trigger. An empty secret disables the guard.
type AuthConfig struct {
	Secret      string
	TokenExpiry time.Duration
}

// TracingConfig enables OTLP export when Endpoint is set.
type TracingConfig struct {
	Endpoint    string
	ServiceName string
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8001")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("APP_VERSION", "1.0.0")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_IDLE_CONNS", 10)
	viper.SetDefault("DB_MAX_OPEN_CONNS", 100)
	viper.SetDefault("DB_AUTO_MIGRATE", true)

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_TTL", "168h")

	viper.SetDefault("API_SOURCE_URL", "http://localhost:8000")
	viper.SetDefault("API_SOURCE_TIMEOUT", "10s")

	viper.SetDefault("AUTH_TOKEN_EXPIRY", "24h")

	viper.SetDefault("OTEL_SERVICE_NAME", "replica-sync")
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
			Version:  viper.GetString("APP_VERSION"),
		},
		DB: DBConfig{
			Host:         viper.GetString("DB_HOST"),
			Port:         viper.GetString("DB_PORT"),
			User:         viper.GetString("DB_USER"),
			Password:     viper.GetString("DB_PASSWORD"),
			Name:         viper.GetString("DB_NAME"),
			SSLMode:      viper.GetString("DB_SSLMODE"),
			MaxIdleConns: viper.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: viper.GetInt("DB_MAX_OPEN_CONNS"),
			AutoMigrate:  viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			TTL:      viper.GetDuration("REDIS_TTL"),
		},
		Source: SourceConfig{
			BaseURL: viper.GetString("API_SOURCE_URL"),
			Timeout: viper.GetDuration("API_SOURCE_TIMEOUT"),
		},
		Auth: AuthConfig{
			Secret:      viper.GetString("AUTH_SECRET"),
			TokenExpiry: viper.GetDuration("AUTH_TOKEN_EXPIRY"),
		},
		Tracing: TracingConfig{
			Endpoint:    viper.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
			ServiceName: viper.GetString("OTEL_SERVICE_NAME"),
		},
	}

	if config.Source.Timeout <= 0 {
		config.Source.Timeout = 10 * time.Second
	}

	return config, nil
}
