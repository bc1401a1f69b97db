package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultJWTSecret is used when JWT_SECRET is unset or empty. It is public knowledge, so any
// deployment relying on it issues forgeable tokens.
const DefaultJWTSecret = "hemolink-secret-key-2024"

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Env    string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8000"`
	DBURL  string `env:"MONGO_URL,required,notEmpty"`
	DBName string `env:"DB_NAME,required,notEmpty"`

	// envDefault must equal DefaultJWTSecret; an empty JWT_SECRET also falls back to it
	JWTSecret string `env:"JWT_SECRET" envDefault:"hemolink-secret-key-2024"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,https://donorflow-6.preview.emergentagent.com"`

	ServiceName  string `env:"SERVICE_NAME" envDefault:"hemolink-api"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads .env (when present) into the process environment and parses it.
func Load() (Config, error) {
	// a missing .env is fine, the process environment may carry everything
	_ = godotenv.Load()

	return parse(env.Options{})
}

// LoadFrom parses configuration from the given variables only. Used by tests.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// UsesDefaultSecret reports whether tokens are signed with the built-in fallback.
func (c Config) UsesDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func (c Config) IsDev() bool {
	return c.Env == "dev"
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
