package configs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

const minSecretLen = 32

type Config struct {
	AppEnv string `env:"APP_ENV" default:"development"`
	Port   string `env:"PORT" default:"8000"`

	DBDriver string `env:"DB_DRIVER" default:"sqlite"`
	DBSource string `env:"DB_SOURCE" default:"passport_applications.db"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" default:"30m"`
	JWTIssuer string        `env:"JWT_ISSUER" default:"npega"`

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	PublicDir   string `env:"PUBLIC_DIR" default:"public"`
	CORSOrigins string `env:"CORS_ORIGINS" default:"*"`

	SubmitRatePerSec float64 `env:"SUBMIT_RATE_PER_SEC" default:"1"`
	SubmitBurst      int     `env:"SUBMIT_BURST" default:"5"`

	StrictStatusTransitions bool `env:"STRICT_STATUS_TRANSITIONS" default:"false"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	required := map[string]string{
		"ADMIN_USERNAME": c.AdminUsername,
		"ADMIN_PASSWORD": c.AdminPassword,
		"JWT_SECRET":     c.JWTSecret,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	if !c.IsDevelopment() && len(c.JWTSecret) < minSecretLen {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes outside development", minSecretLen)
	}
	if c.JWTTTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.SubmitRatePerSec <= 0 || c.SubmitBurst <= 0 {
		return errors.New("SUBMIT_RATE_PER_SEC and SUBMIT_BURST must be positive")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
