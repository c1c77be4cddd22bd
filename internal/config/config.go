package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs from the environment.
type Config struct {
	Addr         string // listen address
	Env          string // "development" or "production"
	DBPath       string // empty = in-memory store
	ResendKey    string // empty = email delivery disabled
	EmailFrom    string
	EmailReplyTo string
	DemoEmail    string // demo sign-in account
	DemoName     string
	DemoPassword string
}

// Load reads configuration from the environment, with a .env file as an
// optional local convenience, and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the real environment
	// (Docker, CI, systemd unit).
	_ = godotenv.Load()

	cfg := &Config{
		Addr:         envOrDefault("EXPBUDDY_ADDR", ":8080"),
		Env:          envOrDefault("EXPBUDDY_ENV", "development"),
		DBPath:       os.Getenv("EXPBUDDY_DB"),
		ResendKey:    os.Getenv("EXPBUDDY_RESEND_KEY"),
		EmailFrom:    envOrDefault("EXPBUDDY_EMAIL_FROM", "ExperienceBuddy <noreply@experiencebuddy.app>"),
		EmailReplyTo: envOrDefault("EXPBUDDY_REPLY_TO", "hello@experiencebuddy.app"),
		DemoEmail:    envOrDefault("EXPBUDDY_DEMO_EMAIL", "demo@experiencebuddy.app"),
		DemoName:     envOrDefault("EXPBUDDY_DEMO_NAME", "Current User"),
		DemoPassword: envOrDefault("EXPBUDDY_DEMO_PASSWORD", "experience-demo"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("config: EXPBUDDY_ADDR cannot be blank")
	}
	switch c.Env {
	case "development", "production":
	default:
		return fmt.Errorf("config: EXPBUDDY_ENV must be development or production, got %q", c.Env)
	}
	if !strings.Contains(c.EmailFrom, "@") {
		return fmt.Errorf("config: EXPBUDDY_EMAIL_FROM must be an email address, got %q", c.EmailFrom)
	}
	if c.Env == "production" && strings.TrimSpace(c.DemoPassword) == "" {
		return fmt.Errorf("config: EXPBUDDY_DEMO_PASSWORD cannot be blank in production")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
