package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all server settings, parsed from the environment.
type Config struct {
	Addr string `env:"ADDR" envDefault:":5000"`

	// The default secret is deliberately weak and shared; it matches what
	// deployed clients were issued tokens with. Override JWT_SECRET
	// anywhere that matters.
	JWTSecret string `env:"JWT_SECRET" envDefault:"access"`

	Storage Storage `envPrefix:"STORAGE_"`
	Session Session `envPrefix:"SESSION_"`
}

// Storage selects the backend for users and contacts. The default keeps
// everything in process memory; sqlite3/mysql plug a real database behind
// the same repository interfaces.
type Storage struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
	DSN    string `env:"DSN" envDefault:":memory:"`
}

// Session selects the session store and lifetime.
type Session struct {
	Store         string        `env:"STORE" envDefault:"memory"`
	TTL           time.Duration `env:"TTL" envDefault:"1h"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
}

// Load reads an optional .env file and parses the environment. A missing
// .env file is fine; a malformed environment is not.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
