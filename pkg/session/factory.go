package session

import "fmt"

// Store driver identifiers.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type Config struct {
	Store         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// NewRepo builds a session repository for the configured store.
func NewRepo(cfg Config) (Repository, error) {
	switch cfg.Store {
	case "", StoreMemory:
		return NewMemoryRepo(), nil
	case StoreRedis:
		return NewRedisRepo(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("unsupported session store: %s", cfg.Store)
	}
}
