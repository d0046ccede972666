// Package cfg reads runtime configuration from the environment.
package cfg

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	ModeDev        = "dev"
	ModeProduction = "prod"

	StorageMemory = "memory"
	StorageBolt   = "bolt"
)

// Config carries the runtime knobs for an embedding process. Everything has a
// sensible default so zero-config test setups keep working.
type Config struct {
	ServerMode string
	LogLevel   string

	StorageDriver string
	StoragePath   string

	PageLimit int
}

// Load pulls a .env file into the process environment if one exists, then
// builds the config. A missing .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()
	return New(), nil
}

// New reads the config from environment variables.
func New() Config {
	c := Config{
		ServerMode:    os.Getenv("SERVER_MODE"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		StorageDriver: os.Getenv("STORAGE_DRIVER"),
		StoragePath:   os.Getenv("STORAGE_PATH"),
	}
	if c.ServerMode == "" {
		c.ServerMode = ModeDev
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.StorageDriver == "" {
		c.StorageDriver = StorageMemory
	}
	if c.StoragePath == "" {
		c.StoragePath = "data/crowdfund.db"
	}
	pageLimit, err := strconv.Atoi(os.Getenv("PAGE_LIMIT"))
	if err != nil || pageLimit <= 0 {
		pageLimit = 25
	}
	c.PageLimit = pageLimit
	return c
}
