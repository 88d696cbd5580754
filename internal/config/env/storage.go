package env

import (
	"cardroom_backend/internal/config"
	"fmt"
	"os"
	"strings"
)

const (
	storageDriverEnvName = "STORAGE_DRIVER"
	logLevelEnvName      = "LOG_LEVEL"
)

type storageConfig struct {
	driver string
}

func NewStorageConfig() (config.StorageConfig, error) {
	driver := strings.ToLower(os.Getenv(storageDriverEnvName))
	switch driver {
	case "":
		driver = config.StorageMemory
	case config.StorageMemory, config.StoragePostgres:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}

	return &storageConfig{driver: driver}, nil
}

func (cfg *storageConfig) Driver() string {
	return cfg.driver
}

type logConfig struct {
	level string
}

func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if len(level) == 0 {
		level = "info"
	}
	return &logConfig{level: level}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}
