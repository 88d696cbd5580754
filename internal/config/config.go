package config

import (
	"cardroom_backend/pkg/blackjack"
	"cardroom_backend/pkg/niuniu"
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type StorageConfig interface {
	Driver() string
}

type LogConfig interface {
	Level() string
}

type RulesConfig interface {
	DefaultBaseBet() float64
	Niuniu() niuniu.Rules
	Blackjack() blackjack.Rules
}
