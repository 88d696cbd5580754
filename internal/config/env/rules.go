package env

import (
	"cardroom_backend/internal/config"
	"cardroom_backend/pkg/blackjack"
	"cardroom_backend/pkg/niuniu"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultBaseBet = 10

type rulesFile struct {
	DefaultBaseBet float64         `yaml:"default_base_bet"`
	Niuniu         niuniu.Rules    `yaml:"niuniu"`
	Blackjack      blackjack.Rules `yaml:"blackjack"`
}

type rulesConfig struct {
	file rulesFile
}

// NewRulesConfigFromYAML читает правила стола. Нет файла - значения по умолчанию.
func NewRulesConfigFromYAML(path string) (config.RulesConfig, error) {
	f := rulesFile{DefaultBaseBet: defaultBaseBet}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &rulesConfig{file: f}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read rules config: %w", err)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules config: %w", err)
	}
	if f.DefaultBaseBet <= 0 {
		return nil, fmt.Errorf("default_base_bet must be positive, got %v", f.DefaultBaseBet)
	}

	return &rulesConfig{file: f}, nil
}

func (cfg *rulesConfig) DefaultBaseBet() float64 {
	return cfg.file.DefaultBaseBet
}

func (cfg *rulesConfig) Niuniu() niuniu.Rules {
	return cfg.file.Niuniu
}

func (cfg *rulesConfig) Blackjack() blackjack.Rules {
	return cfg.file.Blackjack
}
