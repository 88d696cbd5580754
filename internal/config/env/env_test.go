package env

import (
	"cardroom_backend/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHTTPConfig(t *testing.T) {
	t.Setenv(httpHostEnvName, "127.0.0.1")
	t.Setenv(httpPortEnvName, "")

	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Address(); got != "127.0.0.1:8080" {
		t.Errorf("Address = %q", got)
	}
}

func TestJWTConfig(t *testing.T) {
	t.Setenv(accessTokenKeyEnvName, "")
	if _, err := NewJWTConfig(); err == nil {
		t.Error("expected error without secret")
	}

	t.Setenv(accessTokenKeyEnvName, "secret")
	t.Setenv(accessTokenDurationEnvName, "")
	cfg, err := NewJWTConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AccessTokenDuration() != 24*time.Hour || string(cfg.AccessTokenSecretKey()) != "secret" {
		t.Errorf("cfg = %v %q", cfg.AccessTokenDuration(), cfg.AccessTokenSecretKey())
	}

	t.Setenv(accessTokenDurationEnvName, "90m")
	cfg, err = NewJWTConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AccessTokenDuration() != 90*time.Minute {
		t.Errorf("duration = %v", cfg.AccessTokenDuration())
	}

	t.Setenv(accessTokenDurationEnvName, "soon")
	if _, err := NewJWTConfig(); err == nil {
		t.Error("expected error for bad duration")
	}
}

func TestStorageConfig(t *testing.T) {
	tests := []struct {
		env     string
		want    string
		wantErr bool
	}{
		{"", config.StorageMemory, false},
		{"memory", config.StorageMemory, false},
		{"Postgres", config.StoragePostgres, false},
		{"redis", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(storageDriverEnvName, tt.env)
			cfg, err := NewStorageConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v", err)
			}
			if !tt.wantErr && cfg.Driver() != tt.want {
				t.Errorf("Driver = %q, want %q", cfg.Driver(), tt.want)
			}
		})
	}
}

func TestPGConfig(t *testing.T) {
	t.Setenv(dsnName, "")
	if _, err := NewPGConfig(); err == nil {
		t.Error("expected error without dsn")
	}
	t.Setenv(dsnName, "postgres://localhost/cardroom")
	cfg, err := NewPGConfig()
	if err != nil || cfg.DSN() != "postgres://localhost/cardroom" {
		t.Errorf("cfg = %v, err = %v", cfg, err)
	}
}

func TestRulesConfigFromYAML(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewRulesConfigFromYAML(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultBaseBet() != defaultBaseBet || cfg.Niuniu().TiesFavorDealer || cfg.Blackjack().FiveCardCharlie {
		t.Errorf("defaults = %v %+v %+v", cfg.DefaultBaseBet(), cfg.Niuniu(), cfg.Blackjack())
	}

	path := filepath.Join(dir, "config.yaml")
	data := "default_base_bet: 25\nniuniu:\n  ties_favor_dealer: true\nblackjack:\n  five_card_charlie: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = NewRulesConfigFromYAML(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultBaseBet() != 25 || !cfg.Niuniu().TiesFavorDealer || !cfg.Blackjack().FiveCardCharlie {
		t.Errorf("loaded = %v %+v %+v", cfg.DefaultBaseBet(), cfg.Niuniu(), cfg.Blackjack())
	}

	if err := os.WriteFile(path, []byte("default_base_bet: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewRulesConfigFromYAML(path); err == nil {
		t.Error("expected error for negative base bet")
	}

	if err := os.WriteFile(path, []byte("niuniu: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewRulesConfigFromYAML(path); err == nil {
		t.Error("expected parse error")
	}
}
