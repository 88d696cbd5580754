package model

import (
	"cardroom_backend/internal/model"
	"time"
)

// Строка таблицы rooms. Вложенное состояние хранится в JSONB колонках.

type Player struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	IsHost    bool    `json:"is_host"`
	IsDealer  bool    `json:"is_dealer"`
	Bet       float64 `json:"bet"`
	Connected bool    `json:"connected"`
}

type RoundResult struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Bet        float64 `json:"bet"`
	Outcome    string  `json:"outcome"`
	Multiplier float64 `json:"multiplier"`
	PnL        float64 `json:"pnl"`
	CustomPnL  bool    `json:"custom_pnl,omitempty"`
}

type Round struct {
	Number    int           `json:"number"`
	Results   []RoundResult `json:"results"`
	Timestamp time.Time     `json:"timestamp"`
}

type Draft struct {
	DealerHand string        `json:"dealer_hand"`
	Entries    []RoundResult `json:"entries"`
}

type Room struct {
	ID           string
	Game         string
	Status       string
	CurrentRound int
	BaseBet      float64
	Players      []Player
	Rounds       []Round
	Draft        *Draft
	Table        *model.Table
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
