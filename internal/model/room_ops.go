package model

import "cardroom_backend/pkg/settle"

type CreateRoom struct {
	Name    string
	Game    Game
	BaseBet float64
}

type JoinRoom struct {
	RoomID string
	Name   string
}

// DraftUpdate - правка одной записи черновика, nil поля не меняются.
// Применяется в порядке: ставка, исход, pnl.
type DraftUpdate struct {
	PlayerID string
	Outcome  *string
	Bet      *float64
	PnL      *float64
}

// Settlement - итоговые балансы и переводы, которые их закрывают.
// Balanced = false, если сумма очков не равна нулю.
type Settlement struct {
	Balances  []settle.Balance
	Transfers []settle.Transfer
	Balanced  bool
}
