package round

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/pkg/money"
	"errors"
)

var ErrEntryNotFound = errors.New("no draft entry for player")

// WithDealer добавляет запись дилера с pnl, обратным сумме остальных.
// Присланная запись дилера заменяется, раунд всегда в сумме даёт ноль.
// Без дилера результаты не меняются.
func WithDealer(results []model.RoundResult, dealer *model.Player) []model.RoundResult {
	if dealer == nil {
		return append([]model.RoundResult(nil), results...)
	}
	out := make([]model.RoundResult, 0, len(results)+1)
	for _, r := range results {
		if r.PlayerID != dealer.ID {
			out = append(out, r)
		}
	}

	var sum float64
	for _, r := range out {
		sum += r.PnL
	}
	return append(out, model.RoundResult{
		PlayerID:   dealer.ID,
		PlayerName: dealer.Name,
		Bet:        0,
		Outcome:    model.DealerOutcome,
		Multiplier: 1,
		PnL:        money.Round2(-sum),
	})
}

// Apply прибавляет pnl к очкам игроков. Неизвестные игроки пропускаются.
func Apply(players []model.Player, results []model.RoundResult) {
	shift(players, results, 1)
}

// Revert отменяет Apply.
func Revert(players []model.Player, results []model.RoundResult) {
	shift(players, results, -1)
}

func shift(players []model.Player, results []model.RoundResult, sign float64) {
	for _, r := range results {
		for i := range players {
			if players[i].ID == r.PlayerID {
				players[i].Score = money.Round2(players[i].Score + sign*r.PnL)
				break
			}
		}
	}
}

// Total - сумма pnl раунда, ноль для сбалансированного
func Total(results []model.RoundResult) float64 {
	var sum float64
	for _, r := range results {
		sum += r.PnL
	}
	return money.Round2(sum)
}
