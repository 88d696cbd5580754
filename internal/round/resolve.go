package round

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/pkg/blackjack"
	"cardroom_backend/pkg/money"
	"cardroom_backend/pkg/niuniu"
	"errors"
	"fmt"
)

var ErrUnknownGame = errors.New("unknown game")

// Rules - правила комнаты для обеих игр
type Rules struct {
	Niuniu    niuniu.Rules
	Blackjack blackjack.Rules
}

// Resolution - pnl записи вместе с каноническим исходом
type Resolution struct {
	Outcome    string
	Multiplier float64
	PnL        float64
}

// Resolve переводит исход и ставку в pnl со знаком.
//
// Ниу-ниу: outcome и dealerHand - категории, пустой dealerHand - No Bull.
// 21: если задан dealerHand, очки руки ("19", "blackjack") сравниваются
// с ним, иначе outcome - итог раздачи ("win", "double_win").
func Resolve(game model.Game, outcome string, bet float64, dealerHand string, rules Rules) (Resolution, error) {
	switch game {
	case model.GameNiuniu:
		return resolveNiuniu(outcome, bet, dealerHand, rules.Niuniu)
	case model.GameBlackjack:
		return resolveBlackjack(outcome, bet, dealerHand)
	}
	return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownGame, game)
}

func resolveNiuniu(outcome string, bet float64, dealerHand string, rules niuniu.Rules) (Resolution, error) {
	player, err := niuniu.ParseCategory(outcome)
	if err != nil {
		return Resolution{}, err
	}
	dealer := niuniu.NoBull
	if dealerHand != "" {
		dealer, err = niuniu.ParseCategory(dealerHand)
		if err != nil {
			return Resolution{}, err
		}
	}
	return Resolution{
		Outcome:    player.Key(),
		Multiplier: float64(player.Multiplier()),
		PnL:        niuniu.PnL(bet, player, dealer, rules),
	}, nil
}

func resolveBlackjack(outcome string, bet float64, dealerHand string) (Resolution, error) {
	// очки игрока против очков дилера
	if dealerHand != "" {
		if player, err := blackjack.ParseHandLabel(outcome); err == nil {
			dealer, err := blackjack.ParseHandLabel(dealerHand)
			if err != nil {
				return Resolution{}, err
			}
			o, err := blackjack.CompareOutcome(player, dealer)
			if err != nil {
				return Resolution{}, err
			}
			return Resolution{
				Outcome:    player.String(),
				Multiplier: o.Payout(),
				PnL:        money.Round2(bet * o.Payout()),
			}, nil
		}
	}

	o, err := blackjack.ParseOutcome(outcome)
	if err != nil {
		return Resolution{}, err
	}
	pnl, err := blackjack.PnL(bet, o)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Outcome: o.Key(), Multiplier: o.Payout(), PnL: pnl}, nil
}

// CanonicalOutcome проверяет исход для игры и возвращает его ключ.
// Для 21 подходит итог раздачи или очки руки.
func CanonicalOutcome(game model.Game, outcome string) (string, error) {
	switch game {
	case model.GameNiuniu:
		c, err := niuniu.ParseCategory(outcome)
		if err != nil {
			return "", err
		}
		return c.Key(), nil
	case model.GameBlackjack:
		if o, err := blackjack.ParseOutcome(outcome); err == nil {
			return o.Key(), nil
		}
		l, err := blackjack.ParseHandLabel(outcome)
		if err != nil {
			return "", fmt.Errorf("%w: %q", blackjack.ErrUnknownOutcome, outcome)
		}
		return l.String(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGame, game)
}
