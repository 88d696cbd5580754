package blackjack

import (
	"cardroom_backend/pkg/cards"
	"strconv"
)

const (
	target        = 21
	dealerStandOn = 17
)

// Result - лучшая сумма руки, тузы считаются за 1 при переборе
type Result struct {
	Total     int  `json:"total"`
	Soft      bool `json:"soft"`
	Blackjack bool `json:"blackjack"`
	Bust      bool `json:"bust"`
}

// Value - очки карты в 21, туз считается за 11
func Value(c cards.Card) int {
	switch c.Rank {
	case cards.Ace:
		return 11
	case cards.Jack, cards.Queen, cards.King:
		return 10
	}
	return cards.Value(c)
}

func Evaluate(hand []cards.Card) Result {
	if len(hand) == 0 {
		return Result{}
	}

	total, aces := 0, 0
	for _, c := range hand {
		total += Value(c)
		if c.Rank == cards.Ace {
			aces++
		}
	}
	for total > target && aces > 0 {
		total -= 10
		aces--
	}

	return Result{
		Total:     total,
		Soft:      aces > 0,
		Blackjack: len(hand) == 2 && total == target,
		Bust:      total > target,
	}
}

// Display - "BJ", "Bust" или сумма очков
func (r Result) Display() string {
	switch {
	case r.Blackjack:
		return "BJ"
	case r.Bust:
		return "Bust"
	}
	return strconv.Itoa(r.Total)
}
