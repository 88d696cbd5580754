package blackjack

import (
	"cardroom_backend/pkg/money"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownOutcome = errors.New("unknown blackjack outcome")

// Outcome - итог руки игрока против дилера
type Outcome int

const (
	OutcomeBlackjack Outcome = iota
	OutcomeWin
	OutcomePush
	OutcomeLose
	OutcomeBust
	OutcomeSurrender
	OutcomeDoubleWin
	OutcomeDoubleLose
	OutcomeFiveCardCharlie
)

type outcomeInfo struct {
	key    string
	label  string
	payout float64
}

var outcomes = [...]outcomeInfo{
	OutcomeBlackjack:       {"blackjack", "Blackjack", 1.5},
	OutcomeWin:             {"win", "Win", 1},
	OutcomePush:            {"push", "Push", 0},
	OutcomeLose:            {"lose", "Lose", -1},
	OutcomeBust:            {"bust", "Bust", -1},
	OutcomeSurrender:       {"surrender", "Surrender", -0.5},
	OutcomeDoubleWin:       {"double_win", "Double Win", 2},
	OutcomeDoubleLose:      {"double_lose", "Double Lose", -2},
	OutcomeFiveCardCharlie: {"five_card_charlie", "5-Card Charlie", 2},
}

func Outcomes() []Outcome {
	out := make([]Outcome, len(outcomes))
	for i := range outcomes {
		out[i] = Outcome(i)
	}
	return out
}

func (o Outcome) Valid() bool {
	return o >= OutcomeBlackjack && o <= OutcomeFiveCardCharlie
}

func (o Outcome) Key() string {
	if !o.Valid() {
		return ""
	}
	return outcomes[o].key
}

func (o Outcome) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomes[o].label
}

// Payout - множитель ставки со знаком
func (o Outcome) Payout() float64 {
	if !o.Valid() {
		return 0
	}
	return outcomes[o].payout
}

func (o Outcome) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOutcome, int(o))
	}
	return []byte(o.Key()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	parsed, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOutcome принимает ключ ("double_win") или название ("Double Win").
func ParseOutcome(s string) (Outcome, error) {
	s = strings.TrimSpace(s)
	for i, info := range outcomes {
		if strings.EqualFold(s, info.key) || strings.EqualFold(s, info.label) {
			return Outcome(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}

// PnL - выигрыш или проигрыш по ставке со знаком, до центов
func PnL(bet float64, o Outcome) (float64, error) {
	if !o.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownOutcome, int(o))
	}
	return money.Round2(bet * o.Payout()), nil
}
