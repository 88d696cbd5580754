package blackjack

import (
	"cardroom_backend/pkg/money"
	"fmt"
	"strconv"
	"strings"
)

// HandLabel - очки руки, выбранные из списка, когда карты не раздаются:
// blackjack, от 21 до 13, "12 or less" или bust.
type HandLabel int

const (
	LabelTwelveOrLess HandLabel = 12
	LabelBlackjack    HandLabel = 22
	LabelBust         HandLabel = -1
)

func LabelOf(r Result) HandLabel {
	switch {
	case r.Blackjack:
		return LabelBlackjack
	case r.Bust:
		return LabelBust
	case r.Total <= 12:
		return LabelTwelveOrLess
	}
	return HandLabel(r.Total)
}

// exactLabel различает суммы ниже 13, для сравнения розданных карт.
func exactLabel(r Result) HandLabel {
	if r.Blackjack || r.Bust {
		return LabelOf(r)
	}
	return HandLabel(r.Total)
}

func (l HandLabel) Valid() bool {
	return l == LabelBust || l == LabelBlackjack || (l >= 0 && l <= target)
}

func (l HandLabel) String() string {
	switch l {
	case LabelBlackjack:
		return "blackjack"
	case LabelBust:
		return "bust"
	}
	if l <= LabelTwelveOrLess {
		return "12 or less"
	}
	return strconv.Itoa(int(l))
}

func ParseHandLabel(s string) (HandLabel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "blackjack", "bj":
		return LabelBlackjack, nil
	case "bust":
		return LabelBust, nil
	case "12 or less", "12-", "<=12":
		return LabelTwelveOrLess, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 13 || n > 21 {
		return 0, fmt.Errorf("%w: hand %q", ErrUnknownOutcome, s)
	}
	return HandLabel(n), nil
}

// CompareOutcome итог руки игрока против руки дилера.
// Порядок: перебор игрока, перебор дилера, блэкджек у обоих, блэкджек игрока,
// блэкджек дилера, затем большие очки.
func CompareOutcome(player, dealer HandLabel) (Outcome, error) {
	if !player.Valid() || !dealer.Valid() {
		return 0, fmt.Errorf("%w: hand %d vs %d", ErrUnknownOutcome, int(player), int(dealer))
	}

	switch {
	case player == LabelBust:
		return OutcomeLose, nil
	case dealer == LabelBust:
		if player == LabelBlackjack {
			return OutcomeBlackjack, nil
		}
		return OutcomeWin, nil
	case player == LabelBlackjack && dealer == LabelBlackjack:
		return OutcomePush, nil
	case player == LabelBlackjack:
		return OutcomeBlackjack, nil
	case dealer == LabelBlackjack:
		return OutcomeLose, nil
	case player > dealer:
		return OutcomeWin, nil
	case player < dealer:
		return OutcomeLose, nil
	}
	return OutcomePush, nil
}

// Compare - PnL ставки игрока против дилера, до центов
func Compare(bet float64, player, dealer HandLabel) (float64, error) {
	o, err := CompareOutcome(player, dealer)
	if err != nil {
		return 0, err
	}
	return money.Round2(bet * o.Payout()), nil
}
