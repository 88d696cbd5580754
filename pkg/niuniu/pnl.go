package niuniu

import "cardroom_backend/pkg/money"

// Rules - правила стола, которые отличаются между комнатами.
type Rules struct {
	// TiesFavorDealer - при равных категориях выигрывает дилер, а не ничья.
	TiesFavorDealer bool `yaml:"ties_favor_dealer" json:"ties_favor_dealer"`
}

// Compare 1 - выиграл игрок, -1 - дилер, 0 - ничья.
func Compare(player, dealer Category, rules Rules) int {
	switch {
	case player.Beats(dealer):
		return 1
	case dealer.Beats(player):
		return -1
	case rules.TiesFavorDealer:
		return -1
	}
	return 0
}

// PnL - выплата по ставке игрока против руки дилера со знаком.
// Ставка умножается на больший из двух множителей.
func PnL(bet float64, player, dealer Category, rules Rules) float64 {
	mult := player.Multiplier()
	if dealer.Multiplier() > mult {
		mult = dealer.Multiplier()
	}

	switch Compare(player, dealer, rules) {
	case 1:
		return money.Round2(bet * float64(mult))
	case -1:
		return money.Round2(-bet * float64(mult))
	}
	return 0
}
