package blackjack

import "cardroom_backend/pkg/cards"

// DealerShouldHit - дилер берёт до 17 и стоит на любых 17.
func DealerShouldHit(r Result) bool {
	return !r.Bust && r.Total < dealerStandOn
}

// PlayDealer добирает дилеру, пока рука не остановится или не переберёт.
func PlayDealer(hand []cards.Card, deck *cards.Deck) ([]cards.Card, error) {
	out := append([]cards.Card(nil), hand...)
	for DealerShouldHit(Evaluate(out)) {
		c, err := deck.Draw()
		if err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Rules - необязательные правила стола
type Rules struct {
	FiveCardCharlie bool `yaml:"five_card_charlie" json:"five_card_charlie"`
}

// Play - действия с рукой игрока в раунде
type Play struct {
	Doubled     bool
	Surrendered bool
}

const charlieCards = 5

// Resolve итог розданной руки игрока против законченной руки дилера.
func Resolve(player, dealer []cards.Card, play Play, rules Rules) Outcome {
	if play.Surrendered {
		return OutcomeSurrender
	}

	pr := Evaluate(player)
	if pr.Bust {
		if play.Doubled {
			return OutcomeDoubleLose
		}
		return OutcomeBust
	}
	if rules.FiveCardCharlie && len(player) >= charlieCards {
		return OutcomeFiveCardCharlie
	}

	o, _ := CompareOutcome(exactLabel(pr), exactLabel(Evaluate(dealer)))
	if play.Doubled {
		switch o {
		case OutcomeWin, OutcomeBlackjack:
			return OutcomeDoubleWin
		case OutcomeLose:
			return OutcomeDoubleLose
		}
	}
	return o
}
