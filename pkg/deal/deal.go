package deal

import (
	"cardroom_backend/pkg/cards"
	"fmt"
	"math/rand"
)

const (
	NiuniuHandSize    = 5
	BlackjackHandSize = 2
)

// Result - розданный стол. Deck - остаток колоды для добора и удвоений.
type Result struct {
	Deck   *cards.Deck             `json:"deck"`
	Hands  map[string][]cards.Card `json:"hands"`
	Dealer []cards.Card            `json:"dealer"`
}

// Niuniu раздаёт по пять карт каждому игроку по порядку, затем пять дилеру.
func Niuniu(playerIDs []string, dealerID string, rng *rand.Rand) (*Result, error) {
	playerIDs = withoutDealer(playerIDs, dealerID)
	deck := cards.NewShuffledDeck(rng)
	if need := NiuniuHandSize * (len(playerIDs) + 1); need > deck.Len() {
		return nil, fmt.Errorf("%w: %d cards needed for %d players", cards.ErrDeckExhausted, need, len(playerIDs))
	}

	res := &Result{Deck: deck, Hands: make(map[string][]cards.Card, len(playerIDs))}
	for _, id := range playerIDs {
		h, err := deck.DrawN(NiuniuHandSize)
		if err != nil {
			return nil, err
		}
		res.Hands[id] = h
	}
	h, err := deck.DrawN(NiuniuHandSize)
	if err != nil {
		return nil, err
	}
	res.Dealer = h

	return res, nil
}

// Blackjack раздаёт два круга по карте: игроки по порядку, затем дилер.
func Blackjack(playerIDs []string, dealerID string, rng *rand.Rand) (*Result, error) {
	playerIDs = withoutDealer(playerIDs, dealerID)
	deck := cards.NewShuffledDeck(rng)
	if need := BlackjackHandSize * (len(playerIDs) + 1); need > deck.Len() {
		return nil, fmt.Errorf("%w: %d cards needed for %d players", cards.ErrDeckExhausted, need, len(playerIDs))
	}

	res := &Result{Deck: deck, Hands: make(map[string][]cards.Card, len(playerIDs))}
	for pass := 0; pass < BlackjackHandSize; pass++ {
		for _, id := range playerIDs {
			c, err := deck.Draw()
			if err != nil {
				return nil, err
			}
			res.Hands[id] = append(res.Hands[id], c)
		}
		c, err := deck.Draw()
		if err != nil {
			return nil, err
		}
		res.Dealer = append(res.Dealer, c)
	}

	return res, nil
}

// Hit добавляет в руку верхнюю карту колоды.
func Hit(deck *cards.Deck, hand []cards.Card) ([]cards.Card, error) {
	c, err := deck.Draw()
	if err != nil {
		return hand, err
	}
	return append(hand, c), nil
}

// Double берёт ровно одну карту. Руку затем блокирует вызывающий.
func Double(deck *cards.Deck, hand []cards.Card) ([]cards.Card, error) {
	return Hit(deck, hand)
}

// withoutDealer убирает дилера из списка игроков, у дилера только своя рука.
func withoutDealer(playerIDs []string, dealerID string) []string {
	out := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		if id != dealerID {
			out = append(out, id)
		}
	}
	return out
}
