package model

import (
	"cardroom_backend/pkg/blackjack"
	"cardroom_backend/pkg/cards"
)

// Hand - карты одного места в раздаче
type Hand struct {
	Cards       []cards.Card `json:"cards"`
	Doubled     bool         `json:"doubled,omitempty"`
	Stood       bool         `json:"stood,omitempty"`
	Surrendered bool         `json:"surrendered,omitempty"`
}

// Locked - в руку больше нельзя брать карты
func (h *Hand) Locked() bool {
	return h.Doubled || h.Stood || h.Surrendered || blackjack.Evaluate(h.Cards).Bust
}

// Table - карты текущего раунда. Сбрасывается по окончании раунда.
type Table struct {
	Deck   *cards.Deck      `json:"deck"`
	Hands  map[string]*Hand `json:"hands"`
	Dealer Hand             `json:"dealer"`
}

func (h Hand) clone() Hand {
	h.Cards = append([]cards.Card(nil), h.Cards...)
	return h
}

func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	c := &Table{Dealer: t.Dealer.clone()}
	if t.Deck != nil {
		c.Deck = &cards.Deck{Cards: append([]cards.Card(nil), t.Deck.Cards...), Pos: t.Deck.Pos}
	}
	if t.Hands != nil {
		c.Hands = make(map[string]*Hand, len(t.Hands))
		for id, h := range t.Hands {
			hc := h.clone()
			c.Hands[id] = &hc
		}
	}
	return c
}
