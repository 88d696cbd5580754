package cards

import (
	"errors"
	"math/rand"
)

// ErrDeckExhausted - столу нужно больше карт, чем в одной колоде.
var ErrDeckExhausted = errors.New("deck exhausted")

// NewDeck 52 карты, упорядоченные по мастям.
func NewDeck() []Card {
	deck := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffle равномерно перемешанная копия колоды (Фишер-Йетс).
// При nil rng используется общий источник пакета.
func Shuffle(deck []Card, rng *rand.Rand) []Card {
	d := make([]Card, len(deck))
	copy(d, deck)

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	for i := len(d) - 1; i > 0; i-- {
		j := intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
	return d
}

// Deck - курсор по перемешанной колоде. Карты до Pos уже розданы.
type Deck struct {
	Cards []Card `json:"cards"`
	Pos   int    `json:"pos"`
}

func NewShuffledDeck(rng *rand.Rand) *Deck {
	return &Deck{Cards: Shuffle(NewDeck(), rng)}
}

func (d *Deck) Len() int {
	return len(d.Cards) - d.Pos
}

func (d *Deck) Draw() (Card, error) {
	if d.Len() <= 0 {
		return Card{}, ErrDeckExhausted
	}
	c := d.Cards[d.Pos]
	d.Pos++
	return c, nil
}

// DrawN берёт n карт сверху или ничего, если осталось меньше n.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n > d.Len() {
		return nil, ErrDeckExhausted
	}
	out := make([]Card, n)
	copy(out, d.Cards[d.Pos:d.Pos+n])
	d.Pos += n
	return out, nil
}

// Remaining копия нерозданных карт.
func (d *Deck) Remaining() []Card {
	out := make([]Card, d.Len())
	copy(out, d.Cards[d.Pos:])
	return out
}
