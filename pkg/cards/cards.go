package cards

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

var (
	Suits = []Suit{Spades, Hearts, Diamonds, Clubs}
	Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
)

// ErrParse оборачивается каждой ParseError.
var ErrParse = errors.New("malformed card")

type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", ErrParse.Error(), e.Input)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// Card - неизменяемая пара (ранг, масть).
type Card struct {
	Rank Rank
	Suit Suit
}

func New(r Rank, s Suit) Card {
	return Card{Rank: r, Suit: s}
}

func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value - очки карты в ниу-ниу: A=1, 10/J/Q/K=10, остальные по номиналу
func Value(c Card) int {
	switch c.Rank {
	case Ace:
		return 1
	case Ten, Jack, Queen, King:
		return 10
	}
	n, _ := strconv.Atoi(string(c.Rank))
	return n
}

func IsFace(c Card) bool {
	return c.Rank == Jack || c.Rank == Queen || c.Rank == King
}

func IsRed(c Card) bool {
	return c.Suit == Hearts || c.Suit == Diamonds
}

var suitLetters = map[string]Suit{
	"S": Spades, "H": Hearts, "D": Diamonds, "C": Clubs,
}

// Parse - разбирает "<ранг><масть>", например "10♦" или "Qs".
// Масть - символ или ASCII буква (S, H, D, C).
func Parse(s string) (Card, error) {
	s = strings.TrimSpace(s)
	last, size := utf8.DecodeLastRuneInString(s)
	if last == utf8.RuneError || size == len(s) {
		return Card{}, &ParseError{Input: s}
	}

	suit := Suit(string(last))
	if letter, ok := suitLetters[strings.ToUpper(string(last))]; ok {
		suit = letter
	}
	if !validSuit(suit) {
		return Card{}, &ParseError{Input: s}
	}

	rank := Rank(strings.ToUpper(s[:len(s)-size]))
	if rank == "T" {
		rank = Ten
	}
	if !validRank(rank) {
		return Card{}, &ParseError{Input: s}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParse паникует на неверной строке. Для тестовых данных.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseHand разбирает список карт через пробел или запятую.
func ParseHand(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	hand := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := Parse(f)
		if err != nil {
			return nil, err
		}
		hand = append(hand, c)
	}
	return hand, nil
}

func validSuit(s Suit) bool {
	for _, v := range Suits {
		if v == s {
			return true
		}
	}
	return false
}

func validRank(r Rank) bool {
	for _, v := range Ranks {
		if v == r {
			return true
		}
	}
	return false
}
