package niuniu

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownOutcome = errors.New("unknown niuniu outcome")

// Category - одна из 14 категорий руки ниу-ниу, от слабой к сильной.
type Category int

const (
	NoBull Category = iota
	Bull1
	Bull2
	Bull3
	Bull4
	Bull5
	Bull6
	Bull7
	Bull8
	Bull9
	NiuNiu
	FiveFace
	Bomb
	FiveSmall
)

type categoryInfo struct {
	key        string
	label      string
	labelCn    string
	multiplier int
	bullNumber int
}

var categories = [...]categoryInfo{
	NoBull:    {"none", "No Bull", "无牛", 1, 0},
	Bull1:     {"niu1", "Bull 1", "牛1", 1, 1},
	Bull2:     {"niu2", "Bull 2", "牛2", 1, 2},
	Bull3:     {"niu3", "Bull 3", "牛3", 1, 3},
	Bull4:     {"niu4", "Bull 4", "牛4", 1, 4},
	Bull5:     {"niu5", "Bull 5", "牛5", 1, 5},
	Bull6:     {"niu6", "Bull 6", "牛6", 1, 6},
	Bull7:     {"niu7", "Bull 7", "牛7", 2, 7},
	Bull8:     {"niu8", "Bull 8", "牛8", 2, 8},
	Bull9:     {"niu9", "Bull 9", "牛9", 3, 9},
	NiuNiu:    {"niuniu", "Niu Niu", "牛牛", 3, 10},
	FiveFace:  {"wuhua", "5 Face", "五花牛", 5, 13},
	Bomb:      {"zhadan", "Bomb", "炸弹牛", 5, 14},
	FiveSmall: {"wuxiao", "5 Small", "五小牛", 5, 15},
}

// Categories все категории от слабой к сильной.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i := range categories {
		out[i] = Category(i)
	}
	return out
}

func (c Category) Valid() bool {
	return c >= NoBull && c <= FiveSmall
}

func (c Category) info() categoryInfo {
	if !c.Valid() {
		return categories[NoBull]
	}
	return categories[c]
}

func (c Category) Key() string { return c.info().key }
func (c Category) Label() string { return c.info().label }
func (c Category) LabelCn() string { return c.info().labelCn }
func (c Category) Multiplier() int { return c.info().multiplier }
func (c Category) BullNumber() int { return c.info().bullNumber }
func (c Category) String() string { return c.info().label }
func (c Category) Beats(o Category) bool { return c.BullNumber() > o.BullNumber() }

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOutcome, int(c))
	}
	return []byte(c.Key()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory принимает ключ ("niu7"), английское название ("Bull 7")
// или китайское ("牛7").
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for i, info := range categories {
		if strings.EqualFold(s, info.key) || strings.EqualFold(s, info.label) || s == info.labelCn {
			return Category(i), nil
		}
	}
	return NoBull, fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}

func categoryForBull(bull int) Category {
	if bull == 0 {
		return NiuNiu
	}
	return Category(bull)
}
