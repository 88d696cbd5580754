package niuniu

import (
	"cardroom_backend/pkg/cards"
	"math/rand"
	"reflect"
	"testing"
)

func hand(t *testing.T, s string) []cards.Card {
	t.Helper()
	h, err := cards.ParseHand(s)
	if err != nil {
		t.Fatalf("ParseHand(%q): %v", s, err)
	}
	return h
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		hand       string
		category   Category
		multiplier int
		bull       int
		triple     []int
		pair       []int
	}{
		{"five small", "A♠ A♥ 2♦ 2♣ 4♠", FiveSmall, 5, 15, []int{0, 1, 2}, []int{3, 4}},
		{"five small beats bomb", "A♠ A♥ A♦ A♣ 2♠", FiveSmall, 5, 15, []int{0, 1, 2}, []int{3, 4}},
		{"bomb with king", "5♠ 5♥ 5♦ 5♣ K♠", Bomb, 5, 14, []int{0, 1, 2}, []int{3, 4}},
		{"bomb of faces", "K♠ K♥ K♦ K♣ Q♠", Bomb, 5, 14, []int{0, 1, 2}, []int{3, 4}},
		{"five face", "J♠ Q♥ K♦ J♣ Q♠", FiveFace, 5, 13, []int{0, 1, 2}, []int{3, 4}},
		{"niuniu", "10♠ J♥ Q♦ 3♣ 7♠", NiuNiu, 3, 10, []int{0, 1, 2}, []int{3, 4}},
		{"bull 9", "2♠ 8♥ K♦ 4♣ 5♠", Bull9, 3, 9, []int{0, 1, 2}, []int{3, 4}},
		{"bull 8", "3♠ 4♥ 3♦ 9♣ 9♠", Bull8, 2, 8, []int{0, 1, 2}, []int{3, 4}},
		{"bull 7", "6♠ 4♥ K♦ A♣ 6♥", Bull7, 2, 7, []int{0, 1, 2}, []int{3, 4}},
		{"bull 1 late triple", "A♠ K♥ 3♦ 7♣ 10♠", Bull1, 1, 1, []int{1, 2, 3}, []int{0, 4}},
		{"bull found on sixth triple", "2♠ 2♥ 2♦ 3♣ 5♠", Bull4, 1, 4, []int{0, 3, 4}, []int{1, 2}},
		{"no bull tries every triple", "A♠ A♥ 3♦ 5♣ 9♠", NoBull, 1, 0, []int{}, []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(hand(t, tt.hand))
			if got.Category != tt.category || got.Multiplier != tt.multiplier || got.BullNumber != tt.bull {
				t.Fatalf("Evaluate(%s) = %v x%d bull %d, want %v x%d bull %d",
					tt.hand, got.Category, got.Multiplier, got.BullNumber, tt.category, tt.multiplier, tt.bull)
			}
			if !reflect.DeepEqual(got.Triple, tt.triple) || !reflect.DeepEqual(got.Pair, tt.pair) {
				t.Fatalf("partition = %v/%v, want %v/%v", got.Triple, got.Pair, tt.triple, tt.pair)
			}
		})
	}
}

func TestEvaluateWrongSize(t *testing.T) {
	for _, s := range []string{"", "K♠ K♥ K♦ K♣", "10♠ J♥ Q♦ 3♣ 7♠ 2♥"} {
		got := Evaluate(hand(t, s))
		if got.Category != NoBull || got.Multiplier != 1 || len(got.Triple) != 0 || len(got.Pair) != 0 {
			t.Fatalf("Evaluate(%q) = %+v, want empty No Bull", s, got)
		}
	}
}

func TestEvaluateOrderIndependentCategory(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	deck := cards.NewDeck()
	for n := 0; n < 2000; n++ {
		h := cards.Shuffle(deck, rng)[:5]
		want := Evaluate(h)
		if !want.Category.Valid() {
			t.Fatalf("invalid category for %v", h)
		}
		switch want.Multiplier {
		case 1, 2, 3, 5:
		default:
			t.Fatalf("multiplier %d for %v", want.Multiplier, h)
		}

		perm := cards.Shuffle(h, rng)
		got := Evaluate(perm)
		if got.Category != want.Category || got.Multiplier != want.Multiplier {
			t.Fatalf("%v -> %v but %v -> %v", h, want.Category, perm, got.Category)
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		for _, s := range []string{c.Key(), c.Label(), c.LabelCn()} {
			got, err := ParseCategory(s)
			if err != nil || got != c {
				t.Fatalf("ParseCategory(%q) = %v, %v; want %v", s, got, err, c)
			}
		}
	}
	if _, err := ParseCategory("Bull 10"); err == nil {
		t.Fatal("expected ErrUnknownOutcome")
	}
}
