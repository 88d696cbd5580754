package cards

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewDeckUnique(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("len = %d, want 52", len(deck))
	}
	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Fatalf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	deck := NewDeck()
	orig := make([]Card, len(deck))
	copy(orig, deck)

	shuffled := Shuffle(deck, rand.New(rand.NewSource(7)))

	for i := range deck {
		if deck[i] != orig[i] {
			t.Fatalf("input mutated at %d", i)
		}
	}
	if len(shuffled) != len(deck) {
		t.Fatalf("len = %d", len(shuffled))
	}
	seen := make(map[Card]int)
	for _, c := range shuffled {
		seen[c]++
	}
	for _, c := range deck {
		if seen[c] != 1 {
			t.Fatalf("card %v appears %d times", c, seen[c])
		}
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	a := Shuffle(NewDeck(), rand.New(rand.NewSource(42)))
	b := Shuffle(NewDeck(), rand.New(rand.NewSource(42)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different order at %d", i)
		}
	}
}

func TestDeckCursor(t *testing.T) {
	d := NewShuffledDeck(rand.New(rand.NewSource(1)))
	first := d.Cards[0]

	c, err := d.Draw()
	if err != nil || c != first {
		t.Fatalf("Draw = %v, %v; want %v", c, err, first)
	}
	if d.Len() != 51 {
		t.Fatalf("Len = %d, want 51", d.Len())
	}

	hand, err := d.DrawN(5)
	if err != nil || len(hand) != 5 {
		t.Fatalf("DrawN: %v %v", hand, err)
	}
	if len(d.Remaining()) != 46 {
		t.Fatalf("Remaining = %d, want 46", len(d.Remaining()))
	}

	if _, err := d.DrawN(47); !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
	if d.Len() != 46 {
		t.Fatal("failed DrawN must not consume cards")
	}

	if _, err := d.DrawN(46); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Draw(); !errors.Is(err, ErrDeckExhausted) {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
}
