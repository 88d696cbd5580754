package cards

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Card
	}{
		{"A♠", Card{Ace, Spades}},
		{"10♦", Card{Ten, Diamonds}},
		{"Qh", Card{Queen, Hearts}},
		{"tc", Card{Ten, Clubs}},
		{" 7♣ ", Card{Seven, Clubs}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"", "♠", "1♠", "11♥", "Kx", "KK"} {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("Parse(%q) expected error", in)
		}
		var pe *ParseError
		if !errors.As(err, &pe) || !errors.Is(err, ErrParse) {
			t.Fatalf("Parse(%q) error %v is not a ParseError", in, err)
		}
	}
}

func TestValue(t *testing.T) {
	tests := map[string]int{
		"A♠": 1, "2♥": 2, "9♦": 9, "10♣": 10, "J♠": 10, "Q♥": 10, "K♦": 10,
	}
	for in, want := range tests {
		if got := Value(MustParse(in)); got != want {
			t.Errorf("Value(%s) = %d, want %d", in, got, want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, c := range NewDeck() {
		b, err := c.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Card
		if err := back.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", b, err)
		}
		if back != c {
			t.Fatalf("round trip %v -> %v", c, back)
		}
	}
}

func TestParseHand(t *testing.T) {
	hand, err := ParseHand("A♠, 10♥ K♦")
	if err != nil {
		t.Fatal(err)
	}
	if len(hand) != 3 || hand[1] != (Card{Ten, Hearts}) {
		t.Fatalf("unexpected hand %v", hand)
	}
	if _, err := ParseHand("A♠ Z♥"); !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestColorAndFace(t *testing.T) {
	if !IsRed(MustParse("3♥")) || IsRed(MustParse("3♣")) {
		t.Fatal("IsRed mismatch")
	}
	if !IsFace(MustParse("J♣")) || IsFace(MustParse("10♣")) {
		t.Fatal("IsFace mismatch")
	}
}
