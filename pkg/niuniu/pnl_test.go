package niuniu

import "testing"

func TestPnL(t *testing.T) {
	tests := []struct {
		name   string
		player Category
		dealer Category
		rules  Rules
		want   float64
	}{
		{"player wins with own multiplier", Bull9, Bull3, Rules{}, 30},
		{"player wins, dealer multiplier higher", Bull1, NoBull, Rules{}, 10},
		{"player loses to bomb", NiuNiu, Bomb, Rules{}, -50},
		{"dealer hand stronger but cheap", Bull2, Bull5, Rules{}, -10},
		{"loss uses larger multiplier", Bull8, Bull9, Rules{}, -30},
		{"tie is push", Bull7, Bull7, Rules{}, 0},
		{"tie favors dealer", Bull7, Bull7, Rules{TiesFavorDealer: true}, -20},
		{"no bull tie favors dealer", NoBull, NoBull, Rules{TiesFavorDealer: true}, -10},
		{"five small beats everything", FiveSmall, Bomb, Rules{}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PnL(10, tt.player, tt.dealer, tt.rules); got != tt.want {
				t.Fatalf("PnL = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPnLRoundsToCents(t *testing.T) {
	if got := PnL(3.333, Bull9, NoBull, Rules{}); got != 10 {
		t.Fatalf("PnL = %v, want 10", got)
	}
}
