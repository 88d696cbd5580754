package money

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.1 + 0.2, 0.3},
		{7.5 * 1.5, 11.25},
		{-12.346, -12.35},
		{15, 15},
		{-0.001, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSum(t *testing.T) {
	if got := Sum(0.1, 0.2, -0.3); got != 0 {
		t.Fatalf("Sum = %v, want 0", got)
	}
	if got := Sum(10, 15.5, -5.25); got != 20.25 {
		t.Fatalf("Sum = %v, want 20.25", got)
	}
}
