package blackjack

import (
	"errors"
	"testing"
)

func TestPnL(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    float64
	}{
		{OutcomeBlackjack, 15},
		{OutcomeWin, 10},
		{OutcomePush, 0},
		{OutcomeLose, -10},
		{OutcomeBust, -10},
		{OutcomeSurrender, -5},
		{OutcomeDoubleWin, 20},
		{OutcomeDoubleLose, -20},
		{OutcomeFiveCardCharlie, 20},
	}
	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			got, err := PnL(10, tt.outcome)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("PnL = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPnLUnknown(t *testing.T) {
	if _, err := PnL(10, Outcome(42)); !errors.Is(err, ErrUnknownOutcome) {
		t.Fatalf("expected ErrUnknownOutcome, got %v", err)
	}
}

func TestParseOutcome(t *testing.T) {
	for _, o := range Outcomes() {
		for _, s := range []string{o.Key(), o.String()} {
			got, err := ParseOutcome(s)
			if err != nil || got != o {
				t.Fatalf("ParseOutcome(%q) = %v, %v", s, got, err)
			}
		}
	}
	if _, err := ParseOutcome("split"); !errors.Is(err, ErrUnknownOutcome) {
		t.Fatalf("expected ErrUnknownOutcome, got %v", err)
	}
}
