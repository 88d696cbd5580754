package round

import (
	"cardroom_backend/internal/model"
	"errors"
	"testing"
)

func players() []model.Player {
	return []model.Player{
		{ID: "a", Name: "Ann", Bet: 20},
		{ID: "b", Name: "Bo"},
	}
}

func TestNewDraftDefaults(t *testing.T) {
	tests := []struct {
		game       model.Game
		dealerHand string
		outcome    string
		pnlA       float64
		pnlB       float64
	}{
		{model.GameNiuniu, "none", "none", 0, 0},
		{model.GameBlackjack, "", "lose", -20, -10},
	}

	for _, tt := range tests {
		t.Run(string(tt.game), func(t *testing.T) {
			d, err := Policy{Game: tt.game}.NewDraft(players(), 10)
			if err != nil {
				t.Fatalf("NewDraft: %v", err)
			}
			if d.DealerHand != tt.dealerHand {
				t.Errorf("DealerHand = %q, want %q", d.DealerHand, tt.dealerHand)
			}
			if len(d.Entries) != 2 {
				t.Fatalf("entries = %d", len(d.Entries))
			}
			a, b := d.Entry("a"), d.Entry("b")
			if a.Bet != 20 || b.Bet != 10 {
				t.Errorf("bets = %v, %v; want 20, 10", a.Bet, b.Bet)
			}
			if a.Outcome != tt.outcome || a.PnL != tt.pnlA || b.PnL != tt.pnlB {
				t.Errorf("a = %+v, b = %+v", *a, *b)
			}
		})
	}
}

func TestDraftOverridePrecedence(t *testing.T) {
	p := Policy{Game: model.GameNiuniu}
	d, err := p.NewDraft(players(), 10)
	if err != nil {
		t.Fatal(err)
	}

	if err := p.SetOutcome(d, "a", "niu8"); err != nil {
		t.Fatal(err)
	}
	if got := d.Entry("a").PnL; got != 40 {
		t.Fatalf("pnl after outcome = %v, want 40", got)
	}

	if err := p.SetPnL(d, "a", 33.333); err != nil {
		t.Fatal(err)
	}
	if e := d.Entry("a"); e.PnL != 33.33 || !e.CustomPnL {
		t.Fatalf("after SetPnL = %+v", *e)
	}

	// ручной pnl переживает смену ставки и руки дилера
	if err := p.SetBet(d, "a", 50); err != nil {
		t.Fatal(err)
	}
	if err := p.SetDealerHand(d, "Bomb"); err != nil {
		t.Fatal(err)
	}
	if e := d.Entry("a"); e.PnL != 33.33 || e.Bet != 50 {
		t.Errorf("custom entry recomputed: %+v", *e)
	}
	if got := d.Entry("b").PnL; got != -50 {
		t.Errorf("b pnl vs bomb = %v, want -50", got)
	}

	// новый исход сбрасывает ручной pnl
	if err := p.SetOutcome(d, "a", "wuxiao"); err != nil {
		t.Fatal(err)
	}
	if e := d.Entry("a"); e.CustomPnL || e.PnL != 250 {
		t.Errorf("after new outcome = %+v, want pnl 250", *e)
	}
}

func TestDraftErrors(t *testing.T) {
	p := Policy{Game: model.GameNiuniu}
	d, _ := p.NewDraft(players(), 10)

	if err := p.SetOutcome(d, "zz", "bull1"); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("SetOutcome unknown player err = %v", err)
	}
	if err := p.SetBet(d, "zz", 1); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("SetBet unknown player err = %v", err)
	}
	if err := p.SetPnL(d, "zz", 1); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("SetPnL unknown player err = %v", err)
	}

	before := *d.Entry("a")
	if err := p.SetOutcome(d, "a", "niu11"); err == nil {
		t.Error("SetOutcome accepted niu11")
	}
	if got := *d.Entry("a"); got != before {
		t.Errorf("entry changed on error: %+v", got)
	}

	if err := p.SetDealerHand(d, "garbage"); err == nil {
		t.Error("SetDealerHand accepted garbage")
	}
	if d.DealerHand != "none" {
		t.Errorf("DealerHand = %q after error", d.DealerHand)
	}
}

func TestBlackjackDealerHand(t *testing.T) {
	p := Policy{Game: model.GameBlackjack}
	d, _ := p.NewDraft(players(), 10)

	if err := p.SetOutcome(d, "a", "20"); err == nil {
		t.Fatal("hand value accepted without a dealer hand")
	}
	if err := p.SetDealerHand(d, "18"); err != nil {
		t.Fatal(err)
	}
	if err := p.SetOutcome(d, "a", "20"); err != nil {
		t.Fatal(err)
	}
	if e := d.Entry("a"); e.PnL != 20 || e.Outcome != "20" {
		t.Errorf("a = %+v", *e)
	}
	if err := p.SetDealerHand(d, "bj"); err != nil {
		t.Fatal(err)
	}
	if d.DealerHand != "blackjack" {
		t.Errorf("DealerHand = %q", d.DealerHand)
	}
	if e := d.Entry("a"); e.PnL != -20 {
		t.Errorf("a vs blackjack = %+v", *e)
	}
	if e := d.Entry("b"); e.PnL != -10 || e.Outcome != "lose" {
		t.Errorf("b = %+v", *e)
	}
}
