package round

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/pkg/blackjack"
	"cardroom_backend/pkg/money"
	"cardroom_backend/pkg/niuniu"
)

// Policy правит черновик открытого раунда комнаты.
type Policy struct {
	Game  model.Game
	Rules Rules
}

// NewDraft черновик с записью на каждого игрока кроме дилера.
// Ниу-ниу начинается с No Bull против No Bull, 21 - с проигранной ставки.
func (p Policy) NewDraft(players []model.Player, baseBet float64) (*model.Draft, error) {
	d := &model.Draft{Entries: make([]model.RoundResult, 0, len(players))}
	initial := blackjack.OutcomeLose.Key()
	if p.Game == model.GameNiuniu {
		d.DealerHand = niuniu.NoBull.Key()
		initial = niuniu.NoBull.Key()
	}

	for _, pl := range players {
		bet := pl.Bet
		if bet <= 0 {
			bet = baseBet
		}
		e := model.RoundResult{PlayerID: pl.ID, PlayerName: pl.Name, Bet: bet, Outcome: initial}
		if err := p.recompute(d, &e); err != nil {
			return nil, err
		}
		d.Entries = append(d.Entries, e)
	}
	return d, nil
}

// SetOutcome меняет исход записи. Новый исход сбрасывает ручной pnl.
func (p Policy) SetOutcome(d *model.Draft, playerID, outcome string) error {
	e := d.Entry(playerID)
	if e == nil {
		return ErrEntryNotFound
	}
	prev := *e
	e.Outcome = outcome
	e.CustomPnL = false
	if err := p.recompute(d, e); err != nil {
		*e = prev
		return err
	}
	return nil
}

// SetBet меняет ставку, ручной pnl остаётся как введён.
func (p Policy) SetBet(d *model.Draft, playerID string, bet float64) error {
	e := d.Entry(playerID)
	if e == nil {
		return ErrEntryNotFound
	}
	e.Bet = money.Round2(bet)
	if e.CustomPnL {
		return nil
	}
	return p.recompute(d, e)
}

// SetPnL заменяет вычисленный pnl до смены исхода.
func (p Policy) SetPnL(d *model.Draft, playerID string, pnl float64) error {
	e := d.Entry(playerID)
	if e == nil {
		return ErrEntryNotFound
	}
	e.PnL = money.Round2(pnl)
	e.CustomPnL = true
	return nil
}

// SetDealerHand меняет руку дилера и пересчитывает записи
// без ручного pnl.
func (p Policy) SetDealerHand(d *model.Draft, hand string) error {
	if p.Game == model.GameNiuniu {
		c, err := niuniu.ParseCategory(hand)
		if err != nil {
			return err
		}
		hand = c.Key()
	} else if hand != "" {
		l, err := blackjack.ParseHandLabel(hand)
		if err != nil {
			return err
		}
		hand = l.String()
	}

	prev := d.DealerHand
	d.DealerHand = hand
	for i := range d.Entries {
		if d.Entries[i].CustomPnL {
			continue
		}
		if err := p.recompute(d, &d.Entries[i]); err != nil {
			d.DealerHand = prev
			return err
		}
	}
	return nil
}

// Results копия записей черновика для отправки.
func (p Policy) Results(d *model.Draft) []model.RoundResult {
	if d == nil {
		return nil
	}
	return append([]model.RoundResult(nil), d.Entries...)
}

func (p Policy) recompute(d *model.Draft, e *model.RoundResult) error {
	res, err := Resolve(p.Game, e.Outcome, e.Bet, d.DealerHand, p.Rules)
	if err != nil {
		return err
	}
	e.Outcome = res.Outcome
	e.Multiplier = res.Multiplier
	e.PnL = res.PnL
	return nil
}

// AddEntry добавляет опоздавшего игрока с начальным исходом.
func (p Policy) AddEntry(d *model.Draft, pl model.Player, baseBet float64) error {
	if d == nil || d.Entry(pl.ID) != nil {
		return nil
	}
	extra, err := p.NewDraft([]model.Player{pl}, baseBet)
	if err != nil {
		return err
	}
	e := extra.Entries[0]
	if err := p.recompute(d, &e); err != nil {
		return err
	}
	d.Entries = append(d.Entries, e)
	return nil
}

// RemoveEntry удаляет запись игрока, если она есть.
func (p Policy) RemoveEntry(d *model.Draft, playerID string) {
	if d == nil {
		return
	}
	for i := range d.Entries {
		if d.Entries[i].PlayerID == playerID {
			d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)
			return
		}
	}
}
