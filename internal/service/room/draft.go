package room

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/service"
	"context"
)

// UpdateDraft правит запись черновика: ставку, исход и/или PnL вручную.
// Новый исход сбрасывает ручной PnL, ручной PnL в том же запросе побеждает
func (s *serv) UpdateDraft(ctx context.Context, upd model.DraftUpdate) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHostOrDealer(caller); err != nil {
			return err
		}
		if err := requirePlaying(room); err != nil {
			return err
		}
		if room.Draft.Entry(upd.PlayerID) == nil {
			return service.ErrPlayerNotFound
		}

		p := s.policy(room.Game)
		if upd.Bet != nil {
			if *upd.Bet <= 0 {
				return invalid("bet must be positive")
			}
			if err := p.SetBet(room.Draft, upd.PlayerID, *upd.Bet); err != nil {
				return err
			}
		}
		if upd.Outcome != nil {
			if err := p.SetOutcome(room.Draft, upd.PlayerID, *upd.Outcome); err != nil {
				return err
			}
		}
		if upd.PnL != nil {
			if err := p.SetPnL(room.Draft, upd.PlayerID, *upd.PnL); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetDealerHand выбор руки дилера, пересчитывает записи без ручного PnL
func (s *serv) SetDealerHand(ctx context.Context, hand string) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHostOrDealer(caller); err != nil {
			return err
		}
		if err := requirePlaying(room); err != nil {
			return err
		}
		return s.policy(room.Game).SetDealerHand(room.Draft, hand)
	})
}
