package room

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/service"
	"cardroom_backend/pkg/logger"
	"cardroom_backend/pkg/settle"
	"context"
)

func settlementOf(room *model.Room) *model.Settlement {
	balances := make([]settle.Balance, 0, len(room.Players))
	for _, p := range room.Players {
		balances = append(balances, settle.Balance{Name: p.Name, Amount: p.Score})
	}

	return &model.Settlement{
		Balances:  balances,
		Transfers: settle.Compute(balances),
		Balanced:  settle.Check(balances) == nil,
	}
}

// Settlement - расчёт переводов по текущим счетам, комната не меняется
func (s *serv) Settlement(ctx context.Context) (*model.Settlement, error) {
	room, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return settlementOf(room), nil
}

// EndSession закрывает комнату и возвращает итоговые переводы
func (s *serv) EndSession(ctx context.Context) (*model.Settlement, error) {
	room, err := s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHostOrDealer(caller); err != nil {
			return err
		}
		if room.Status == model.StatusPlaying {
			return service.ErrRoundInProgress
		}
		room.Status = model.StatusSettled
		room.Draft = nil
		room.Table = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	res := settlementOf(room)
	if !res.Balanced {
		logger.Warnw("scores do not sum to zero at settlement", "room", room.ID, "balances", res.Balances)
	}

	s.statsRepo.SessionSettled(len(res.Transfers))
	logger.Infow("session settled", "room", room.ID, "transfers", len(res.Transfers))
	return res, nil
}

func (s *serv) Stats(_ context.Context) model.Stats {
	return s.statsRepo.Stats()
}
