package room

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/round"
	"cardroom_backend/internal/service"
	"cardroom_backend/pkg/logger"
	"cardroom_backend/pkg/money"
	"context"
)

// StartRound открывает новый раунд и черновик результатов для всех, кроме дилера
func (s *serv) StartRound(ctx context.Context) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHostOrDealer(caller); err != nil {
			return err
		}
		if room.Status == model.StatusPlaying {
			return service.ErrRoundInProgress
		}

		draft, err := s.policy(room.Game).NewDraft(room.NonDealers(), room.BaseBet)
		if err != nil {
			return err
		}

		room.Rounds = round.Open(room.Rounds, s.now())
		room.CurrentRound = room.LastRound().Number
		room.Status = model.StatusPlaying
		room.Draft = draft
		room.Table = nil
		return nil
	})
}

// CancelRound отменяет открытый раунд, в который ещё ничего не записано
func (s *serv) CancelRound(ctx context.Context) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHostOrDealer(caller); err != nil {
			return err
		}
		if room.Status != model.StatusPlaying {
			return service.ErrNoActiveRound
		}

		rounds, err := round.Cancel(room.Rounds)
		if err != nil {
			return err
		}

		room.Rounds = rounds
		room.CurrentRound = lastNumber(room.Rounds)
		room.Status = model.StatusWaiting
		room.Draft = nil
		room.Table = nil
		return nil
	})
}

// SubmitResults записывает результаты раунда и применяет их к счетам.
// Без явных результатов берётся черновик. Результат дилера считается автоматически
func (s *serv) SubmitResults(ctx context.Context, results []model.RoundResult) (*model.Room, error) {
	var submitted []model.RoundResult

	room, err := s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHostOrDealer(caller); err != nil {
			return err
		}
		if err := requirePlaying(room); err != nil {
			return err
		}

		if len(results) == 0 {
			results = s.policy(room.Game).Results(room.Draft)
		} else {
			var err error
			results, err = normalizeResults(room, results)
			if err != nil {
				return err
			}
		}

		submitted = round.WithDealer(results, room.Dealer())
		room.Rounds = round.Submit(room.Players, room.Rounds, submitted, s.now())
		room.CurrentRound = room.LastRound().Number
		room.Status = model.StatusWaiting
		room.Draft = nil
		room.Table = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.RoundSubmitted(submitted)
	logger.Infow("round submitted", "room", room.ID, "round", room.CurrentRound, "entries", len(submitted))
	return room, nil
}

// normalizeResults проверяет присланные результаты: игроки должны быть в комнате,
// исход должен быть известен игре, ставка по умолчанию - ставка игрока, суммы округляются.
// Присланная запись дилера отбрасывается
func normalizeResults(room *model.Room, results []model.RoundResult) ([]model.RoundResult, error) {
	out := make([]model.RoundResult, 0, len(results))
	seen := make(map[string]bool, len(results))
	for _, r := range results {
		p := room.Player(r.PlayerID)
		if p == nil {
			return nil, service.ErrPlayerNotFound
		}
		if seen[r.PlayerID] {
			return nil, invalid("duplicate result for player %s", p.Name)
		}
		seen[r.PlayerID] = true

		// запись дилера пересчитывается из остальных
		if p.IsDealer {
			continue
		}
		outcome, err := round.CanonicalOutcome(room.Game, r.Outcome)
		if err != nil {
			return nil, err
		}

		r.Outcome = outcome
		r.PlayerName = p.Name
		r.PnL = money.Round2(r.PnL)
		r.Bet = money.Round2(r.Bet)
		if r.Bet <= 0 {
			r.Bet = p.Bet
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, invalid("no results for players")
	}
	return out, nil
}

// UndoRound откатывает последний записанный раунд
func (s *serv) UndoRound(ctx context.Context) (*model.Room, error) {
	var undone model.Round

	room, err := s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHost(caller); err != nil {
			return err
		}
		if room.Status == model.StatusPlaying {
			return service.ErrRoundInProgress
		}

		rounds, last, err := round.Undo(room.Players, room.Rounds)
		if err != nil {
			return err
		}
		room.Rounds = rounds
		room.CurrentRound = lastNumber(room.Rounds)
		undone = last
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.statsRepo.RoundUndone(undone.Results)
	logger.Infow("round undone", "room", room.ID, "round", undone.Number)
	return room, nil
}

func lastNumber(rounds []model.Round) int {
	if len(rounds) == 0 {
		return 0
	}
	return rounds[len(rounds)-1].Number
}
