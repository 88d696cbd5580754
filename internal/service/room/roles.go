package room

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/service"
	"cardroom_backend/pkg/money"
	"context"
)

// TransferHost передаёт права хоста другому игроку
func (s *serv) TransferHost(ctx context.Context, playerID string) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHost(caller); err != nil {
			return err
		}
		target := room.Player(playerID)
		if target == nil {
			return service.ErrPlayerNotFound
		}

		for i := range room.Players {
			room.Players[i].IsHost = room.Players[i].ID == playerID
		}
		return nil
	})
}

// SetDealer назначает дилера. Дилер в комнате всегда один
func (s *serv) SetDealer(ctx context.Context, playerID string) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHost(caller); err != nil {
			return err
		}
		if room.Status == model.StatusPlaying {
			return service.ErrRoundInProgress
		}
		if room.Player(playerID) == nil {
			return service.ErrPlayerNotFound
		}

		for i := range room.Players {
			room.Players[i].IsDealer = room.Players[i].ID == playerID
		}
		return nil
	})
}

// Kick удаляет игрока из комнаты. Игрока с ненулевым счётом удалить нельзя
func (s *serv) Kick(ctx context.Context, playerID string) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHost(caller); err != nil {
			return err
		}
		if playerID == caller.ID {
			return invalid("host cannot kick themselves")
		}
		target := room.Player(playerID)
		if target == nil {
			return service.ErrPlayerNotFound
		}
		if target.Score != 0 {
			return service.ErrPlayerHasScore
		}
		if target.IsDealer && room.Status == model.StatusPlaying {
			return service.ErrRoundInProgress
		}

		// Дилер переходит к хосту. caller после удаления указывает в сдвинутый слайс
		hostID, wasDealer := caller.ID, target.IsDealer
		room.RemovePlayer(playerID)
		if wasDealer {
			room.Player(hostID).IsDealer = true
		}

		s.policy(room.Game).RemoveEntry(room.Draft, playerID)
		if room.Table != nil {
			delete(room.Table.Hands, playerID)
		}
		return nil
	})
}

// SetBet меняет ставку игрока из контекста. Ставка <= 0 означает базовую ставку комнаты
func (s *serv) SetBet(ctx context.Context, bet float64) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		bet = money.Round2(bet)
		if bet <= 0 {
			bet = room.BaseBet
		}
		caller.Bet = bet

		if room.Status == model.StatusPlaying && room.Draft.Entry(caller.ID) != nil {
			return s.policy(room.Game).SetBet(room.Draft, caller.ID, bet)
		}
		return nil
	})
}

// AdjustScore ручная корректировка счёта хостом
func (s *serv) AdjustScore(ctx context.Context, playerID string, delta float64) (*model.Room, error) {
	return s.mutate(ctx, func(room *model.Room, caller *model.Player) error {
		if err := requireHost(caller); err != nil {
			return err
		}
		target := room.Player(playerID)
		if target == nil {
			return service.ErrPlayerNotFound
		}
		target.Score = money.Round2(target.Score + delta)
		return nil
	})
}
