package repository

import (
	"cardroom_backend/internal/model"
	"context"
	"errors"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomExists   = errors.New("room already exists")
)

type RoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	Get(ctx context.Context, id string) (*model.Room, error)
	// GetForUpdate блокирует комнату до конца текущей транзакции
	GetForUpdate(ctx context.Context, id string) (*model.Room, error)
	Update(ctx context.Context, room *model.Room) error
	Exists(ctx context.Context, id string) (bool, error)
}

type StatsRepository interface {
	Stats() model.Stats
	RoomCreated(game model.Game)
	RoundSubmitted(results []model.RoundResult)
	RoundUndone(results []model.RoundResult)
	SessionSettled(transfers int)
}
