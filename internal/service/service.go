package service

import (
	"cardroom_backend/internal/model"
	"context"
)

// RoomService - комнаты и раунды. Комната и игрок берутся из контекста,
// кроме Create и Join, которые выдают сессию.
type RoomService interface {
	Create(ctx context.Context, in model.CreateRoom) (*model.Session, *model.Room, error)
	Join(ctx context.Context, in model.JoinRoom) (*model.Session, *model.Room, error)
	Get(ctx context.Context) (*model.Room, error)
	Leave(ctx context.Context) (*model.Room, error)

	TransferHost(ctx context.Context, playerID string) (*model.Room, error)
	SetDealer(ctx context.Context, playerID string) (*model.Room, error)
	Kick(ctx context.Context, playerID string) (*model.Room, error)
	SetBet(ctx context.Context, bet float64) (*model.Room, error)
	AdjustScore(ctx context.Context, playerID string, delta float64) (*model.Room, error)

	StartRound(ctx context.Context) (*model.Room, error)
	CancelRound(ctx context.Context) (*model.Room, error)
	UpdateDraft(ctx context.Context, upd model.DraftUpdate) (*model.Room, error)
	SetDealerHand(ctx context.Context, hand string) (*model.Room, error)
	SubmitResults(ctx context.Context, results []model.RoundResult) (*model.Room, error)
	UndoRound(ctx context.Context) (*model.Room, error)

	Deal(ctx context.Context) (*model.Room, error)
	Hit(ctx context.Context, playerID string) (*model.Room, error)
	Double(ctx context.Context, playerID string) (*model.Room, error)
	Stand(ctx context.Context, playerID string) (*model.Room, error)
	Surrender(ctx context.Context, playerID string) (*model.Room, error)
	DealerPlay(ctx context.Context) (*model.Room, error)
	Evaluate(ctx context.Context) (*model.Room, error)

	Settlement(ctx context.Context) (*model.Settlement, error)
	EndSession(ctx context.Context) (*model.Settlement, error)
	Stats(ctx context.Context) model.Stats
}
