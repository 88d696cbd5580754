package service

import (
	"cardroom_backend/internal/repository"
	"cardroom_backend/internal/round"
	"errors"
)

var (
	ErrNoSession         = errors.New("no player session in context")
	ErrInvalidInput      = errors.New("invalid input")
	ErrRoomNotFound      = repository.ErrRoomNotFound
	ErrPlayerNotFound    = errors.New("player not found")
	ErrNotHost           = errors.New("only the host can do this")
	ErrNotHostOrDealer   = errors.New("only the host or the dealer can do this")
	ErrNoActiveRound     = errors.New("no round in progress")
	ErrRoundInProgress   = errors.New("round in progress")
	ErrRoundNotEmpty     = round.ErrRoundNotEmpty
	ErrNothingToUndo     = round.ErrNothingToUndo
	ErrRoomSettled       = errors.New("room is settled")
	ErrNoTable           = errors.New("no cards dealt this round")
	ErrHandLocked        = errors.New("hand takes no more actions")
	ErrWrongGame         = errors.New("action not available in this game")
	ErrPlayerHasScore    = errors.New("player has a non-zero score")
	ErrRoomCodeExhausted = errors.New("could not allocate a free room code")
)
