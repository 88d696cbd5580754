package round

import (
	"cardroom_backend/internal/model"
	"errors"
	"time"
)

var (
	ErrRoundNotEmpty = errors.New("round already has results")
	ErrNothingToUndo = errors.New("no submitted round to undo")
)

// Open добавляет пустой раунд со следующим номером.
func Open(rounds []model.Round, now time.Time) []model.Round {
	number := 1
	if n := len(rounds); n > 0 {
		number = rounds[n-1].Number + 1
	}
	return append(rounds, model.Round{Number: number, Timestamp: now})
}

// Cancel удаляет последний раунд, если в нём нет результатов.
func Cancel(rounds []model.Round) ([]model.Round, error) {
	n := len(rounds)
	if n == 0 {
		return rounds, ErrNothingToUndo
	}
	if len(rounds[n-1].Results) > 0 {
		return rounds, ErrRoundNotEmpty
	}
	return rounds[:n-1], nil
}

// Submit записывает результаты в открытый раунд и применяет их к очкам.
// Без открытого раунда добавляется новый.
func Submit(players []model.Player, rounds []model.Round, results []model.RoundResult, now time.Time) []model.Round {
	n := len(rounds)
	if n == 0 || len(rounds[n-1].Results) > 0 {
		rounds = Open(rounds, now)
		n++
	}
	rounds[n-1].Results = results
	rounds[n-1].Timestamp = now
	Apply(players, results)
	return rounds
}

// Undo откатывает последний раунд и убирает его из истории.
func Undo(players []model.Player, rounds []model.Round) ([]model.Round, model.Round, error) {
	n := len(rounds)
	if n == 0 || len(rounds[n-1].Results) == 0 {
		return rounds, model.Round{}, ErrNothingToUndo
	}
	last := rounds[n-1]
	Revert(players, last.Results)
	return rounds[:n-1], last, nil
}
