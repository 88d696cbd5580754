package stats_repo

import (
	"cardroom_backend/internal/model"
	"testing"
)

func TestStatsRepository(t *testing.T) {
	r := NewStatsRepository()

	r.RoomCreated(model.GameNiuniu)
	r.RoomCreated(model.GameNiuniu)
	r.RoomCreated(model.GameBlackjack)

	round := []model.RoundResult{{Bet: 10}, {Bet: 15.5}, {Bet: 0}}
	r.RoundSubmitted(round)
	r.RoundSubmitted(round)
	r.RoundUndone(round)
	r.SessionSettled(3)

	s := r.Stats()
	if s.RoomsCreated[model.GameNiuniu] != 2 || s.RoomsCreated[model.GameBlackjack] != 1 {
		t.Errorf("RoomsCreated = %v", s.RoomsCreated)
	}
	if s.RoundsSubmitted != 2 || s.RoundsUndone != 1 {
		t.Errorf("rounds = %d submitted, %d undone", s.RoundsSubmitted, s.RoundsUndone)
	}
	if s.TotalStaked != 25.5 || s.WindowStaked != 25.5 {
		t.Errorf("staked = %v total, %v window", s.TotalStaked, s.WindowStaked)
	}
	if s.SessionsSettled != 1 || s.Transfers != 3 {
		t.Errorf("settled = %d, transfers = %d", s.SessionsSettled, s.Transfers)
	}

	// копия не связана с состоянием
	s.RoomsCreated[model.GameNiuniu] = 100
	if r.Stats().RoomsCreated[model.GameNiuniu] != 2 {
		t.Error("Stats returned shared map")
	}
}

func TestStatsWindow(t *testing.T) {
	r := NewStatsRepository()
	for i := 0; i < windowSize+5; i++ {
		r.RoundSubmitted([]model.RoundResult{{Bet: 1}})
	}
	s := r.Stats()
	if s.WindowStaked != windowSize || s.TotalStaked != windowSize+5 {
		t.Errorf("window = %v, total = %v", s.WindowStaked, s.TotalStaked)
	}
}
