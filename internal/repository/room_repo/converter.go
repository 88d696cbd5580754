package room_repo

import (
	"cardroom_backend/internal/model"
	repoModel "cardroom_backend/internal/repository/room_repo/model"
)

func toRepoRoom(r *model.Room) *repoModel.Room {
	out := &repoModel.Room{
		ID:           r.ID,
		Game:         string(r.Game),
		Status:       string(r.Status),
		CurrentRound: r.CurrentRound,
		BaseBet:      r.BaseBet,
		Players:      make([]repoModel.Player, 0, len(r.Players)),
		Rounds:       make([]repoModel.Round, 0, len(r.Rounds)),
		Table:        r.Table,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	for _, p := range r.Players {
		out.Players = append(out.Players, repoModel.Player(p))
	}
	for _, rd := range r.Rounds {
		out.Rounds = append(out.Rounds, repoModel.Round{
			Number:    rd.Number,
			Results:   toRepoResults(rd.Results),
			Timestamp: rd.Timestamp,
		})
	}
	if r.Draft != nil {
		out.Draft = &repoModel.Draft{DealerHand: r.Draft.DealerHand, Entries: toRepoResults(r.Draft.Entries)}
	}
	return out
}

func toRepoResults(rs []model.RoundResult) []repoModel.RoundResult {
	out := make([]repoModel.RoundResult, 0, len(rs))
	for _, r := range rs {
		out = append(out, repoModel.RoundResult(r))
	}
	return out
}

func toRoom(r *repoModel.Room) *model.Room {
	out := &model.Room{
		ID:           r.ID,
		Game:         model.Game(r.Game),
		Status:       model.RoomStatus(r.Status),
		CurrentRound: r.CurrentRound,
		BaseBet:      r.BaseBet,
		Players:      make([]model.Player, 0, len(r.Players)),
		Rounds:       make([]model.Round, 0, len(r.Rounds)),
		Table:        r.Table,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	for _, p := range r.Players {
		out.Players = append(out.Players, model.Player(p))
	}
	for _, rd := range r.Rounds {
		out.Rounds = append(out.Rounds, model.Round{
			Number:    rd.Number,
			Results:   toResults(rd.Results),
			Timestamp: rd.Timestamp,
		})
	}
	if r.Draft != nil {
		out.Draft = &model.Draft{DealerHand: r.Draft.DealerHand, Entries: toResults(r.Draft.Entries)}
	}
	return out
}

func toResults(rs []repoModel.RoundResult) []model.RoundResult {
	out := make([]model.RoundResult, 0, len(rs))
	for _, r := range rs {
		out = append(out, model.RoundResult(r))
	}
	return out
}
