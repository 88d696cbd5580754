package converter

import (
	dto "cardroom_backend/internal/api/dto/room"
	"cardroom_backend/internal/model"
	"cardroom_backend/pkg/blackjack"
	"cardroom_backend/pkg/cards"
	"cardroom_backend/pkg/niuniu"
)

func ToCreateRoom(req dto.CreateRoomRequest) model.CreateRoom {
	return model.CreateRoom{
		Name:    req.Name,
		Game:    model.Game(req.Game),
		BaseBet: req.BaseBet,
	}
}

func ToJoinRoom(req dto.JoinRoomRequest) model.JoinRoom {
	return model.JoinRoom{
		RoomID: req.RoomID,
		Name:   req.Name,
	}
}

func ToDraftUpdate(req dto.DraftUpdateRequest) model.DraftUpdate {
	return model.DraftUpdate{
		PlayerID: req.PlayerID,
		Outcome:  req.Outcome,
		Bet:      req.Bet,
		PnL:      req.PnL,
	}
}

func ToRoundResults(req dto.SubmitResultsRequest) []model.RoundResult {
	if len(req.Results) == 0 {
		return nil
	}
	out := make([]model.RoundResult, 0, len(req.Results))
	for _, r := range req.Results {
		out = append(out, model.RoundResult{
			PlayerID:   r.PlayerID,
			Bet:        r.Bet,
			Outcome:    r.Outcome,
			Multiplier: r.Multiplier,
			PnL:        r.PnL,
			CustomPnL:  true,
		})
	}
	return out
}

func ToSessionResponse(sess *model.Session, room *model.Room) dto.SessionResponse {
	return dto.SessionResponse{
		AccessToken: sess.AccessToken,
		PlayerID:    sess.PlayerID,
		Room:        ToRoomResponse(room),
	}
}

func ToRoomResponse(room *model.Room) dto.RoomResponse {
	resp := dto.RoomResponse{
		ID:           room.ID,
		Game:         string(room.Game),
		Status:       string(room.Status),
		CurrentRound: room.CurrentRound,
		BaseBet:      room.BaseBet,
		Players:      make([]dto.PlayerResponse, 0, len(room.Players)),
		Rounds:       make([]dto.RoundResponse, 0, len(room.Rounds)),
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}
	for _, p := range room.Players {
		resp.Players = append(resp.Players, dto.PlayerResponse{
			ID:        p.ID,
			Name:      p.Name,
			Score:     p.Score,
			IsHost:    p.IsHost,
			IsDealer:  p.IsDealer,
			Bet:       p.Bet,
			Connected: p.Connected,
		})
	}
	for _, r := range room.Rounds {
		resp.Rounds = append(resp.Rounds, dto.RoundResponse{
			Number:    r.Number,
			Results:   toResultResponses(r.Results),
			Timestamp: r.Timestamp,
		})
	}
	if room.Draft != nil {
		resp.Draft = &dto.DraftResponse{
			DealerHand: room.Draft.DealerHand,
			Entries:    toResultResponses(room.Draft.Entries),
		}
	}
	if room.Table != nil {
		resp.Table = toTableResponse(room.Game, room.Table)
	}
	return resp
}

func toResultResponses(rs []model.RoundResult) []dto.ResultResponse {
	out := make([]dto.ResultResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, dto.ResultResponse{
			PlayerID:   r.PlayerID,
			PlayerName: r.PlayerName,
			Bet:        r.Bet,
			Outcome:    r.Outcome,
			Multiplier: r.Multiplier,
			PnL:        r.PnL,
			CustomPnL:  r.CustomPnL,
		})
	}
	return out
}

func toTableResponse(game model.Game, t *model.Table) *dto.TableResponse {
	resp := &dto.TableResponse{
		Hands:  make(map[string]dto.HandResponse, len(t.Hands)),
		Dealer: toHandResponse(game, &t.Dealer),
	}
	if t.Deck != nil {
		resp.DeckLeft = t.Deck.Len()
	}
	for id, h := range t.Hands {
		resp.Hands[id] = toHandResponse(game, h)
	}
	return resp
}

func toHandResponse(game model.Game, h *model.Hand) dto.HandResponse {
	resp := dto.HandResponse{
		Cards:       cardStrings(h.Cards),
		Doubled:     h.Doubled,
		Stood:       h.Stood,
		Surrendered: h.Surrendered,
	}
	if len(h.Cards) == 0 {
		return resp
	}
	switch game {
	case model.GameNiuniu:
		resp.Value = niuniu.Evaluate(h.Cards).Category.Label()
	case model.GameBlackjack:
		resp.Value = blackjack.Evaluate(h.Cards).Display()
	}
	return resp
}

func cardStrings(cs []cards.Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.String())
	}
	return out
}

func ToSettlementResponse(s *model.Settlement) dto.SettlementResponse {
	resp := dto.SettlementResponse{
		Balances:  make([]dto.BalanceResponse, 0, len(s.Balances)),
		Transfers: make([]dto.TransferResponse, 0, len(s.Transfers)),
		Balanced:  s.Balanced,
	}
	for _, b := range s.Balances {
		resp.Balances = append(resp.Balances, dto.BalanceResponse{Name: b.Name, Amount: b.Amount})
	}
	for _, t := range s.Transfers {
		resp.Transfers = append(resp.Transfers, dto.TransferResponse{From: t.From, To: t.To, Amount: t.Amount})
	}
	return resp
}

func ToStatsResponse(s model.Stats) dto.StatsResponse {
	rooms := make(map[string]int, len(s.RoomsCreated))
	for g, n := range s.RoomsCreated {
		rooms[string(g)] = n
	}
	return dto.StatsResponse{
		RoomsCreated:    rooms,
		RoundsSubmitted: s.RoundsSubmitted,
		RoundsUndone:    s.RoundsUndone,
		SessionsSettled: s.SessionsSettled,
		Transfers:       s.Transfers,
		TotalStaked:     s.TotalStaked,
		WindowStaked:    s.WindowStaked,
		WindowSize:      s.WindowSize,
	}
}

