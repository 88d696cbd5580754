package room_repo

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/pkg/cards"
	"reflect"
	"testing"
	"time"
)

func TestStateRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	room := &model.Room{
		ID:           "ABC234",
		Game:         model.GameBlackjack,
		Status:       model.StatusPlaying,
		CurrentRound: 2,
		BaseBet:      10,
		Players: []model.Player{
			{ID: "a", Name: "Ann", Score: 15, IsHost: true, IsDealer: true, Bet: 10, Connected: true},
			{ID: "b", Name: "Bo", Score: -15, Bet: 10, Connected: true},
		},
		Rounds: []model.Round{{Number: 1, Timestamp: ts, Results: []model.RoundResult{
			{PlayerID: "b", PlayerName: "Bo", Bet: 10, Outcome: "lose", Multiplier: -1, PnL: -10, CustomPnL: true},
		}}},
		Draft: &model.Draft{DealerHand: "18", Entries: []model.RoundResult{{PlayerID: "b", Bet: 10, Outcome: "lose", PnL: -10}}},
		Table: &model.Table{
			Deck:   &cards.Deck{Cards: cards.NewDeck()[:4], Pos: 1},
			Hands:  map[string]*model.Hand{"b": {Cards: []cards.Card{cards.MustParse("K♠"), cards.MustParse("9♥")}, Stood: true}},
			Dealer: model.Hand{Cards: []cards.Card{cards.MustParse("10♦")}},
		},
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	row := toRepoRoom(room)
	players, rounds, draft, tbl, err := marshalState(row)
	if err != nil {
		t.Fatal(err)
	}

	back := *row
	back.Players, back.Rounds, back.Draft, back.Table = nil, nil, nil, nil
	if err := unmarshalState(&back, players, rounds, draft, tbl); err != nil {
		t.Fatal(err)
	}

	if got := toRoom(&back); !reflect.DeepEqual(got, room) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, room)
	}
}

func TestMarshalStateNulls(t *testing.T) {
	row := toRepoRoom(&model.Room{ID: "X"})
	_, _, draft, tbl, err := marshalState(row)
	if err != nil {
		t.Fatal(err)
	}
	if draft != nil || tbl != nil {
		t.Errorf("draft = %s, table = %s; want NULLs", draft, tbl)
	}
}
