package model

import (
	"strings"
	"time"
)

type Game string

const (
	GameNiuniu    Game = "niuniu"
	GameBlackjack Game = "21"
)

func (g Game) Valid() bool {
	return g == GameNiuniu || g == GameBlackjack
}

type RoomStatus string

const (
	StatusWaiting RoomStatus = "waiting"
	StatusPlaying RoomStatus = "playing"
	StatusSettled RoomStatus = "settled"
)

// DealerOutcome помечает вычисленную запись дилера
const DealerOutcome = "Dealer"

type Player struct {
	ID        string
	Name      string
	Score     float64
	IsHost    bool
	IsDealer  bool
	Bet       float64
	Connected bool
}

// RoundResult - результат одного участника в раунде.
// CustomPnL - pnl введён вручную и не пересчитывается.
type RoundResult struct {
	PlayerID   string
	PlayerName string
	Bet        float64
	Outcome    string
	Multiplier float64
	PnL        float64
	CustomPnL  bool
}

type Round struct {
	Number    int
	Results   []RoundResult
	Timestamp time.Time
}

// Draft - черновик результатов открытого раунда до отправки
type Draft struct {
	DealerHand string
	Entries    []RoundResult
}

func (d *Draft) Entry(playerID string) *RoundResult {
	if d == nil {
		return nil
	}
	for i := range d.Entries {
		if d.Entries[i].PlayerID == playerID {
			return &d.Entries[i]
		}
	}
	return nil
}

type Room struct {
	ID           string
	Game         Game
	Players      []Player
	Rounds       []Round
	Status       RoomStatus
	CurrentRound int
	BaseBet      float64
	Draft        *Draft
	Table        *Table
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r *Room) Player(id string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == id {
			return &r.Players[i]
		}
	}
	return nil
}

// PlayerByName ищет игрока по имени без учёта регистра, для переподключения.
func (r *Room) PlayerByName(name string) *Player {
	for i := range r.Players {
		if strings.EqualFold(r.Players[i].Name, name) {
			return &r.Players[i]
		}
	}
	return nil
}

func (r *Room) Dealer() *Player {
	for i := range r.Players {
		if r.Players[i].IsDealer {
			return &r.Players[i]
		}
	}
	return nil
}

// NonDealers игроки против дилера в порядке мест.
func (r *Room) NonDealers() []Player {
	out := make([]Player, 0, len(r.Players))
	for _, p := range r.Players {
		if !p.IsDealer {
			out = append(out, p)
		}
	}
	return out
}

func (r *Room) LastRound() *Round {
	if len(r.Rounds) == 0 {
		return nil
	}
	return &r.Rounds[len(r.Rounds)-1]
}

func (r *Room) RemovePlayer(id string) bool {
	for i := range r.Players {
		if r.Players[i].ID == id {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return true
		}
	}
	return false
}

// Clone глубокая копия комнаты.
func (r *Room) Clone() *Room {
	if r == nil {
		return nil
	}
	c := *r
	c.Players = append([]Player(nil), r.Players...)
	c.Rounds = make([]Round, len(r.Rounds))
	for i, rd := range r.Rounds {
		rd.Results = append([]RoundResult(nil), rd.Results...)
		c.Rounds[i] = rd
	}
	if r.Draft != nil {
		d := Draft{DealerHand: r.Draft.DealerHand, Entries: append([]RoundResult(nil), r.Draft.Entries...)}
		c.Draft = &d
	}
	c.Table = r.Table.Clone()
	return &c
}
