package room

import "time"

type CreateRoomRequest struct {
	Name    string  `json:"name"`     // Имя создателя
	Game    string  `json:"game"`     // "niuniu" или "21"
	BaseBet float64 `json:"base_bet"` // Базовая ставка, 0 - из конфига
}

type JoinRoomRequest struct {
	RoomID string `json:"room_id"` // Код комнаты, регистр не важен
	Name   string `json:"name"`    // Имя игрока, совпадение - переподключение
}

type SessionResponse struct {
	AccessToken string       `json:"access_token"`
	PlayerID    string       `json:"player_id"`
	Room        RoomResponse `json:"room"`
}

type PlayerRequest struct {
	PlayerID string `json:"player_id"`
}

type BetRequest struct {
	Bet float64 `json:"bet"`
}

type AdjustScoreRequest struct {
	PlayerID string  `json:"player_id"`
	Delta    float64 `json:"delta"`
}

type DraftUpdateRequest struct {
	PlayerID string   `json:"player_id"`
	Outcome  *string  `json:"outcome,omitempty"`
	Bet      *float64 `json:"bet,omitempty"`
	PnL      *float64 `json:"pnl,omitempty"`
}

type DealerHandRequest struct {
	Hand string `json:"hand"`
}

type SubmitResultsRequest struct {
	Results []ResultRequest `json:"results"` // Пусто - отправить черновик
}

type ResultRequest struct {
	PlayerID   string  `json:"player_id"`
	Bet        float64 `json:"bet"`
	Outcome    string  `json:"outcome"`
	Multiplier float64 `json:"multiplier"`
	PnL        float64 `json:"pnl"`
}

type RoomResponse struct {
	ID           string           `json:"id"`
	Game         string           `json:"game"`
	Status       string           `json:"status"`
	CurrentRound int              `json:"current_round"`
	BaseBet      float64          `json:"base_bet"`
	Players      []PlayerResponse `json:"players"`
	Rounds       []RoundResponse  `json:"rounds"`
	Draft        *DraftResponse   `json:"draft,omitempty"`
	Table        *TableResponse   `json:"table,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type PlayerResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	IsHost    bool    `json:"is_host"`
	IsDealer  bool    `json:"is_dealer"`
	Bet       float64 `json:"bet"`
	Connected bool    `json:"connected"`
}

type RoundResponse struct {
	Number    int              `json:"number"`
	Results   []ResultResponse `json:"results"`
	Timestamp time.Time        `json:"timestamp"`
}

type ResultResponse struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Bet        float64 `json:"bet"`
	Outcome    string  `json:"outcome"`
	Multiplier float64 `json:"multiplier"`
	PnL        float64 `json:"pnl"`
	CustomPnL  bool    `json:"custom_pnl"`
}

type DraftResponse struct {
	DealerHand string           `json:"dealer_hand"`
	Entries    []ResultResponse `json:"entries"`
}

type TableResponse struct {
	Hands    map[string]HandResponse `json:"hands"`
	Dealer   HandResponse            `json:"dealer"`
	DeckLeft int                     `json:"deck_left"`
}

type HandResponse struct {
	Cards       []string `json:"cards"`       // Карты, например "10♥"
	Value       string   `json:"value"`       // Очки для 21 или категория для ниу-ниу
	Doubled     bool     `json:"doubled"`     // Удвоение
	Stood       bool     `json:"stood"`       // Остановился
	Surrendered bool     `json:"surrendered"` // Сдался
}

type SettlementResponse struct {
	Balances  []BalanceResponse  `json:"balances"`
	Transfers []TransferResponse `json:"transfers"`
	Balanced  bool               `json:"balanced"`
}

type BalanceResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type TransferResponse struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type StatsResponse struct {
	RoomsCreated    map[string]int `json:"rooms_created"`
	RoundsSubmitted int            `json:"rounds_submitted"`
	RoundsUndone    int            `json:"rounds_undone"`
	SessionsSettled int            `json:"sessions_settled"`
	Transfers       int            `json:"transfers"`
	TotalStaked     float64        `json:"total_staked"`
	WindowStaked    float64        `json:"window_staked"`
	WindowSize      int            `json:"window_size"`
}
