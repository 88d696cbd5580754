package calc

type CardsRequest struct {
	Cards []string `json:"cards"` // Карты: "A♠", "10h", "KD"
}

type NiuniuResponse struct {
	Category   string `json:"category"`
	Label      string `json:"label"`
	LabelCn    string `json:"label_cn"`
	Multiplier int    `json:"multiplier"`
	BullNumber int    `json:"bull_number"`
	Triple     []int  `json:"triple"`
	Pair       []int  `json:"pair"`
}

type BlackjackResponse struct {
	Total     int    `json:"total"`
	Soft      bool   `json:"soft"`
	Blackjack bool   `json:"blackjack"`
	Bust      bool   `json:"bust"`
	Display   string `json:"display"`
}

type PnLRequest struct {
	Game          string  `json:"game"`
	Outcome       string  `json:"outcome"`
	Bet           float64 `json:"bet"`
	DealerOutcome string  `json:"dealer_outcome,omitempty"`
}

type PnLResponse struct {
	Outcome    string  `json:"outcome"`
	Multiplier float64 `json:"multiplier"`
	PnL        float64 `json:"pnl"`
}

type SettleRequest struct {
	Balances []Balance `json:"balances"`
}

type Balance struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type SettleResponse struct {
	Transfers []Transfer `json:"transfers"`
	Balanced  bool       `json:"balanced"`
}

type Outcome struct {
	Key        string  `json:"key"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

type OutcomesResponse struct {
	Game     string    `json:"game"`
	Outcomes []Outcome `json:"outcomes"`
}
