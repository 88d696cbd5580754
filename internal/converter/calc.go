package converter

import (
	dto "cardroom_backend/internal/api/dto/calc"
	"cardroom_backend/internal/round"
	"cardroom_backend/pkg/blackjack"
	"cardroom_backend/pkg/cards"
	"cardroom_backend/pkg/niuniu"
	"cardroom_backend/pkg/settle"
)

func ToCards(req dto.CardsRequest) ([]cards.Card, error) {
	out := make([]cards.Card, 0, len(req.Cards))
	for _, s := range req.Cards {
		c, err := cards.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func ToNiuniuResponse(r niuniu.Result) dto.NiuniuResponse {
	return dto.NiuniuResponse{
		Category:   r.Category.Key(),
		Label:      r.Category.Label(),
		LabelCn:    r.Category.LabelCn(),
		Multiplier: r.Multiplier,
		BullNumber: r.BullNumber,
		Triple:     r.Triple,
		Pair:       r.Pair,
	}
}

func ToBlackjackResponse(r blackjack.Result) dto.BlackjackResponse {
	return dto.BlackjackResponse{
		Total:     r.Total,
		Soft:      r.Soft,
		Blackjack: r.Blackjack,
		Bust:      r.Bust,
		Display:   r.Display(),
	}
}

func ToPnLResponse(r round.Resolution) dto.PnLResponse {
	return dto.PnLResponse{
		Outcome:    r.Outcome,
		Multiplier: r.Multiplier,
		PnL:        r.PnL,
	}
}

func ToBalances(req dto.SettleRequest) []settle.Balance {
	out := make([]settle.Balance, 0, len(req.Balances))
	for _, b := range req.Balances {
		out = append(out, settle.Balance{Name: b.Name, Amount: b.Amount})
	}
	return out
}

func ToSettleResponse(transfers []settle.Transfer, balanced bool) dto.SettleResponse {
	resp := dto.SettleResponse{
		Transfers: make([]dto.Transfer, 0, len(transfers)),
		Balanced:  balanced,
	}
	for _, t := range transfers {
		resp.Transfers = append(resp.Transfers, dto.Transfer{From: t.From, To: t.To, Amount: t.Amount})
	}
	return resp
}

func ToNiuniuOutcomes() []dto.Outcome {
	cs := niuniu.Categories()
	out := make([]dto.Outcome, 0, len(cs))
	for _, c := range cs {
		out = append(out, dto.Outcome{Key: c.Key(), Label: c.Label(), Multiplier: float64(c.Multiplier())})
	}
	return out
}

func ToBlackjackOutcomes() []dto.Outcome {
	os := blackjack.Outcomes()
	out := make([]dto.Outcome, 0, len(os))
	for _, o := range os {
		out = append(out, dto.Outcome{Key: o.Key(), Label: o.String(), Multiplier: o.Payout()})
	}
	return out
}
