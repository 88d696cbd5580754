package calc

import (
	dto "cardroom_backend/internal/api/dto/calc"
	"cardroom_backend/internal/config"
	"cardroom_backend/internal/converter"
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/round"
	"cardroom_backend/pkg/blackjack"
	"cardroom_backend/pkg/niuniu"
	"cardroom_backend/pkg/req"
	"cardroom_backend/pkg/resp"
	"cardroom_backend/pkg/settle"
	"net/http"
)

type HandlerDeps struct {
	Rules config.RulesConfig
}

// Handler - расчёты без комнаты и сессии
type Handler struct {
	rules round.Rules
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{rules: round.Rules{
		Niuniu:    deps.Rules.Niuniu(),
		Blackjack: deps.Rules.Blackjack(),
	}}
}

// Niuniu категория руки из пяти карт
func (h *Handler) Niuniu(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CardsRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	hand, err := converter.ToCards(payload)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(hand) != 5 {
		resp.WriteError(w, http.StatusBadRequest, "niuniu hand needs exactly 5 cards")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToNiuniuResponse(niuniu.Evaluate(hand)))
}

// Blackjack очки руки
func (h *Handler) Blackjack(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CardsRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	hand, err := converter.ToCards(payload)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBlackjackResponse(blackjack.Evaluate(hand)))
}

// PnL выигрыш или проигрыш ставки по исходу
func (h *Handler) PnL(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PnLRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Bet < 0 {
		resp.WriteError(w, http.StatusBadRequest, "bet must not be negative")
		return
	}

	res, err := round.Resolve(model.Game(payload.Game), payload.Outcome, payload.Bet, payload.DealerOutcome, h.rules)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPnLResponse(res))
}

// Settle минимальный набор переводов по балансам
func (h *Handler) Settle(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SettleRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	balances := converter.ToBalances(payload)
	transfers := settle.Compute(balances)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettleResponse(transfers, settle.Check(balances) == nil))
}

// Outcomes список исходов игры: ?game=niuniu или ?game=21
func (h *Handler) Outcomes(w http.ResponseWriter, r *http.Request) {
	game := model.Game(r.URL.Query().Get("game"))

	var outcomes []dto.Outcome
	switch game {
	case model.GameNiuniu:
		outcomes = converter.ToNiuniuOutcomes()
	case model.GameBlackjack:
		outcomes = converter.ToBlackjackOutcomes()
	default:
		resp.WriteError(w, http.StatusBadRequest, "unknown game")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.OutcomesResponse{Game: string(game), Outcomes: outcomes})
}
