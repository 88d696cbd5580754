package room

import (
	dto "cardroom_backend/internal/api/dto/room"
	"cardroom_backend/internal/converter"
	"cardroom_backend/internal/model"
	"cardroom_backend/internal/service"
	"cardroom_backend/pkg/req"
	"cardroom_backend/pkg/resp"
	"net/http"
)

type HandlerDeps struct {
	Serv service.RoomService
}

type Handler struct {
	serv service.RoomService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) writeRoom(w http.ResponseWriter, r *http.Request, room *model.Room, err error) {
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRoomResponse(room))
}

// decode читает тело запроса, при ошибке отвечает 400
func decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	payload, err := req.Decode[T](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return payload, false
	}
	return payload, true
}

// Get текущее состояние комнаты
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	room, err := h.serv.Get(r.Context())
	h.writeRoom(w, r, room, err)
}

func (h *Handler) TransferHost(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.PlayerRequest](w, r)
	if !ok {
		return
	}
	room, err := h.serv.TransferHost(r.Context(), payload.PlayerID)
	h.writeRoom(w, r, room, err)
}

func (h *Handler) SetDealer(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.PlayerRequest](w, r)
	if !ok {
		return
	}
	room, err := h.serv.SetDealer(r.Context(), payload.PlayerID)
	h.writeRoom(w, r, room, err)
}

func (h *Handler) Kick(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.PlayerRequest](w, r)
	if !ok {
		return
	}
	room, err := h.serv.Kick(r.Context(), payload.PlayerID)
	h.writeRoom(w, r, room, err)
}

func (h *Handler) SetBet(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.BetRequest](w, r)
	if !ok {
		return
	}
	room, err := h.serv.SetBet(r.Context(), payload.Bet)
	h.writeRoom(w, r, room, err)
}

func (h *Handler) AdjustScore(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.AdjustScoreRequest](w, r)
	if !ok {
		return
	}
	room, err := h.serv.AdjustScore(r.Context(), payload.PlayerID, payload.Delta)
	h.writeRoom(w, r, room, err)
}

func (h *Handler) StartRound(w http.ResponseWriter, r *http.Request) {
	room, err := h.serv.StartRound(r.Context())
	h.writeRoom(w, r, room, err)
}

func (h *Handler) CancelRound(w http.ResponseWriter, r *http.Request) {
	room, err := h.serv.CancelRound(r.Context())
	h.writeRoom(w, r, room, err)
}

func (h *Handler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.DraftUpdateRequest](w, r)
	if !ok {
		return
	}
	room, err := h.serv.UpdateDraft(r.Context(), converter.ToDraftUpdate(payload))
	h.writeRoom(w, r, room, err)
}

func (h *Handler) SetDealerHand(w http.ResponseWriter, r *http.Request) {
	payload, ok := decode[dto.DealerHandRequest](w, r)
	if !ok {
		return
	}
	room, err := h.serv.SetDealerHand(r.Context(), payload.Hand)
	h.writeRoom(w, r, room, err)
}

// SubmitResults принимает явные результаты; пустое тело - отправить черновик
func (h *Handler) SubmitResults(w http.ResponseWriter, r *http.Request) {
	var payload dto.SubmitResultsRequest
	if r.ContentLength != 0 {
		var ok bool
		payload, ok = decode[dto.SubmitResultsRequest](w, r)
		if !ok {
			return
		}
	}
	room, err := h.serv.SubmitResults(r.Context(), converter.ToRoundResults(payload))
	h.writeRoom(w, r, room, err)
}

func (h *Handler) UndoRound(w http.ResponseWriter, r *http.Request) {
	room, err := h.serv.UndoRound(r.Context())
	h.writeRoom(w, r, room, err)
}

func (h *Handler) Deal(w http.ResponseWriter, r *http.Request) {
	room, err := h.serv.Deal(r.Context())
	h.writeRoom(w, r, room, err)
}

// playerID - игрок из тела запроса, без тела - сам вызывающий
func playerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.ContentLength == 0 {
		return "", true
	}
	payload, ok := decode[dto.PlayerRequest](w, r)
	return payload.PlayerID, ok
}

func (h *Handler) Hit(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	room, err := h.serv.Hit(r.Context(), id)
	h.writeRoom(w, r, room, err)
}

func (h *Handler) Double(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	room, err := h.serv.Double(r.Context(), id)
	h.writeRoom(w, r, room, err)
}

func (h *Handler) Stand(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	room, err := h.serv.Stand(r.Context(), id)
	h.writeRoom(w, r, room, err)
}

func (h *Handler) Surrender(w http.ResponseWriter, r *http.Request) {
	id, ok := playerID(w, r)
	if !ok {
		return
	}
	room, err := h.serv.Surrender(r.Context(), id)
	h.writeRoom(w, r, room, err)
}

func (h *Handler) DealerPlay(w http.ResponseWriter, r *http.Request) {
	room, err := h.serv.DealerPlay(r.Context())
	h.writeRoom(w, r, room, err)
}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	room, err := h.serv.Evaluate(r.Context())
	h.writeRoom(w, r, room, err)
}

// Settlement предварительный расчёт переводов
func (h *Handler) Settlement(w http.ResponseWriter, r *http.Request) {
	s, err := h.serv.Settlement(r.Context())
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettlementResponse(s))
}

// EndSession закрывает комнату и возвращает итоговые переводы
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.serv.EndSession(r.Context())
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettlementResponse(s))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats(r.Context())))
}
