package session

import (
	dto "cardroom_backend/internal/api/dto/room"
	roomAPI "cardroom_backend/internal/api/room"
	"cardroom_backend/internal/converter"
	"cardroom_backend/internal/middleware"
	"cardroom_backend/internal/service"
	"cardroom_backend/pkg/req"
	"cardroom_backend/pkg/resp"
	"net/http"
	"time"
)

type HandlerDeps struct {
	Serv     service.RoomService
	TokenTTL time.Duration
}

type Handler struct {
	serv     service.RoomService
	tokenTTL time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, tokenTTL: deps.TokenTTL}
}

// Create создаёт комнату, открывает сессию создателя
// и возвращает access_token в теле и через cookie
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.CreateRoomRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	sess, room, err := h.serv.Create(r.Context(), converter.ToCreateRoom(requestBody))
	if err != nil {
		roomAPI.WriteServiceError(w, r, err)
		return
	}

	middleware.SetAccessTokenCookie(w, sess.AccessToken, int(h.tokenTTL.Seconds()))

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToSessionResponse(sess, room))
}

// Join входит в комнату по коду. Известное имя - переподключение к своему месту
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.JoinRoomRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	sess, room, err := h.serv.Join(r.Context(), converter.ToJoinRoom(requestBody))
	if err != nil {
		roomAPI.WriteServiceError(w, r, err)
		return
	}

	middleware.SetAccessTokenCookie(w, sess.AccessToken, int(h.tokenTTL.Seconds()))

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(sess, room))
}

// Leave помечает игрока отключившимся и удаляет cookie
func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) {
	_, err := h.serv.Leave(r.Context())
	if err != nil {
		roomAPI.WriteServiceError(w, r, err)
		return
	}

	middleware.SetAccessTokenCookie(w, "", -1)

	w.WriteHeader(http.StatusNoContent)
}
