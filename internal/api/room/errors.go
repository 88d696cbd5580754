package room

import (
	"cardroom_backend/internal/round"
	"cardroom_backend/internal/service"
	"cardroom_backend/pkg/blackjack"
	"cardroom_backend/pkg/cards"
	"cardroom_backend/pkg/logger"
	"cardroom_backend/pkg/niuniu"
	"cardroom_backend/pkg/resp"
	"errors"
	"net/http"
)

// StatusOf сопоставляет ошибку сервиса HTTP статусу
func StatusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotHost),
		errors.Is(err, service.ErrNotHostOrDealer):
		return http.StatusForbidden
	case errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrPlayerNotFound),
		errors.Is(err, round.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNoActiveRound),
		errors.Is(err, service.ErrRoundInProgress),
		errors.Is(err, service.ErrRoundNotEmpty),
		errors.Is(err, service.ErrNothingToUndo),
		errors.Is(err, service.ErrRoomSettled),
		errors.Is(err, service.ErrNoTable),
		errors.Is(err, service.ErrHandLocked),
		errors.Is(err, service.ErrWrongGame),
		errors.Is(err, service.ErrPlayerHasScore),
		errors.Is(err, cards.ErrDeckExhausted):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, niuniu.ErrUnknownOutcome),
		errors.Is(err, blackjack.ErrUnknownOutcome),
		errors.Is(err, round.ErrUnknownGame),
		errors.Is(err, cards.ErrParse):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// WriteServiceError пишет ошибку клиенту. Внутренние ошибки логируются и не раскрываются
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		logger.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}
