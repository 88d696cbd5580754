package middleware

import (
	"cardroom_backend/internal/model"
	"cardroom_backend/pkg/logger"
	"cardroom_backend/pkg/resp"
	"cardroom_backend/pkg/token"
	"context"
	"net/http"
	"strings"
)

type ctxKey struct{}

// AccessTokenCookie - имя cookie, в которой лежит токен игрока
const AccessTokenCookie = "access_token"

// WithPlayer кладёт данные игрока в контекст
func WithPlayer(ctx context.Context, claims *model.PlayerClaims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// PlayerFromContext достаёт данные игрока, положенные Auth
func PlayerFromContext(ctx context.Context) (*model.PlayerClaims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*model.PlayerClaims)
	return claims, ok && claims != nil
}

// Auth проверяет access token из заголовка Authorization или cookie
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil {
				logger.Debugw("auth failed", "error", err)
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPlayer(r.Context(), claims)))
		})
	}
}

func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		scheme, tok, ok := strings.Cut(h, " ")
		if ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(tok)
		}
		return ""
	}

	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		return c.Value
	}
	return ""
}

// SetAccessTokenCookie устанавливает cookie с access token
func SetAccessTokenCookie(w http.ResponseWriter, accessToken string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}
