// Package middlewarectx содержит HTTP middleware шлюза.
//
// SessionMiddleware читает сессию из хранилища и кладёт в контекст запроса
// пару токенов и разобранные (без проверки подписи) claims access‑токена.
// Подпись здесь не проверяется намеренно: её проверяет бэкенд на каждом
// запросе, шлюзу claims нужны только для маршрутизации по роли.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/academy-gateway/internal/lib/jwtinspect"
	"github.com/magabrotheeeer/academy-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
	"github.com/magabrotheeeer/academy-gateway/internal/session"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// SessionKey — ключ для пары токенов (*models.Session) в контексте.
	SessionKey Key = "session"
	// ClaimsKey — ключ для claims access-токена (*jwtinspect.Claims).
	ClaimsKey Key = "claims"
)

// SessionFromContext возвращает сессию из контекста или nil.
func SessionFromContext(ctx context.Context) *models.Session {
	s, _ := ctx.Value(SessionKey).(*models.Session)
	return s
}

// ClaimsFromContext возвращает claims из контекста или nil.
func ClaimsFromContext(ctx context.Context) *jwtinspect.Claims {
	c, _ := ctx.Value(ClaimsKey).(*jwtinspect.Claims)
	return c
}

// SessionMiddleware возвращает middleware, который подгружает сессию
// в контекст запроса. Отсутствие сессии не является ошибкой: публичные
// экраны работают без неё, защищённые проверяются RequireSession.
func SessionMiddleware(manager *session.Manager, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			s, err := manager.Session(r.Context(), r)
			if err != nil {
				log.Error("failed to read session",
					sl.Op(op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}
			if s == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, s)
			if claims, err := jwtinspect.Peek(s.AccessToken); err == nil {
				ctx = context.WithValue(ctx, ClaimsKey, claims)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession возвращает middleware, пропускающий только запросы
// с сессией в контексте; остальные перенаправляются на экран входа.
func RequireSession(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SessionFromContext(r.Context()) == nil {
				log.Info("unauthenticated request, redirecting to login",
					slog.String("path", r.URL.Path),
					slog.String("request_id", middleware.GetReqID(r.Context())))
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin возвращает middleware, пропускающий только пользователей
// с ролью admin в claims; остальные перенаправляются в профиль.
func RequireAdmin(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := ClaimsFromContext(r.Context())
			if claims == nil || !claims.IsAdmin() {
				log.Warn("non-admin request to admin route",
					slog.String("path", r.URL.Path),
					slog.String("request_id", middleware.GetReqID(r.Context())))
				http.Redirect(w, r, "/profile", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
