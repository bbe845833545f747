// Package logout реализует HTTP-обработчик выхода из аккаунта.
// Сессия очищается даже если бэкенд отверг запрос: локальный выход
// не должен зависеть от состояния токенов.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/academy-gateway/internal/http/middlewarectx"
	"github.com/magabrotheeeer/academy-gateway/internal/lib/sl"
)

// Service описывает операцию выхода на внешнем бэкенде.
type Service interface {
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

// Sessions описывает очистку сессии в хранилище.
type Sessions interface {
	ClearSession(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions Sessions
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, sessions Sessions) *Handler {
	return &Handler{log: log, service: service, sessions: sessions}
}

// ServeHTTP обрабатывает выход: аннулирует токены на бэкенде,
// очищает сессию и перенаправляет на экран входа.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if sess := middlewarectx.SessionFromContext(r.Context()); sess != nil {
		if err := h.service.Logout(r.Context(), sess.AccessToken, sess.RefreshToken); err != nil {
			log.Error("backend logout failed", sl.Err(err))
		}
	}

	if err := h.sessions.ClearSession(r.Context(), w, r); err != nil {
		log.Error("failed to clear session", sl.Err(err))
	}

	log.Info("logout complete")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
