// Package toggleban реализует HTTP-обработчик переключения блокировки
// пользователя из административного списка.
package toggleban

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/academy-gateway/internal/http/middlewarectx"
	"github.com/magabrotheeeer/academy-gateway/internal/lib/sl"
)

// Service описывает переключение блокировки на внешнем бэкенде.
type Service interface {
	ToggleBan(ctx context.Context, accessToken, userID string) error
}

// Handler обрабатывает HTTP-запросы переключения блокировки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP переключает блокировку и возвращает администратора к списку
// с сохранёнными фильтрами. При ошибке к строке запроса добавляется
// признак err=ban, по которому список показывает сообщение.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.toggleban"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.SessionFromContext(r.Context())
	userID := chi.URLParam(r, "id")
	if userID == "" {
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	returnQuery, err := url.ParseQuery(r.PostFormValue("return"))
	if err != nil {
		returnQuery = url.Values{}
	}

	if err := h.service.ToggleBan(r.Context(), sess.AccessToken, userID); err != nil {
		log.Error("failed to toggle ban", slog.String("user_id", userID), sl.Err(err))
		returnQuery.Set("err", "ban")
	} else {
		log.Info("ban toggled", slog.String("user_id", userID))
	}

	target := "/admin/users"
	if encoded := returnQuery.Encode(); encoded != "" {
		target += "?" + encoded
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
