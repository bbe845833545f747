// Package profile реализует HTTP-обработчик экрана профиля.
//
// Загрузка профиля делегируется сервису, который при истёкшем access-токене
// один раз обновляет его по refresh-токену. Обработчик лишь разводит
// итоговые состояния: страница профиля, экран блокировки, редирект на вход.
package profile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/academy-gateway/internal/backend"
	"github.com/magabrotheeeer/academy-gateway/internal/http/middlewarectx"
	"github.com/magabrotheeeer/academy-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/academy-gateway/internal/locale"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
	"github.com/magabrotheeeer/academy-gateway/internal/services/user"
	"github.com/magabrotheeeer/academy-gateway/internal/web"
)

// Service описывает загрузку профиля с обновлением токена.
type Service interface {
	FetchProfile(ctx context.Context, sess *models.Session) user.ProfileResult
}

// Sessions описывает работу с сессией в хранилище.
type Sessions interface {
	SaveSession(ctx context.Context, w http.ResponseWriter, r *http.Request, s *models.Session) error
	ClearSession(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// Renderer описывает рендеринг HTML-страниц.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler обрабатывает HTTP-запросы экрана профиля.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions Sessions
	renderer Renderer
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, sessions Sessions, renderer Renderer) *Handler {
	return &Handler{log: log, service: service, sessions: sessions, renderer: renderer}
}

// ServeHTTP загружает профиль и показывает страницу по итоговому состоянию.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.SessionFromContext(r.Context())
	res := h.service.FetchProfile(r.Context(), sess)

	if res.UpdatedSession != nil {
		if err := h.sessions.SaveSession(r.Context(), w, r, res.UpdatedSession); err != nil {
			log.Error("failed to save refreshed session", sl.Err(err))
		}
	}

	switch res.State {
	case user.StateSuccess:
		if err := h.renderer.Render(w, web.PageProfile, web.NewProfileView(res.User)); err != nil {
			log.Error("failed to render profile page", sl.Err(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	case user.StateRedirectLogin:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case user.StateFatal:
		if err := h.sessions.ClearSession(r.Context(), w, r); err != nil {
			log.Error("failed to clear session", sl.Err(err))
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case user.StateBanned:
		// Сессия сознательно не очищается: экран блокировки должен
		// оставаться и после перезагрузки страницы.
		if err := h.renderer.Render(w, web.PageBanned, web.BannedView{SupportPhone: locale.SupportPhone}); err != nil {
			log.Error("failed to render banned page", sl.Err(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	default:
		msg := locale.ErrGeneric
		if backend.KindOf(res.Err) == backend.KindConnection {
			msg = locale.ErrConnection
		}
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprintf(w, `<p dir="rtl" style="color:red">%s</p>`, msg)
	}
}
