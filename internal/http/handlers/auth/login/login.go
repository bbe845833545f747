// Package login реализует HTTP-обработчики экрана входа.
//
// GET открывает форму (при наличии сессии сразу перенаправляет в профиль),
// POST проверяет поля, выполняет вход через внешний бэкенд и сохраняет
// пару токенов в сессионное хранилище.
package login

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/academy-gateway/internal/backend"
	"github.com/magabrotheeeer/academy-gateway/internal/http/middlewarectx"
	"github.com/magabrotheeeer/academy-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/academy-gateway/internal/locale"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
	"github.com/magabrotheeeer/academy-gateway/internal/validation"
	"github.com/magabrotheeeer/academy-gateway/internal/web"
)

// Service описывает операцию входа на внешнем бэкенде.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
}

// Sessions описывает запись сессии в хранилище.
type Sessions interface {
	SaveSession(ctx context.Context, w http.ResponseWriter, r *http.Request, s *models.Session) error
}

// Renderer описывает рендеринг HTML-страниц.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler обрабатывает HTTP-запросы экрана входа.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions Sessions
	renderer Renderer
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, sessions Sessions, renderer Renderer) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		sessions: sessions,
		renderer: renderer,
	}
}

// ShowPage отдает форму входа. Аутентифицированный пользователь
// перенаправляется в профиль, как и при успешном входе.
func (h *Handler) ShowPage(w http.ResponseWriter, r *http.Request) {
	if middlewarectx.SessionFromContext(r.Context()) != nil {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}
	h.render(w, r, web.LoginView{})
}

// ServeHTTP обрабатывает отправку формы входа.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	form := validation.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	if msg := validation.ValidateLogin(form); msg != "" {
		log.Info("login form rejected", slog.String("reason", msg))
		h.render(w, r, web.LoginView{Email: form.Email, Error: msg})
		return
	}

	sess, err := h.service.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		h.render(w, r, web.LoginView{Email: form.Email, Error: loginError(err)})
		return
	}

	if err := h.sessions.SaveSession(r.Context(), w, r, sess); err != nil {
		log.Error("failed to save session", sl.Err(err))
		h.render(w, r, web.LoginView{Email: form.Email, Error: locale.ErrGeneric})
		return
	}

	log.Info("login success")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// loginError переводит ошибку бэкенда в локализованное сообщение.
// Несуществующий адрес и неверный пароль показываются одинаково.
func loginError(err error) string {
	switch backend.KindOf(err) {
	case backend.KindInvalidCredentials, backend.KindUserNotFound:
		return locale.ErrLoginFailed
	case backend.KindConnection:
		return locale.ErrConnection
	default:
		return locale.ErrGeneric
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, view web.LoginView) {
	if err := h.renderer.Render(w, web.PageLogin, view); err != nil {
		h.log.Error("failed to render login page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
