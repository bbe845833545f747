// Package register реализует HTTP-обработчики экрана регистрации.
//
// Логин и телефон перед проверкой очищаются от недопустимых символов;
// если что-то было удалено, форма показывается заново с очищенными
// значениями и предупреждением, без отправки на бэкенд.
package register

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/academy-gateway/internal/backend"
	"github.com/magabrotheeeer/academy-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/academy-gateway/internal/locale"
	"github.com/magabrotheeeer/academy-gateway/internal/validation"
	"github.com/magabrotheeeer/academy-gateway/internal/web"
)

// Service описывает операцию регистрации на внешнем бэкенде.
type Service interface {
	Register(ctx context.Context, req backend.RegisterRequest) error
}

// Renderer описывает рендеринг HTML-страниц.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler обрабатывает HTTP-запросы экрана регистрации.
type Handler struct {
	log      *slog.Logger
	service  Service
	renderer Renderer
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, renderer Renderer) *Handler {
	return &Handler{log: log, service: service, renderer: renderer}
}

// ShowPage отдает пустую форму регистрации.
func (h *Handler) ShowPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, web.NewRegisterView(validation.RegisterForm{}))
}

// ServeHTTP обрабатывает отправку формы регистрации.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	form := parseForm(r)

	cleanUser, strippedUser := validation.SanitizeUsername(form.UserName)
	cleanPhone, strippedPhone := validation.SanitizePhone(form.Phone)
	form.UserName = cleanUser
	form.Phone = cleanPhone
	if strippedUser || strippedPhone {
		view := web.NewRegisterView(form)
		if strippedUser {
			view.Warning = locale.ErrUsernameCharset
		} else {
			view.Warning = locale.ErrPhoneDigitsOnly
		}
		log.Info("form fields sanitized", slog.Bool("username", strippedUser), slog.Bool("phone", strippedPhone))
		h.render(w, view)
		return
	}

	if msg := validation.ValidateRegister(form, time.Now()); msg != "" {
		log.Info("register form rejected", slog.String("reason", msg))
		view := web.NewRegisterView(form)
		view.Error = msg
		h.render(w, view)
		return
	}

	req := backend.RegisterRequest{
		DisplayName:     form.DisplayName,
		UserName:        form.UserName,
		DateOfBirth:     form.DateOfBirth(),
		Gender:          form.Gender,
		Phone:           form.Phone,
		Country:         form.Country,
		City:            form.City,
		Region:          form.Region,
		Email:           form.Email,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	}
	if err := h.service.Register(r.Context(), req); err != nil {
		log.Error("register failed", sl.Err(err))
		view := web.NewRegisterView(form)
		view.Error = registerError(err)
		h.render(w, view)
		return
	}

	log.Info("register success")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// registerError переводит ошибку бэкенда в локализованное сообщение.
func registerError(err error) string {
	switch backend.KindOf(err) {
	case backend.KindUsernameTaken:
		return locale.ErrUsernameTaken
	case backend.KindPhoneTaken:
		return locale.ErrPhoneTaken
	case backend.KindEmailTaken:
		return locale.ErrEmailTaken
	case backend.KindPasswordMismatch:
		return locale.ErrPasswordMismatch
	case backend.KindConnection:
		return locale.ErrConnection
	default:
		return locale.ErrGeneric
	}
}

func parseForm(r *http.Request) validation.RegisterForm {
	return validation.RegisterForm{
		DisplayName:     r.PostFormValue("displayName"),
		UserName:        r.PostFormValue("userName"),
		Day:             r.PostFormValue("day"),
		Month:           r.PostFormValue("month"),
		Year:            r.PostFormValue("year"),
		Gender:          r.PostFormValue("gender"),
		Phone:           r.PostFormValue("phone"),
		Country:         r.PostFormValue("country"),
		City:            r.PostFormValue("city"),
		Region:          r.PostFormValue("region"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}
}

func (h *Handler) render(w http.ResponseWriter, view web.RegisterView) {
	if err := h.renderer.Render(w, web.PageRegister, view); err != nil {
		h.log.Error("failed to render register page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
