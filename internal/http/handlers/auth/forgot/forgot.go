// Package forgot реализует HTTP-обработчики первого шага восстановления
// пароля: форму ввода адреса, отправку кода подтверждения и возврат
// со второго шага к вводу другого адреса.
package forgot

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/academy-gateway/internal/backend"
	"github.com/magabrotheeeer/academy-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/academy-gateway/internal/locale"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
	"github.com/magabrotheeeer/academy-gateway/internal/validation"
	"github.com/magabrotheeeer/academy-gateway/internal/web"
)

// Service описывает сценарий восстановления пароля.
type Service interface {
	Start(ctx context.Context, email string) (*models.ResetFlow, error)
	Countdown(flow *models.ResetFlow) int
	Back(flow *models.ResetFlow) *models.ResetFlow
}

// Sessions описывает хранение состояния восстановления.
type Sessions interface {
	ResetFlow(ctx context.Context, r *http.Request) (*models.ResetFlow, error)
	SaveResetFlow(ctx context.Context, w http.ResponseWriter, r *http.Request, f *models.ResetFlow) error
}

// Renderer описывает рендеринг HTML-страниц.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler обрабатывает HTTP-запросы первого шага восстановления.
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

// ShowPage отдает текущий шаг восстановления. Начатый сценарий
// продолжается со второго шага и переживает перезагрузку страницы.
func (h *Handler) ShowPage(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.forgot.page"

	flow, err := h.sessions.ResetFlow(r.Context(), r)
	if err != nil {
		h.log.Error("failed to read reset flow", sl.Op(op), sl.Err(err))
	}
	if flow == nil {
		h.render(w, web.ForgotView{Step: models.StepEmail})
		return
	}
	h.render(w, web.ForgotView{
		Step:      flow.Step,
		Email:     flow.Email,
		Countdown: h.service.Countdown(flow),
	})
}

// ServeHTTP обрабатывает отправку адреса и переход ко второму шагу.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.forgot.send"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	form := validation.ForgotForm{Email: r.PostFormValue("email")}
	if msg := validation.ValidateForgot(form); msg != "" {
		log.Info("forgot form rejected", slog.String("reason", msg))
		h.render(w, web.ForgotView{Step: models.StepEmail, Email: form.Email, Error: msg})
		return
	}

	flow, err := h.service.Start(r.Context(), form.Email)
	if err != nil {
		log.Error("failed to send reset otp", sl.Err(err))
		h.render(w, web.ForgotView{Step: models.StepEmail, Email: form.Email, Error: sendError(err)})
		return
	}

	if err := h.sessions.SaveResetFlow(r.Context(), w, r, flow); err != nil {
		log.Error("failed to save reset flow", sl.Err(err))
		h.render(w, web.ForgotView{Step: models.StepEmail, Email: form.Email, Error: locale.ErrGeneric})
		return
	}

	log.Info("reset otp sent")
	h.render(w, web.ForgotView{
		Step:      flow.Step,
		Email:     flow.Email,
		Info:      locale.MsgOTPSent,
		Countdown: h.service.Countdown(flow),
	})
}

// Back возвращает сценарий к вводу адреса, сохраняя прежний адрес
// в форме.
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.forgot.back"

	flow, err := h.sessions.ResetFlow(r.Context(), r)
	if err != nil {
		h.log.Error("failed to read reset flow", sl.Op(op), sl.Err(err))
	}
	if flow != nil {
		flow = h.service.Back(flow)
		if err := h.sessions.SaveResetFlow(r.Context(), w, r, flow); err != nil {
			h.log.Error("failed to save reset flow", sl.Op(op), sl.Err(err))
		}
	}
	http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
}

// sendError переводит ошибку бэкенда в локализованное сообщение.
func sendError(err error) string {
	if backend.KindOf(err) == backend.KindUserNotFound {
		return locale.ErrEmailNotRegistered
	}
	return locale.ErrSendFailed
}

func (h *Handler) render(w http.ResponseWriter, view web.ForgotView) {
	if err := h.renderer.Render(w, web.PageForgot, view); err != nil {
		h.log.Error("failed to render forgot page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
