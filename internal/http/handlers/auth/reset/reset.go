// Package reset реализует HTTP-обработчик второго шага восстановления
// пароля: проверку кода подтверждения и установку нового пароля.
package reset

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

// Service описывает установку нового пароля в рамках сценария.
type Service interface {
	Reset(ctx context.Context, flow *models.ResetFlow, otp, password, confirmPassword string) error
	Countdown(flow *models.ResetFlow) int
	Back(flow *models.ResetFlow) *models.ResetFlow
}

// Sessions описывает хранение состояния восстановления.
type Sessions interface {
	ResetFlow(ctx context.Context, r *http.Request) (*models.ResetFlow, error)
	SaveResetFlow(ctx context.Context, w http.ResponseWriter, r *http.Request, f *models.ResetFlow) error
	ClearResetFlow(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// Renderer описывает рендеринг HTML-страниц.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler обрабатывает HTTP-запросы установки нового пароля.
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

// ServeHTTP обрабатывает отправку кода и нового пароля.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.reset"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	flow, err := h.sessions.ResetFlow(r.Context(), r)
	if err != nil {
		log.Error("failed to read reset flow", sl.Err(err))
	}
	if flow == nil || flow.Step != models.StepReset {
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return
	}

	form := validation.ResetForm{
		OTP:             r.PostFormValue("otp"),
		Password:        r.PostFormValue("newPassword"),
		ConfirmPassword: r.PostFormValue("confirmPassword"),
	}
	if msg := validation.ValidateReset(form); msg != "" {
		log.Info("reset form rejected", slog.String("reason", msg))
		h.renderStep(w, flow, msg)
		return
	}

	if err := h.service.Reset(r.Context(), flow, form.OTP, form.Password, form.ConfirmPassword); err != nil {
		log.Error("reset failed", sl.Err(err))
		switch backend.KindOf(err) {
		case backend.KindInvalidOTP:
			h.renderStep(w, flow, locale.ErrInvalidOTP)
		case backend.KindUserNotFound:
			// Адрес исчез между шагами: сценарий начинается заново.
			back := h.service.Back(flow)
			if err := h.sessions.SaveResetFlow(r.Context(), w, r, back); err != nil {
				log.Error("failed to save reset flow", sl.Err(err))
			}
			h.render(w, web.ForgotView{
				Step:  models.StepEmail,
				Email: back.Email,
				Error: locale.ErrStartOver,
			})
		case backend.KindPasswordMismatch:
			h.renderStep(w, flow, locale.ErrResetMismatch)
		default:
			h.renderStep(w, flow, locale.ErrResetFailed)
		}
		return
	}

	if err := h.sessions.ClearResetFlow(r.Context(), w, r); err != nil {
		log.Error("failed to clear reset flow", sl.Err(err))
	}

	log.Info("password reset complete")
	h.render(w, web.ForgotView{
		Step:    models.StepReset,
		Success: true,
		Info:    locale.MsgResetSuccess,
	})
}

func (h *Handler) renderStep(w http.ResponseWriter, flow *models.ResetFlow, msg string) {
	h.render(w, web.ForgotView{
		Step:      flow.Step,
		Email:     flow.Email,
		Error:     msg,
		Countdown: h.service.Countdown(flow),
	})
}

func (h *Handler) render(w http.ResponseWriter, view web.ForgotView) {
	if err := h.renderer.Render(w, web.PageForgot, view); err != nil {
		h.log.Error("failed to render reset page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
