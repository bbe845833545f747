// Package resend реализует JSON-обработчик повторной отправки кода
// подтверждения. Повторная отправка разрешается не чаще раза в минуту,
// интервал контролируется на сервере.
package resend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/academy-gateway/internal/backend"
	"github.com/magabrotheeeer/academy-gateway/internal/http/response"
	"github.com/magabrotheeeer/academy-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/academy-gateway/internal/locale"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
	"github.com/magabrotheeeer/academy-gateway/internal/services/resetflow"
)

// Service описывает повторную отправку кода в рамках сценария.
type Service interface {
	Resend(ctx context.Context, flow *models.ResetFlow) (*models.ResetFlow, error)
	Countdown(flow *models.ResetFlow) int
}

// Sessions описывает хранение состояния восстановления.
type Sessions interface {
	ResetFlow(ctx context.Context, r *http.Request) (*models.ResetFlow, error)
	SaveResetFlow(ctx context.Context, w http.ResponseWriter, r *http.Request, f *models.ResetFlow) error
}

// Handler обрабатывает HTTP-запросы повторной отправки кода.
type Handler struct {
	log      *slog.Logger
	service  Service
	sessions Sessions
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, sessions Sessions) *Handler {
	return &Handler{log: log, service: service, sessions: sessions}
}

// ServeHTTP godoc
// @Summary Повторная отправка кода подтверждения
// @Description Отправляет код подтверждения повторно на адрес из начатого сценария восстановления.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response "Код отправлен, в data — секунды до следующей попытки"
// @Failure 400 {object} response.ErrorResponse "Сценарий восстановления не начат"
// @Failure 429 {object} response.ErrorResponse "Интервал между отправками не истёк"
// @Router /forgot-password/resend [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.resend"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	flow, err := h.sessions.ResetFlow(r.Context(), r)
	if err != nil || flow == nil || flow.Step != models.StepReset {
		log.Error("resend without started flow", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("reset flow is not started"))
		return
	}

	updated, err := h.service.Resend(r.Context(), flow)
	if err != nil {
		if errors.Is(err, resetflow.ErrCooldown) {
			log.Info("resend throttled")
			w.WriteHeader(http.StatusTooManyRequests)
			render.JSON(w, r, response.Error("resend is cooling down"))
			return
		}
		log.Error("resend failed", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.Error(resendError(err)))
		return
	}

	if err := h.sessions.SaveResetFlow(r.Context(), w, r, updated); err != nil {
		log.Error("failed to save reset flow", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("reset otp resent")
	render.JSON(w, r, response.StatusOKWithData(response.Countdown{
		Seconds: h.service.Countdown(updated),
		Message: locale.MsgOTPResent,
	}))
}

// resendError переводит ошибку бэкенда в локализованное сообщение.
func resendError(err error) string {
	if backend.KindOf(err) == backend.KindUserNotFound {
		return locale.ErrEmailNotRegistered
	}
	return locale.ErrSendFailed
}
