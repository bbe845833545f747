// Package resetflow реализует двухшаговый сценарий восстановления пароля.
//
// Состояние сценария (шаг, адрес, момент доступности повтора) живёт в
// сессионном хранилище; сервис задаёт допустимые переходы между шагами
// и следит за 60-секундным кулдауном повторной отправки кода.
package resetflow

import (
	"context"
	"errors"
	"time"

	"github.com/magabrotheeeer/academy-gateway/internal/models"
)

// ResendCooldown — минимальный интервал между отправками кода.
const ResendCooldown = 60 * time.Second

// ErrCooldown возвращается при попытке повтора до истечения кулдауна.
var ErrCooldown = errors.New("resend is cooling down")

// BackendClient описывает вызовы бэкенда, нужные сценарию восстановления.
type BackendClient interface {
	SendResetOTP(ctx context.Context, email string) error
	ResendResetOTP(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otp, password, confirmPassword string) error
}

// Service управляет переходами сценария восстановления пароля.
type Service struct {
	client BackendClient
	now    func() time.Time
}

// New создает Service поверх клиента бэкенда.
func New(client BackendClient) *Service {
	return &Service{client: client, now: time.Now}
}

// Start отправляет код на адрес и переводит сценарий на шаг ввода кода.
func (s *Service) Start(ctx context.Context, email string) (*models.ResetFlow, error) {
	if err := s.client.SendResetOTP(ctx, email); err != nil {
		return nil, err
	}
	return &models.ResetFlow{
		Email:           email,
		Step:            models.StepReset,
		ResendNotBefore: s.now().Add(ResendCooldown),
	}, nil
}

// Resend повторно отправляет код. До истечения кулдауна возвращает
// ErrCooldown и не трогает сценарий; введённый пользователем код при
// повторе не сбрасывается — сервис состояния полей формы не хранит.
func (s *Service) Resend(ctx context.Context, flow *models.ResetFlow) (*models.ResetFlow, error) {
	if s.Countdown(flow) > 0 {
		return flow, ErrCooldown
	}
	if err := s.client.ResendResetOTP(ctx, flow.Email); err != nil {
		return flow, err
	}
	updated := *flow
	updated.ResendNotBefore = s.now().Add(ResendCooldown)
	return &updated, nil
}

// Countdown возвращает, сколько целых секунд осталось до возможности
// повтора; 0 — повтор доступен.
func (s *Service) Countdown(flow *models.ResetFlow) int {
	if flow == nil {
		return 0
	}
	d := flow.ResendNotBefore.Sub(s.now())
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}

// Reset завершает сценарий: код подтверждения и новый пароль уходят на бэкенд.
func (s *Service) Reset(ctx context.Context, flow *models.ResetFlow, otp, password, confirmPassword string) error {
	return s.client.ResetPassword(ctx, flow.Email, otp, password, confirmPassword)
}

// Back возвращает сценарий на шаг ввода почты. Адрес сохраняется,
// кулдаун повтора сбрасывается.
func (s *Service) Back(flow *models.ResetFlow) *models.ResetFlow {
	if flow == nil {
		return &models.ResetFlow{Step: models.StepEmail}
	}
	return &models.ResetFlow{Email: flow.Email, Step: models.StepEmail}
}
