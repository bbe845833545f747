// Package user содержит логику экранов профиля и административного списка.
//
// Главное здесь — конечный автомат загрузки профиля: на истёкший
// access-токен приходится ровно одна попытка обновления с последующим
// повторным запросом, без бэкоффа и очередей.
package user

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/academy-gateway/internal/backend"
	"github.com/magabrotheeeer/academy-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
)

// BackendClient описывает вызовы бэкенда, нужные экранам пользователя.
type BackendClient interface {
	Profile(ctx context.Context, accessToken string) (*models.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	AllUsers(ctx context.Context, accessToken string) ([]models.User, error)
	ToggleBan(ctx context.Context, accessToken, userID string) error
}

// State — исход загрузки профиля.
type State int

const (
	// StateSuccess — профиль получен.
	StateSuccess State = iota
	// StateRedirectLogin — аутентификации нет, на вход; сессию не трогаем.
	StateRedirectLogin
	// StateFatal — сессия непригодна: очистить и на вход.
	StateFatal
	// StateBanned — учётная запись заблокирована: ограниченный экран.
	// Сессия намеренно сохраняется, чтобы экран переживал перезагрузку
	// страницы без повторного входа.
	StateBanned
	// StateError — прочие ошибки: общая страница ошибки.
	StateError
)

// ProfileResult — итог конечного автомата загрузки профиля.
// UpdatedSession не nil, когда access-токен был обновлён и сессию
// нужно перезаписать.
type ProfileResult struct {
	State          State
	User           *models.User
	UpdatedSession *models.Session
	// Err заполняется только для StateError и нужен обработчику,
	// чтобы отличить транспортный сбой от прочих ошибок.
	Err error
}

// Service реализует операции экранов пользователя поверх клиента бэкенда.
type Service struct {
	client BackendClient
	log    *slog.Logger
}

// New создает Service.
func New(client BackendClient, log *slog.Logger) *Service {
	return &Service{client: client, log: log}
}

// FetchProfile загружает профиль владельца сессии.
//
// Переходы: успех — StateSuccess; «Token Expired» — одна попытка
// обновления и повторный запрос; неудачное обновление — StateFatal.
// Повторный запрос обновлению уже не подлежит.
func (s *Service) FetchProfile(ctx context.Context, sess *models.Session) ProfileResult {
	const op = "services.user.FetchProfile"
	log := s.log.With(sl.Op(op))

	u, err := s.client.Profile(ctx, sess.AccessToken)
	if err == nil {
		return ProfileResult{State: StateSuccess, User: u}
	}

	switch backend.KindOf(err) {
	case backend.KindNotLoggedIn:
		return ProfileResult{State: StateRedirectLogin}
	case backend.KindTokenBlacklisted:
		return ProfileResult{State: StateFatal}
	case backend.KindUserBanned:
		return ProfileResult{State: StateBanned}
	case backend.KindTokenExpired:
		return s.refreshAndRetry(ctx, sess, log)
	default:
		log.Error("profile fetch failed", sl.Err(err))
		return ProfileResult{State: StateError, Err: err}
	}
}

func (s *Service) refreshAndRetry(ctx context.Context, sess *models.Session, log *slog.Logger) ProfileResult {
	newAccess, err := s.client.RefreshToken(ctx, sess.RefreshToken)
	if err != nil {
		log.Error("token refresh failed", sl.Err(err))
		return ProfileResult{State: StateFatal}
	}

	updated := &models.Session{
		AccessToken:  newAccess,
		RefreshToken: sess.RefreshToken,
	}

	u, err := s.client.Profile(ctx, updated.AccessToken)
	if err == nil {
		return ProfileResult{State: StateSuccess, User: u, UpdatedSession: updated}
	}

	switch backend.KindOf(err) {
	case backend.KindUserBanned:
		return ProfileResult{State: StateBanned, UpdatedSession: updated}
	case backend.KindTokenExpired, backend.KindTokenBlacklisted, backend.KindNotLoggedIn:
		return ProfileResult{State: StateFatal}
	default:
		log.Error("profile refetch failed", sl.Err(err))
		return ProfileResult{State: StateError, UpdatedSession: updated, Err: err}
	}
}

// ListUsers возвращает полный список пользователей для административного
// экрана. Список запрашивается один раз, фильтрация выполняется на шлюзе.
func (s *Service) ListUsers(ctx context.Context, accessToken string) ([]models.User, error) {
	return s.client.AllUsers(ctx, accessToken)
}

// ToggleBan переключает блокировку пользователя.
func (s *Service) ToggleBan(ctx context.Context, accessToken, userID string) error {
	return s.client.ToggleBan(ctx, accessToken, userID)
}
