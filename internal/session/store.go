// Package session реализует сессионное хранилище шлюза.
//
// Хранилище держит две независимые записи: пару токенов бэкенда и
// состояние сценария восстановления пароля. Экраны зависят от интерфейса
// Store и типизированного Manager, а не от способа хранения; реализации —
// запечатанная cookie (без состояния на сервере) и redis.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/magabrotheeeer/academy-gateway/internal/config"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
)

// Имена записей хранилища. Для cookie-реализации это имена cookie,
// для redis — префиксы ключей.
const (
	recordSession = "academy_session"
	recordReset   = "academy_reset"
)

// Store — низкоуровневое хранилище именованных записей, привязанных к
// браузеру клиента. Запись сериализуется в JSON.
type Store interface {
	// Get читает запись в out; возвращает false, если записи нет.
	Get(ctx context.Context, r *http.Request, name string, out any) (bool, error)
	// Set записывает значение с временем жизни ttl.
	Set(ctx context.Context, w http.ResponseWriter, r *http.Request, name string, value any, ttl time.Duration) error
	// Clear удаляет запись.
	Clear(ctx context.Context, w http.ResponseWriter, r *http.Request, name string) error
}

// Manager — типизированный доступ к записям хранилища.
type Manager struct {
	store      Store
	sessionTTL time.Duration
	resetTTL   time.Duration
}

// NewManager создает Manager поверх выбранной реализации Store.
func NewManager(store Store, cfg config.Session) *Manager {
	return &Manager{
		store:      store,
		sessionTTL: cfg.TTL,
		resetTTL:   cfg.ResetTTL,
	}
}

// Session возвращает сохранённую пару токенов или nil, если её нет.
// Запись без одного из токенов считается отсутствующей: инвариант
// «оба токена или ничего».
func (m *Manager) Session(ctx context.Context, r *http.Request) (*models.Session, error) {
	var s models.Session
	ok, err := m.store.Get(ctx, r, recordSession, &s)
	if err != nil {
		return nil, err
	}
	if !ok || s.AccessToken == "" || s.RefreshToken == "" {
		return nil, nil
	}
	return &s, nil
}

// SaveSession записывает пару токенов.
func (m *Manager) SaveSession(ctx context.Context, w http.ResponseWriter, r *http.Request, s *models.Session) error {
	return m.store.Set(ctx, w, r, recordSession, s, m.sessionTTL)
}

// ClearSession удаляет пару токенов.
func (m *Manager) ClearSession(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return m.store.Clear(ctx, w, r, recordSession)
}

// ResetFlow возвращает состояние восстановления пароля или nil.
func (m *Manager) ResetFlow(ctx context.Context, r *http.Request) (*models.ResetFlow, error) {
	var f models.ResetFlow
	ok, err := m.store.Get(ctx, r, recordReset, &f)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &f, nil
}

// SaveResetFlow записывает состояние восстановления пароля.
func (m *Manager) SaveResetFlow(ctx context.Context, w http.ResponseWriter, r *http.Request, f *models.ResetFlow) error {
	return m.store.Set(ctx, w, r, recordReset, f, m.resetTTL)
}

// ClearResetFlow удаляет состояние восстановления пароля.
func (m *Manager) ClearResetFlow(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return m.store.Clear(ctx, w, r, recordReset)
}
