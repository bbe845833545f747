package logout

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/academy-gateway/internal/http/middlewarectx"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Logout(ctx context.Context, accessToken, refreshToken string) error {
	args := m.Called(ctx, accessToken, refreshToken)
	return args.Error(0)
}

type SessionsMock struct {
	mock.Mock
}

func (m *SessionsMock) ClearSession(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	args := m.Called(ctx, w, r)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func request(sess *models.Session) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	if sess == nil {
		return r
	}
	ctx := context.WithValue(r.Context(), middlewarectx.SessionKey, sess)
	return r.WithContext(ctx)
}

func TestLogout_Success(t *testing.T) {
	svc := new(ServiceMock)
	sessions := new(SessionsMock)
	svc.On("Logout", mock.Anything, "acc", "ref").Return(nil).Once()
	sessions.On("ClearSession", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	rec := httptest.NewRecorder()
	New(newNoopLogger(), svc, sessions).ServeHTTP(rec,
		request(&models.Session{AccessToken: "acc", RefreshToken: "ref"}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	svc.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestLogout_ClearsSessionEvenOnBackendError(t *testing.T) {
	svc := new(ServiceMock)
	sessions := new(SessionsMock)
	svc.On("Logout", mock.Anything, "acc", "ref").Return(errors.New("boom")).Once()
	sessions.On("ClearSession", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	rec := httptest.NewRecorder()
	New(newNoopLogger(), svc, sessions).ServeHTTP(rec,
		request(&models.Session{AccessToken: "acc", RefreshToken: "ref"}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	sessions.AssertExpectations(t)
}

func TestLogout_NoSession(t *testing.T) {
	svc := new(ServiceMock)
	sessions := new(SessionsMock)
	sessions.On("ClearSession", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	rec := httptest.NewRecorder()
	New(newNoopLogger(), svc, sessions).ServeHTTP(rec, request(nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	svc.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything, mock.Anything)
	sessions.AssertExpectations(t)
}
