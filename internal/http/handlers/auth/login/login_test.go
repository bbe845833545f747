package login

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/academy-gateway/internal/backend"
	"github.com/magabrotheeeer/academy-gateway/internal/http/middlewarectx"
	"github.com/magabrotheeeer/academy-gateway/internal/locale"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
	"github.com/magabrotheeeer/academy-gateway/internal/web"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, email, password string) (*models.Session, error) {
	args := m.Called(ctx, email, password)
	s, _ := args.Get(0).(*models.Session)
	return s, args.Error(1)
}

type SessionsMock struct {
	mock.Mock
}

func (m *SessionsMock) SaveSession(ctx context.Context, w http.ResponseWriter, r *http.Request, s *models.Session) error {
	args := m.Called(ctx, w, r, s)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newRenderer(t *testing.T) *web.Renderer {
	t.Helper()
	r, err := web.NewRenderer()
	require.NoError(t, err)
	return r
}

func postForm(path string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestLogin_Success(t *testing.T) {
	svc := new(ServiceMock)
	sessions := new(SessionsMock)
	sess := &models.Session{AccessToken: "acc", RefreshToken: "ref"}
	svc.On("Login", mock.Anything, "a@b.com", "secret123").Return(sess, nil).Once()
	sessions.On("SaveSession", mock.Anything, mock.Anything, mock.Anything, sess).Return(nil).Once()

	h := New(newNoopLogger(), svc, sessions, newRenderer(t))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, postForm("/login", url.Values{
		"email":    {"a@b.com"},
		"password": {"secret123"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))
	svc.AssertExpectations(t)
	sessions.AssertExpectations(t)
}

func TestLogin_ValidationOrder(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
		want     string
	}{
		{"empty email", "", "secret123", locale.ErrEmailRequired},
		{"empty password", "a@b.com", "", locale.ErrPasswordRequired},
		{"bad email", "not-an-email", "secret123", locale.ErrEmailInvalid},
		{"short password", "a@b.com", "123", locale.ErrPasswordTooShort},
		// Пустые поля проверяются раньше формата.
		{"empty email wins over bad password", "", "1", locale.ErrEmailRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(ServiceMock)
			h := New(newNoopLogger(), svc, new(SessionsMock), newRenderer(t))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, postForm("/login", url.Values{
				"email":    {tc.email},
				"password": {tc.password},
			}))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
			svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestLogin_BackendErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"invalid credentials", &backend.Error{Kind: backend.KindInvalidCredentials, StatusCode: 401}, locale.ErrLoginFailed},
		{"user not found", &backend.Error{Kind: backend.KindUserNotFound, StatusCode: 404}, locale.ErrLoginFailed},
		{"server error", &backend.Error{Kind: backend.KindUnknown, StatusCode: 500}, locale.ErrGeneric},
		{"backend unreachable", &backend.Error{Kind: backend.KindConnection, Message: "dial tcp: connection refused"}, locale.ErrConnection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(ServiceMock)
			svc.On("Login", mock.Anything, "a@b.com", "secret123").Return(nil, tc.err).Once()

			h := New(newNoopLogger(), svc, new(SessionsMock), newRenderer(t))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, postForm("/login", url.Values{
				"email":    {"a@b.com"},
				"password": {"secret123"},
			}))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestShowPage_RedirectsAuthenticated(t *testing.T) {
	h := New(newNoopLogger(), new(ServiceMock), new(SessionsMock), newRenderer(t))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(r.Context(), middlewarectx.SessionKey,
		&models.Session{AccessToken: "a", RefreshToken: "r"})

	rec := httptest.NewRecorder()
	h.ShowPage(rec, r.WithContext(ctx))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/profile", rec.Header().Get("Location"))
}

func TestShowPage_RendersForm(t *testing.T) {
	h := New(newNoopLogger(), new(ServiceMock), new(SessionsMock), newRenderer(t))

	rec := httptest.NewRecorder()
	h.ShowPage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "تسجيل الدخول")
}
