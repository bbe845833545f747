package userlist

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
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

func (m *ServiceMock) ListUsers(ctx context.Context, accessToken string) ([]models.User, error) {
	args := m.Called(ctx, accessToken)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newHandler(t *testing.T, svc Service) *Handler {
	t.Helper()
	r, err := web.NewRenderer()
	require.NoError(t, err)
	return New(newNoopLogger(), svc, r)
}

func request(target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := context.WithValue(r.Context(), middlewarectx.SessionKey,
		&models.Session{AccessToken: "acc", RefreshToken: "ref"})
	return r.WithContext(ctx)
}

func sampleUsers() []models.User {
	return []models.User{
		{ID: "1", UserName: "alice", Email: "alice@mail.com", Role: "admin"},
		{ID: "2", UserName: "bob", Email: "bob@mail.com", Role: "user"},
	}
}

func TestUserlist_FullList(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("ListUsers", mock.Anything, "acc").Return(sampleUsers(), nil).Once()

	rec := httptest.NewRecorder()
	newHandler(t, svc).ServeHTTP(rec, request("/admin/users"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
	assert.Contains(t, rec.Body.String(), "bob")
}

func TestUserlist_RoleFilter(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("ListUsers", mock.Anything, "acc").Return(sampleUsers(), nil).Once()

	rec := httptest.NewRecorder()
	newHandler(t, svc).ServeHTTP(rec, request("/admin/users?role=admin"))

	body := rec.Body.String()
	assert.Contains(t, body, "alice")
	assert.NotContains(t, body, "bob@mail.com")
	// Фильтр остаётся в формах переключения блокировки.
	assert.Contains(t, body, "role=admin")
}

func TestUserlist_SearchFilter(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("ListUsers", mock.Anything, "acc").Return(sampleUsers(), nil).Once()

	rec := httptest.NewRecorder()
	newHandler(t, svc).ServeHTTP(rec, request("/admin/users?search=bob"))

	assert.Contains(t, rec.Body.String(), "bob")
	assert.NotContains(t, rec.Body.String(), "alice@mail.com")
}

func TestUserlist_SelectedDetails(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("ListUsers", mock.Anything, "acc").Return(sampleUsers(), nil).Once()

	rec := httptest.NewRecorder()
	newHandler(t, svc).ServeHTTP(rec, request("/admin/users?selected=2"))

	assert.Contains(t, rec.Body.String(), "تفاصيل المستخدم")
	assert.Contains(t, rec.Body.String(), "bob@mail.com")
}

func TestUserlist_LoadError(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("ListUsers", mock.Anything, "acc").
		Return(nil, &backend.Error{Kind: backend.KindUnknown, StatusCode: 500}).Once()

	rec := httptest.NewRecorder()
	newHandler(t, svc).ServeHTTP(rec, request("/admin/users"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), locale.ErrLoadUsersFailed)
}

func TestUserlist_TokenErrorRedirects(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("ListUsers", mock.Anything, "acc").
		Return(nil, &backend.Error{Kind: backend.KindTokenExpired, StatusCode: 401}).Once()

	rec := httptest.NewRecorder()
	newHandler(t, svc).ServeHTTP(rec, request("/admin/users"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestUserlist_BanErrorFlag(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("ListUsers", mock.Anything, "acc").Return(sampleUsers(), nil).Once()

	rec := httptest.NewRecorder()
	newHandler(t, svc).ServeHTTP(rec, request("/admin/users?err=ban"))

	assert.Contains(t, rec.Body.String(), locale.ErrBanToggleFailed)
}
