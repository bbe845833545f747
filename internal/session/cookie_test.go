package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/academy-gateway/internal/config"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := NewCodec("test-secret")

	sealed, err := codec.Seal([]byte(`{"access_token":"a"}`))
	require.NoError(t, err)
	assert.NotContains(t, sealed, "access_token")

	plain, err := codec.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, `{"access_token":"a"}`, string(plain))
}

func TestCodec_TamperedValue(t *testing.T) {
	codec := NewCodec("test-secret")
	sealed, err := codec.Seal([]byte("payload"))
	require.NoError(t, err)

	_, err = codec.Open(sealed[:len(sealed)-2] + "xx")
	assert.ErrorIs(t, err, ErrSealedValue)
}

func TestCodec_WrongKey(t *testing.T) {
	sealed, err := NewCodec("secret-one").Seal([]byte("payload"))
	require.NoError(t, err)

	_, err = NewCodec("secret-two").Open(sealed)
	assert.ErrorIs(t, err, ErrSealedValue)
}

// requestWithCookies переносит cookie из ответа в новый запрос,
// имитируя следующий заход браузера.
func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

func TestCookieStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	store := NewCookieStore(NewCodec("test-secret"))

	rec := httptest.NewRecorder()
	value := models.Session{AccessToken: "acc", RefreshToken: "ref"}
	require.NoError(t, store.Set(ctx, rec, httptest.NewRequest(http.MethodGet, "/", nil), recordSession, value, time.Hour))

	req := requestWithCookies(t, rec)
	var got models.Session
	ok, err := store.Get(ctx, req, recordSession, &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value, got)

	clearRec := httptest.NewRecorder()
	require.NoError(t, store.Clear(ctx, clearRec, req, recordSession))
	cookies := clearRec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestCookieStore_MissingOrBroken(t *testing.T) {
	ctx := context.Background()
	store := NewCookieStore(NewCodec("test-secret"))

	var got models.Session
	ok, err := store.Get(ctx, httptest.NewRequest(http.MethodGet, "/", nil), recordSession, &got)
	require.NoError(t, err)
	assert.False(t, ok)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: recordSession, Value: "garbage"})
	ok, err = store.Get(ctx, req, recordSession, &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManager_SessionInvariant(t *testing.T) {
	ctx := context.Background()
	store := NewCookieStore(NewCodec("test-secret"))
	m := NewManager(store, config.Session{TTL: time.Hour, ResetTTL: 15 * time.Minute})

	// Запись с пустым refresh-токеном считается отсутствующей.
	rec := httptest.NewRecorder()
	require.NoError(t, store.Set(ctx, rec, httptest.NewRequest(http.MethodGet, "/", nil),
		recordSession, models.Session{AccessToken: "only-access"}, time.Hour))

	sess, err := m.Session(ctx, requestWithCookies(t, rec))
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestManager_ResetFlowRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewCookieStore(NewCodec("test-secret")), config.Session{TTL: time.Hour, ResetTTL: 15 * time.Minute})

	flow := &models.ResetFlow{
		Email:           "user@mail.com",
		Step:            models.StepReset,
		ResendNotBefore: time.Now().Add(time.Minute).UTC().Truncate(time.Second),
	}
	rec := httptest.NewRecorder()
	require.NoError(t, m.SaveResetFlow(ctx, rec, httptest.NewRequest(http.MethodGet, "/", nil), flow))

	got, err := m.ResetFlow(ctx, requestWithCookies(t, rec))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, flow.Email, got.Email)
	assert.Equal(t, models.StepReset, got.Step)
	assert.True(t, flow.ResendNotBefore.Equal(got.ResendNotBefore))
}
