package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second)
}

func TestLogin_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@mail.com", body["email"])
		assert.Equal(t, "secret1", body["password"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"accessToken":  "acc",
			"refreshToken": "ref",
		})
	})

	sess, err := client.Login(context.Background(), "user@mail.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "acc", sess.AccessToken)
	assert.Equal(t, "ref", sess.RefreshToken)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "wrong password"})
	})

	_, err := client.Login(context.Background(), "user@mail.com", "bad")
	require.Error(t, err)
	assert.Equal(t, KindInvalidCredentials, KindOf(err))
}

func TestProfile_SendsAccessTokenHeader(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/user/profile", r.URL.Path)
		assert.Equal(t, "acc-token", r.Header.Get("accessToken"))
		assert.Empty(t, r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]any{
				"userName": "alice",
				"email":    "alice@mail.com",
				"role":     "admin",
			},
		})
	})

	user, err := client.Profile(context.Background(), "acc-token")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)
	assert.True(t, user.IsAdmin())
}

func TestProfile_TokenExpired(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Token Expired"})
	})

	_, err := client.Profile(context.Background(), "stale")
	assert.Equal(t, KindTokenExpired, KindOf(err))
}

func TestRefreshToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/refresh-token", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ref", body["refreshToken"])

		_ = json.NewEncoder(w).Encode(map[string]string{"accessToken": "fresh"})
	})

	token, err := client.RefreshToken(context.Background(), "ref")
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
}

func TestToggleBan_Path(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/user/toggle-ban/abc123", r.URL.Path)
		assert.Equal(t, "acc", r.Header.Get("accessToken"))
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, client.ToggleBan(context.Background(), "acc", "abc123"))
}

func TestForgetPassword_Methods(t *testing.T) {
	var methods []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/forget-password", r.URL.Path)
		methods = append(methods, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, client.SendResetOTP(context.Background(), "user@mail.com"))
	require.NoError(t, client.ResendResetOTP(context.Background(), "user@mail.com"))
	// Первичная отправка идёт PATCH, повторная — POST.
	assert.Equal(t, []string{http.MethodPatch, http.MethodPost}, methods)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		want       ErrorKind
	}{
		{"please login", http.StatusUnauthorized, "Please Login", KindNotLoggedIn},
		{"token expired", http.StatusUnauthorized, "Token Expired", KindTokenExpired},
		{"token blacklisted", http.StatusUnauthorized, "Token Blacklisted", KindTokenBlacklisted},
		{"user not found", http.StatusNotFound, "User not found", KindUserNotFound},
		{"invalid otp", http.StatusBadRequest, "Invalid OTP", KindInvalidOTP},
		{"username conflict", http.StatusConflict, "Username already exists", KindUsernameTaken},
		{"phone conflict", http.StatusConflict, "Phone already exists", KindPhoneTaken},
		{"email conflict", http.StatusConflict, "Email already exists", KindEmailTaken},
		{"password mismatch", http.StatusBadRequest, "Passwords do not match", KindPasswordMismatch},
		{"banned lowercase", http.StatusForbidden, "User is banned", KindUserBanned},
		{"banned capitalized", http.StatusForbidden, "User is Banned", KindUserBanned},
		{"401 fallback", http.StatusUnauthorized, "nope", KindInvalidCredentials},
		{"404 fallback", http.StatusNotFound, "nope", KindInvalidCredentials},
		{"500 unknown", http.StatusInternalServerError, "oops", KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.statusCode, tt.message))
		})
	}
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()
	client := New(srv.URL, 2*time.Second)

	_, err := client.Login(context.Background(), "user@mail.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, KindConnection, KindOf(err))
}

func TestKindOf_NotBackendError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(context.DeadlineExceeded))
	assert.Equal(t, KindUnknown, KindOf(nil))
}
