package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/magabrotheeeer/academy-gateway/internal/models"
)

// accessTokenHeader — нестандартный заголовок аутентификации бэкенда.
// Схема Bearer не используется, токен передаётся как есть.
const accessTokenHeader = "accessToken"

// Client — HTTP-клиент внешнего бэкенда академии.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New создает клиент для базового URL бэкенда с общим таймаутом запросов.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// RegisterRequest — тело запроса регистрации в формате бэкенда.
type RegisterRequest struct {
	DisplayName     string `json:"displayName"`
	UserName        string `json:"userName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Gender          string `json:"gender"`
	Phone           string `json:"phone"`
	Country         string `json:"country"`
	City            string `json:"city"`
	Region          string `json:"region"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type apiError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type profileResponse struct {
	User models.User `json:"user"`
}

type usersResponse struct {
	Users []models.User `json:"users"`
}

// Login обменивает почту и пароль на пару токенов.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Session, error) {
	const op = "backend.Login"
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", body, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// Register создает новую учётную запись.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	const op = "backend.Register"
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", "", req, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Logout отзывает пару токенов на бэкенде.
func (c *Client) Logout(ctx context.Context, accessToken, refreshToken string) error {
	const op = "backend.Logout"
	body := map[string]string{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", "", body, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RefreshToken выпускает новый access-токен по refresh-токену.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	const op = "backend.RefreshToken"
	body := map[string]string{"refreshToken": refreshToken}
	var resp refreshResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh-token", "", body, &resp); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return resp.AccessToken, nil
}

// SendResetOTP запускает восстановление пароля: бэкенд отправляет код на почту.
func (c *Client) SendResetOTP(ctx context.Context, email string) error {
	const op = "backend.SendResetOTP"
	body := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPatch, "/api/auth/forget-password", "", body, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ResendResetOTP повторно отправляет код восстановления.
// Отдельный маршрут бэкенда, не PATCH: так исторически устроен его API.
func (c *Client) ResendResetOTP(ctx context.Context, email string) error {
	const op = "backend.ResendResetOTP"
	body := map[string]string{"email": email}
	if err := c.do(ctx, http.MethodPost, "/api/auth/forget-password", "", body, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ResetPassword завершает восстановление: код подтверждения и новый пароль.
func (c *Client) ResetPassword(ctx context.Context, email, otp, password, confirmPassword string) error {
	const op = "backend.ResetPassword"
	body := map[string]string{
		"email":           email,
		"otp":             otp,
		"password":        password,
		"confirmPassword": confirmPassword,
	}
	if err := c.do(ctx, http.MethodPut, "/api/auth/reset-password", "", body, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Profile возвращает пользователя, которому принадлежит access-токен.
func (c *Client) Profile(ctx context.Context, accessToken string) (*models.User, error) {
	const op = "backend.Profile"
	var resp profileResponse
	if err := c.do(ctx, http.MethodGet, "/api/user/profile", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &resp.User, nil
}

// AllUsers возвращает полный список пользователей. Доступно администраторам,
// права проверяет бэкенд.
func (c *Client) AllUsers(ctx context.Context, accessToken string) ([]models.User, error) {
	const op = "backend.AllUsers"
	var resp usersResponse
	if err := c.do(ctx, http.MethodGet, "/api/user/all-users", accessToken, nil, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp.Users, nil
}

// ToggleBan переключает флаг блокировки пользователя по его идентификатору.
func (c *Client) ToggleBan(ctx context.Context, accessToken, userID string) error {
	const op = "backend.ToggleBan"
	path := "/api/user/toggle-ban/" + userID
	if err := c.do(ctx, http.MethodPatch, path, accessToken, struct{}{}, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// do выполняет запрос и декодирует ответ. Ответы со статусом >= 400
// превращаются в *Error с нормализованным Kind.
func (c *Client) do(ctx context.Context, method, path, accessToken string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set(accessTokenHeader, accessToken)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Kind: KindConnection, Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		var payload apiError
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &Error{
			Kind:       classify(resp.StatusCode, payload.Message),
			StatusCode: resp.StatusCode,
			Message:    payload.Message,
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
