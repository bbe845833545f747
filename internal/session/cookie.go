package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// ErrSealedValue возвращается, когда cookie не удаётся распечатать.
var ErrSealedValue = errors.New("sealed value is malformed or forged")

// Codec запечатывает значения в cookie с помощью nacl/secretbox.
// Ключ выводится из секрета конфигурации через SHA-256.
type Codec struct {
	key [32]byte
}

// NewCodec создает Codec из секрета конфигурации.
func NewCodec(secret string) *Codec {
	return &Codec{key: sha256.Sum256([]byte(secret))}
}

// Seal шифрует и аутентифицирует значение, пригодное для cookie.
func (c *Codec) Seal(plain []byte) (string, error) {
	const op = "session.Seal"
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	sealed := secretbox.Seal(nonce[:], plain, &nonce, &c.key)
	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Open распечатывает значение из cookie. Для повреждённого или подделанного
// значения возвращает ErrSealedValue.
func (c *Codec) Open(value string) ([]byte, error) {
	const op = "session.Open"
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil || len(raw) < nonceSize {
		return nil, fmt.Errorf("%s: %w", op, ErrSealedValue)
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &c.key)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrSealedValue)
	}
	return plain, nil
}

// CookieStore хранит записи целиком в запечатанных cookie,
// серверного состояния нет.
type CookieStore struct {
	codec *Codec
}

// NewCookieStore создает CookieStore с данным кодеком.
func NewCookieStore(codec *Codec) *CookieStore {
	return &CookieStore{codec: codec}
}

// Get читает и распечатывает запись. Повреждённая или чужая cookie
// равносильна отсутствию записи.
func (s *CookieStore) Get(_ context.Context, r *http.Request, name string, out any) (bool, error) {
	cookie, err := r.Cookie(name)
	if err != nil {
		return false, nil
	}
	plain, err := s.codec.Open(cookie.Value)
	if err != nil {
		return false, nil
	}
	if err := json.Unmarshal(plain, out); err != nil {
		return false, nil
	}
	return true, nil
}

// Set сериализует, запечатывает и выставляет cookie.
func (s *CookieStore) Set(_ context.Context, w http.ResponseWriter, _ *http.Request, name string, value any, ttl time.Duration) error {
	const op = "session.CookieStore.Set"
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	sealed, err := s.codec.Seal(data)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    sealed,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear гасит cookie записи.
func (s *CookieStore) Clear(_ context.Context, w http.ResponseWriter, _ *http.Request, name string) error {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
