package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/academy-gateway/internal/config"
)

// RedisStore хранит записи в redis; в cookie клиента остаётся только
// случайный идентификатор сессии.
type RedisStore struct {
	db *redis.Client
}

// InitStore подключается к redis и проверяет соединение.
func InitStore(ctx context.Context, cfg config.RedisConnection) (*RedisStore, error) {
	const op = "session.InitStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{db: db}, nil
}

// Close закрывает соединение с redis.
func (s *RedisStore) Close() error {
	return s.db.Close()
}

func redisKey(name, sid string) string {
	return "gateway:" + name + ":" + sid
}

// Get читает запись по идентификатору из cookie.
func (s *RedisStore) Get(ctx context.Context, r *http.Request, name string, out any) (bool, error) {
	const op = "session.RedisStore.Get"
	cookie, err := r.Cookie(name)
	if err != nil {
		return false, nil
	}
	val, err := s.db.Get(ctx, redisKey(name, cookie.Value)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сохраняет запись, при необходимости выпуская новый идентификатор.
func (s *RedisStore) Set(ctx context.Context, w http.ResponseWriter, r *http.Request, name string, value any, ttl time.Duration) error {
	const op = "session.RedisStore.Set"
	sid := ""
	if cookie, err := r.Cookie(name); err == nil {
		sid = cookie.Value
	}
	if sid == "" {
		sid = uuid.NewString()
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.db.Set(ctx, redisKey(name, sid), data, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    sid,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear удаляет запись и гасит cookie.
func (s *RedisStore) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request, name string) error {
	const op = "session.RedisStore.Clear"
	if cookie, err := r.Cookie(name); err == nil {
		if err := s.db.Del(ctx, redisKey(name, cookie.Value)).Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
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
