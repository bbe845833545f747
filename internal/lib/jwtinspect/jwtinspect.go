// Package jwtinspect извлекает claims из access-токена без проверки подписи.
//
// Шлюз не владеет секретом подписи: подлинность токена проверяет бэкенд
// на каждом запросе. Извлечённые здесь имя пользователя, роль и срок
// действия используются только для отображения навигации и для логов.
package jwtinspect

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims описывает пользовательские данные, хранящиеся в access-токене бэкенда.
type Claims struct {
	Username             string `json:"username"`
	Role                 string `json:"role"`
	jwt.RegisteredClaims        // Стандартные claims: ExpiresAt, IssuedAt и пр.
}

// Peek разбирает токен без проверки подписи и возвращает его claims.
func Peek(tokenStr string) (*Claims, error) {
	const op = "jwtinspect.Peek"
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, claims); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return claims, nil
}

// IsAdmin сообщает, заявлена ли в токене административная роль.
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

// ExpiresWithin возвращает true, если срок действия токена истёк или
// истечёт в пределах d от момента now. Для токена без ExpiresAt — false.
func (c *Claims) ExpiresWithin(now time.Time, d time.Duration) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !c.ExpiresAt.After(now.Add(d))
}
