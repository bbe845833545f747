// Package backend реализует REST-клиент внешнего сервиса аутентификации
// и нормализацию его ошибок.
//
// Бэкенд различает ошибки только текстом поля message, поэтому сопоставление
// строк выполняется ровно в одном месте — здесь. Всё, что выше клиента,
// работает с перечислением ErrorKind и не знает формулировок бэкенда.
package backend

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind — нормализованный вид ошибки бэкенда.
type ErrorKind int

const (
	// KindUnknown — неклассифицированная ошибка или сбой сети.
	KindUnknown ErrorKind = iota
	// KindInvalidCredentials — неверная пара почта/пароль.
	KindInvalidCredentials
	// KindUserNotFound — пользователь не найден.
	KindUserNotFound
	// KindUserBanned — учётная запись заблокирована администратором.
	KindUserBanned
	// KindTokenExpired — срок действия токена истёк.
	KindTokenExpired
	// KindTokenBlacklisted — токен отозван.
	KindTokenBlacklisted
	// KindNotLoggedIn — запрос без действующей аутентификации.
	KindNotLoggedIn
	// KindInvalidOTP — неверный код подтверждения.
	KindInvalidOTP
	// KindUsernameTaken — логин уже занят.
	KindUsernameTaken
	// KindPhoneTaken — телефон уже занят.
	KindPhoneTaken
	// KindEmailTaken — почта уже занята.
	KindEmailTaken
	// KindPasswordMismatch — пароль и подтверждение не совпали (поймано бэкендом).
	KindPasswordMismatch
	// KindConnection — транспортный сбой: до бэкенда не достучались,
	// ответа с сообщением нет.
	KindConnection
)

// Error — ошибка бэкенда после нормализации.
// Message хранит исходный текст ответа и нужен только для логов.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: %d %s", e.StatusCode, e.Message)
}

// KindOf возвращает нормализованный вид ошибки.
// Для любого не-backend значения, включая nil, возвращает KindUnknown.
func KindOf(err error) ErrorKind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnknown
}

// classify сопоставляет текст сообщения бэкенда с ErrorKind.
// Сначала точные формулировки, затем эвристика по статусу: оригинальный
// клиент трактовал 401/404 на входе как неверные учётные данные.
func classify(statusCode int, message string) ErrorKind {
	switch message {
	case "Please Login":
		return KindNotLoggedIn
	case "Token Expired":
		return KindTokenExpired
	case "Token Blacklisted":
		return KindTokenBlacklisted
	case "User not found":
		return KindUserNotFound
	case "Invalid OTP":
		return KindInvalidOTP
	case "Username already exists":
		return KindUsernameTaken
	case "Phone already exists":
		return KindPhoneTaken
	case "Email already exists":
		return KindEmailTaken
	case "Passwords do not match":
		return KindPasswordMismatch
	}
	// Формулировка для бана в API не зафиксирована, ловим по слову.
	if strings.Contains(strings.ToLower(message), "banned") {
		return KindUserBanned
	}
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusNotFound {
		return KindInvalidCredentials
	}
	return KindUnknown
}
