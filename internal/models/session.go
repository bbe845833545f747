package models

import "time"

// Session хранит пару токенов, выданную бэкендом при входе.
// Инвариант: либо присутствуют оба токена, либо записи нет вовсе.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ResetStep — шаг двухшагового сценария восстановления пароля.
type ResetStep int

const (
	// StepEmail — ввод адреса, на который будет отправлен код.
	StepEmail ResetStep = iota
	// StepReset — ввод кода подтверждения и нового пароля.
	StepReset
)

// ResetFlow — состояние сценария восстановления пароля, живёт в сессионном
// хранилище между запросами. ResendNotBefore ограничивает повторную
// отправку кода: до этого момента кнопка повтора недоступна.
type ResetFlow struct {
	Email           string    `json:"email"`
	Step            ResetStep `json:"step"`
	ResendNotBefore time.Time `json:"resend_not_before"`
}
