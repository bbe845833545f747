// Package models содержит доменные модели шлюза: снимок пользователя,
// сессию с парой токенов и критерии фильтрации административного списка.
// Владелец данных пользователя — внешний бэкенд, шлюз хранит только
// read-only снимки.
package models

// User представляет пользователя в том виде, в котором его отдаёт бэкенд.
type User struct {
	ID              string `json:"_id"`
	DisplayName     string `json:"displayName,omitempty"` // Отображаемое имя (опционально)
	UserName        string `json:"userName"`              // Уникальный логин, латиница и цифры
	DateOfBirth     string `json:"dateOfBirth,omitempty"` // Дата рождения в формате YYYY-MM-DD
	Gender          string `json:"gender,omitempty"`      // male, female или other
	Phone           string `json:"phone,omitempty"`
	Country         string `json:"country,omitempty"`
	City            string `json:"city,omitempty"`
	Region          string `json:"region,omitempty"`
	Email           string `json:"email"`
	Role            string `json:"role"` // user, admin или moderator
	IsEmailVerified bool   `json:"isEmailVerified"`
	IsDeleted       bool   `json:"isDeleted"`
	IsBanned        bool   `json:"isBanned"`
}

// Name возвращает имя для приветствия: displayName, а при его отсутствии логин.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.UserName
}

// IsAdmin сообщает, видит ли пользователь административные экраны.
// Фактические права проверяет бэкенд, здесь решается только отображение.
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
