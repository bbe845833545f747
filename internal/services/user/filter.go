package user

import (
	"strings"

	"github.com/magabrotheeeer/academy-gateway/internal/models"
)

// ApplyFilter возвращает пользователей, проходящих все критерии сразу.
// Чистая функция: исходный срез не изменяется, порядок сохраняется.
func ApplyFilter(users []models.User, f models.FilterCriteria) []models.User {
	result := make([]models.User, 0, len(users))
	for _, u := range users {
		if matches(u, f) {
			result = append(result, u)
		}
	}
	return result
}

func matches(u models.User, f models.FilterCriteria) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		inUserName := strings.Contains(strings.ToLower(u.UserName), q)
		inEmail := strings.Contains(strings.ToLower(u.Email), q)
		inDisplayName := u.DisplayName != "" && strings.Contains(strings.ToLower(u.DisplayName), q)
		if !inUserName && !inEmail && !inDisplayName {
			return false
		}
	}
	if f.Role != models.FilterAll && u.Role != f.Role {
		return false
	}
	if !matchBool(f.Verified, u.IsEmailVerified) {
		return false
	}
	if !matchBool(f.Banned, u.IsBanned) {
		return false
	}
	if !matchBool(f.Deleted, u.IsDeleted) {
		return false
	}
	if f.Gender != models.FilterAll && u.Gender != f.Gender {
		return false
	}
	if f.City != models.FilterAll && u.City != f.City {
		return false
	}
	return true
}

func matchBool(filter string, actual bool) bool {
	if filter == models.FilterAll || filter == "" {
		return true
	}
	return (filter == "true") == actual
}
