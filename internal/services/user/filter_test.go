package user

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/academy-gateway/internal/models"
)

func sampleUsers() []models.User {
	return []models.User{
		{ID: "1", UserName: "alice", Email: "alice@mail.com", Role: "admin", Gender: "female", City: "القاهرة", IsEmailVerified: true},
		{ID: "2", UserName: "bob", Email: "bob@mail.com", Role: "user", Gender: "male", City: "الإسكندرية"},
		{ID: "3", UserName: "carol", DisplayName: "Carol D", Email: "carol@mail.com", Role: "user", Gender: "female", City: "القاهرة", IsBanned: true},
	}
}

func TestApplyFilter_Default(t *testing.T) {
	got := ApplyFilter(sampleUsers(), models.DefaultFilter())
	assert.Len(t, got, 3)
}

func TestApplyFilter_Role(t *testing.T) {
	users := []models.User{
		{UserName: "alice", Role: "admin"},
		{UserName: "bob", Role: "user"},
	}
	f := models.DefaultFilter()
	f.Role = "admin"

	got := ApplyFilter(users, f)
	assert.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].UserName)

	// Сброс фильтра возвращает полный список.
	got = ApplyFilter(users, models.DefaultFilter())
	assert.Len(t, got, 2)
}

func TestApplyFilter_Search(t *testing.T) {
	cases := []struct {
		name   string
		search string
		want   []string
	}{
		{"by username", "ali", []string{"alice"}},
		{"case insensitive", "ALICE", []string{"alice"}},
		{"by email domain", "@mail.com", []string{"alice", "bob", "carol"}},
		{"by display name", "Carol D", []string{"carol"}},
		{"no match", "zzz", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := models.DefaultFilter()
			f.Search = tc.search
			got := ApplyFilter(sampleUsers(), f)
			names := make([]string, 0, len(got))
			for _, u := range got {
				names = append(names, u.UserName)
			}
			if tc.want == nil {
				assert.Empty(t, names)
				return
			}
			assert.Equal(t, tc.want, names)
		})
	}
}

func TestApplyFilter_BoolFields(t *testing.T) {
	f := models.DefaultFilter()
	f.Banned = "true"
	got := ApplyFilter(sampleUsers(), f)
	assert.Len(t, got, 1)
	assert.Equal(t, "carol", got[0].UserName)

	f = models.DefaultFilter()
	f.Verified = "false"
	got = ApplyFilter(sampleUsers(), f)
	assert.Len(t, got, 2)
}

func TestApplyFilter_City(t *testing.T) {
	f := models.DefaultFilter()
	f.City = "القاهرة"
	got := ApplyFilter(sampleUsers(), f)
	assert.Len(t, got, 2)
}

func TestApplyFilter_Combined(t *testing.T) {
	f := models.DefaultFilter()
	f.City = "القاهرة"
	f.Gender = "female"
	f.Banned = "false"
	got := ApplyFilter(sampleUsers(), f)
	assert.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].UserName)
}

func TestApplyFilter_DoesNotMutateInput(t *testing.T) {
	users := sampleUsers()
	f := models.DefaultFilter()
	f.Role = "admin"
	_ = ApplyFilter(users, f)
	assert.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].UserName)
}
