// Package userlist реализует HTTP-обработчик административного списка
// пользователей. Полный список загружается с бэкенда, фильтры
// применяются на шлюзе и передаются параметрами строки запроса,
// поэтому отфильтрованное состояние можно открыть по ссылке.
package userlist

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/academy-gateway/internal/backend"
	"github.com/magabrotheeeer/academy-gateway/internal/http/middlewarectx"
	"github.com/magabrotheeeer/academy-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/academy-gateway/internal/locale"
	"github.com/magabrotheeeer/academy-gateway/internal/models"
	"github.com/magabrotheeeer/academy-gateway/internal/refdata"
	"github.com/magabrotheeeer/academy-gateway/internal/services/user"
	"github.com/magabrotheeeer/academy-gateway/internal/web"
)

// Service описывает загрузку полного списка пользователей.
type Service interface {
	ListUsers(ctx context.Context, accessToken string) ([]models.User, error)
}

// Renderer описывает рендеринг HTML-страниц.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler обрабатывает HTTP-запросы списка пользователей.
type Handler struct {
	log      *slog.Logger
	service  Service
	renderer Renderer
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, renderer Renderer) *Handler {
	return &Handler{log: log, service: service, renderer: renderer}
}

// ServeHTTP отдает список пользователей с применёнными фильтрами.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.userlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess := middlewarectx.SessionFromContext(r.Context())
	filter := parseFilter(r.URL.Query())

	view := web.UsersView{
		Filter:      filter,
		Cities:      refdata.AllCities(),
		ReturnQuery: filterQuery(filter).Encode(),
	}
	if r.URL.Query().Get("err") == "ban" {
		view.Error = locale.ErrBanToggleFailed
	}

	users, err := h.service.ListUsers(r.Context(), sess.AccessToken)
	if err != nil {
		log.Error("failed to load users", sl.Err(err))
		switch backend.KindOf(err) {
		case backend.KindTokenExpired, backend.KindTokenBlacklisted, backend.KindNotLoggedIn:
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		view.Error = locale.ErrLoadUsersFailed
		h.render(w, view)
		return
	}

	filtered := user.ApplyFilter(users, filter)
	view.Users = filtered
	view.Total = len(filtered)

	if id := r.URL.Query().Get("selected"); id != "" {
		for i := range users {
			if users[i].ID == id {
				view.Selected = &users[i]
				break
			}
		}
	}

	log.Info("users listed", slog.Int("total", len(users)), slog.Int("shown", len(filtered)))
	h.render(w, view)
}

// parseFilter читает критерии из строки запроса; пустые значения
// означают «все».
func parseFilter(q url.Values) models.FilterCriteria {
	f := models.DefaultFilter()
	f.Search = q.Get("search")
	if v := q.Get("role"); v != "" {
		f.Role = v
	}
	if v := q.Get("verified"); v != "" {
		f.Verified = v
	}
	if v := q.Get("banned"); v != "" {
		f.Banned = v
	}
	if v := q.Get("deleted"); v != "" {
		f.Deleted = v
	}
	if v := q.Get("gender"); v != "" {
		f.Gender = v
	}
	if v := q.Get("city"); v != "" {
		f.City = v
	}
	return f
}

// filterQuery собирает строку запроса из критериев, опуская значения
// по умолчанию.
func filterQuery(f models.FilterCriteria) url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	for name, v := range map[string]string{
		"role":     f.Role,
		"verified": f.Verified,
		"banned":   f.Banned,
		"deleted":  f.Deleted,
		"gender":   f.Gender,
		"city":     f.City,
	} {
		if v != models.FilterAll {
			q.Set(name, v)
		}
	}
	return q
}

func (h *Handler) render(w http.ResponseWriter, view web.UsersView) {
	if err := h.renderer.Render(w, web.PageUsers, view); err != nil {
		h.log.Error("failed to render users page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
