// Package courses реализует HTTP-обработчик каталога курсов.
package courses

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/academy-gateway/internal/lib/sl"
	"github.com/magabrotheeeer/academy-gateway/internal/web"
)

// Renderer описывает рендеринг HTML-страниц.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler обрабатывает HTTP-запросы каталога курсов.
type Handler struct {
	log      *slog.Logger
	renderer Renderer
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, renderer Renderer) *Handler {
	return &Handler{log: log, renderer: renderer}
}

// ServeHTTP отдает каталог курсов направления Frontend.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view := web.CoursesView{Courses: web.FrontendCourses}
	if err := h.renderer.Render(w, web.PageCourses, view); err != nil {
		h.log.Error("failed to render courses page", sl.Err(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
