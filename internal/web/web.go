// Package web отвечает за серверный рендеринг HTML‑страниц шлюза.
// Шаблоны встраиваются в бинарник и разбираются один раз при старте;
// каждая страница собирается из общего каркаса layout.html и своего
// блока content.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Имена страниц совпадают с именами файлов шаблонов без расширения.
const (
	PageLogin    = "login"
	PageRegister = "register"
	PageForgot   = "forgot"
	PageProfile  = "profile"
	PageBanned   = "banned"
	PageUsers    = "users"
	PageCourses  = "courses"
)

var pageNames = []string{
	PageLogin, PageRegister, PageForgot,
	PageProfile, PageBanned, PageUsers, PageCourses,
}

var funcs = template.FuncMap{
	// seq возвращает строки from..to для селекторов дня рождения.
	"seq": func(from, to int) []string {
		out := make([]string, 0, to-from+1)
		for i := from; i <= to; i++ {
			out = append(out, strconv.Itoa(i))
		}
		return out
	},
	// years возвращает годы от текущего вниз до 1900.
	"years": func() []string {
		current := time.Now().Year()
		out := make([]string, 0, current-1900+1)
		for y := current; y >= 1900; y-- {
			out = append(out, strconv.Itoa(y))
		}
		return out
	},
}

// Renderer хранит разобранные шаблоны страниц.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer разбирает все встроенные шаблоны.
func NewRenderer() (*Renderer, error) {
	const op = "web.NewRenderer"

	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", op, name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Render пишет страницу name с данными data.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	const op = "web.Render"

	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("%s: unknown page %q", op, name)
	}
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
