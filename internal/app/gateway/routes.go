// Package gateway собирает HTTP-приложение шлюза: хранилище сессий,
// клиент бэкенда, сервисы и маршруты.
package gateway

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/academy-gateway/internal/backend"
	"github.com/magabrotheeeer/academy-gateway/internal/http/handlers/auth/forgot"
	"github.com/magabrotheeeer/academy-gateway/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/academy-gateway/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/academy-gateway/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/academy-gateway/internal/http/handlers/auth/resend"
	"github.com/magabrotheeeer/academy-gateway/internal/http/handlers/auth/reset"
	"github.com/magabrotheeeer/academy-gateway/internal/http/handlers/health"
	"github.com/magabrotheeeer/academy-gateway/internal/http/handlers/user/courses"
	"github.com/magabrotheeeer/academy-gateway/internal/http/handlers/user/profile"
	"github.com/magabrotheeeer/academy-gateway/internal/http/handlers/user/toggleban"
	"github.com/magabrotheeeer/academy-gateway/internal/http/handlers/user/userlist"
	"github.com/magabrotheeeer/academy-gateway/internal/http/middlewarectx"
	"github.com/magabrotheeeer/academy-gateway/internal/services/resetflow"
	"github.com/magabrotheeeer/academy-gateway/internal/services/user"
	"github.com/magabrotheeeer/academy-gateway/internal/session"
	"github.com/magabrotheeeer/academy-gateway/internal/web"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, renderer *web.Renderer, manager *session.Manager, client *backend.Client, resetService *resetflow.Service, userService *user.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(middlewarectx.SessionMiddleware(manager, logger))

	loginHandler := login.New(logger, client, manager, renderer)
	registerHandler := register.New(logger, client, renderer)
	forgotHandler := forgot.New(logger, resetService, manager, renderer)

	// Публичные страницы
	r.Get("/", loginHandler.ShowPage)
	r.Get("/register", registerHandler.ShowPage)
	r.Get("/forgot-password", forgotHandler.ShowPage)

	// Формы аутентификации с ограничением частоты
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/login", loginHandler.ServeHTTP)
		r.Post("/register", registerHandler.ServeHTTP)
		r.Post("/forgot-password", forgotHandler.ServeHTTP)
		r.Post("/forgot-password/resend", resend.New(logger, resetService, manager).ServeHTTP)
		r.Post("/forgot-password/back", forgotHandler.Back)
		r.Post("/reset-password", reset.New(logger, resetService, manager, renderer).ServeHTTP)
	})

	// Группа с обязательной сессией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RequireSession(logger))
		r.Post("/logout", logout.New(logger, client, manager).ServeHTTP)
		r.Get("/profile", profile.New(logger, userService, manager, renderer).ServeHTTP)
		r.Get("/profile/courses", courses.New(logger, renderer).ServeHTTP)

		// Административные экраны
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RequireAdmin(logger))
			r.Get("/admin/users", userlist.New(logger, userService, renderer).ServeHTTP)
			r.Post("/admin/users/{id}/toggle-ban", toggleban.New(logger, userService).ServeHTTP)
		})
	})

	r.Get("/healthz", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
