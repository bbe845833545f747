package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/academy-gateway/internal/backend"
	"github.com/magabrotheeeer/academy-gateway/internal/config"
	"github.com/magabrotheeeer/academy-gateway/internal/services/resetflow"
	"github.com/magabrotheeeer/academy-gateway/internal/services/user"
	"github.com/magabrotheeeer/academy-gateway/internal/session"
	"github.com/magabrotheeeer/academy-gateway/internal/web"
)

// App — HTTP-приложение шлюза.
type App struct {
	server *http.Server
	logger *slog.Logger
	// redis не nil только при session.store = redis.
	redis *session.RedisStore
}

// New собирает приложение по конфигурации.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "gateway.New"

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var store session.Store
	var redisStore *session.RedisStore
	switch cfg.Session.Store {
	case "redis":
		redisStore, err = session.InitStore(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		store = redisStore
	case "cookie":
		store = session.NewCookieStore(session.NewCodec(cfg.Session.CookieSecret))
	default:
		return nil, fmt.Errorf("%s: unknown session store %q", op, cfg.Session.Store)
	}
	manager := session.NewManager(store, cfg.Session)

	client := backend.New(cfg.BackendAPI.BaseURL, cfg.BackendAPI.Timeout)
	resetService := resetflow.New(client)
	userService := user.New(client, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, renderer, manager, client, resetService, userService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		redis:  redisStore,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.redis != nil {
			if cerr := a.redis.Close(); cerr != nil {
				a.logger.Error("failed to close redis store", slog.Any("err", cerr))
			}
		}
		return err
	}
}
