// Package credentialservice собирает приложение: подключение к хранилищу,
// применение миграций, бизнес-логику и HTTP-сервер.
package credentialservice

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	_ "github.com/avdoshkin/credential-service/docs" // swagger-описание API
	"github.com/avdoshkin/credential-service/internal/config"
	"github.com/avdoshkin/credential-service/internal/migrations"
	authservice "github.com/avdoshkin/credential-service/internal/services/auth"
	"github.com/avdoshkin/credential-service/internal/storage"
)

// App инкапсулирует HTTP-сервер и зависимости сервиса.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New создает приложение. Миграции применяются до создания сервера:
// при любой ошибке инициализации схемы сервис не стартует.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	authService := authservice.NewAuthService(db, cfg.PasswordHash.Cost)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, db)

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
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены контекста или ошибки сервера.
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
		_ = a.db.DB.Close()
		return err
	}
}
