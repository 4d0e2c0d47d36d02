package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dkravtsov/shopfront/config"
	"github.com/dkravtsov/shopfront/internal/api"
	"github.com/dkravtsov/shopfront/internal/cart"
	"github.com/dkravtsov/shopfront/internal/checkout"
	"github.com/dkravtsov/shopfront/internal/notify"
	"github.com/dkravtsov/shopfront/internal/ports"
	filestore "github.com/dkravtsov/shopfront/internal/storage/file"
	redisstore "github.com/dkravtsov/shopfront/internal/storage/redis"
	rest "github.com/dkravtsov/shopfront/internal/transport/http"
	"github.com/dkravtsov/shopfront/pkg/logger"
	"github.com/dkravtsov/shopfront/pkg/metrics"
	"github.com/dkravtsov/shopfront/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	Cart            *cart.Store
	Sessions        *checkout.Registry
	shutdownTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newCartStorage — выбор бэкенда блоба корзины по конфигурации.
func newCartStorage(ctx context.Context, cfg config.Storage) (ports.CartStorage, func() error, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "file":
		st, err := filestore.NewStorage(cfg.Dir)
		if err != nil {
			return nil, nil, err
		}
		return st, func() error { return nil }, nil
	case "redis":
		st, err := redisstore.NewStorage(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Хранилище блоба корзины: file по умолчанию, redis для stateless-развёртываний.
	storage, closeStorage, err := newCartStorage(ctx, cfg.Storage)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сборка зависимостей доменного слоя.
	notifier := notify.NewLogNotifier(logg)
	backend := api.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logg)
	cartStore := cart.NewStore(ctx, storage, notifier, logg)
	orch := checkout.NewOrchestrator(cartStore, backend, notifier, logg)
	watcher := checkout.NewPixWatcher(backend, notifier, logg, checkout.WatcherConfig{
		Interval:     cfg.Pix.PollInterval,
		ConfirmDelay: cfg.Pix.ConfirmDelay,
		MaxWait:      cfg.Pix.MaxWait,
	})
	sessions := checkout.NewRegistry(ctx, watcher, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(cartStore, orch, sessions, backend, backend, backend, logg)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Cart:            cartStore,
		Sessions:        sessions,
		shutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if serr := closeStorage(); serr != nil {
			logg.Warnf(ctx, "close cart storage: %v", serr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер; ждёт отмены контекста или ошибки и останавливает его.
// PIX-наблюдатели живут на том же ctx и завершаются вместе с ним.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "http server error: %v", err)
	}

	st := a.shutdownTimeout
	if st <= 0 {
		st = 5 * time.Second
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), st)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
		return err
	}
	a.Logger.Infof(ctx, "http server stopped gracefully")
	return nil
}
