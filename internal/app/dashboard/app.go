// Package dashboard собирает ядро панели управления автосервисом: хранилища,
// внешние сервисы и HTTP API.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/cache"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/config"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/entity"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/jwt"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/metrics"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/paymentprovider"
	authservice "github.com/magabrotheeeer/autoservice-dashboard/internal/services/auth"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/services/reservations"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/session"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/settings"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/storage"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/storage/file"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/storage/memory"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/subscription"
)

// Stores — все хранилища состояния панели.
type Stores struct {
	Session        *session.Store
	Subscription   *subscription.Store
	Services       *entity.Store[models.Service]
	Reservations   *reservations.Book
	CustomFields   *entity.Store[models.CustomField]
	PaymentMethods *entity.Store[models.PaymentMethod]
	Settings       *settings.Store
}

type App struct {
	server  *http.Server
	logger  *slog.Logger
	stores  Stores
	metrics *metrics.Collector
	cache   *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "dashboard.New"

	st, redisCache, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	collector := metrics.NewCollector()

	users, err := authservice.NewStoredUsers(ctx, st)
	if err != nil {
		closeCache(redisCache, logger)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	auth := authservice.NewAuthService(users, logger, cfg.LoginDelay, cfg.LogoutDelay)
	if err := auth.SeedDemoAccount(ctx); err != nil {
		closeCache(redisCache, logger)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sessions := session.New(ctx, logger, st, auth)
	sessions.SetObserver(collector.SessionTransition)

	subs := subscription.New(ctx, logger, st, paymentprovider.NewClient(logger, cfg.CheckoutDelay))
	if cfg.ClearPlanOnLogout {
		sessions.OnLogout(func(ctx context.Context) {
			if err := subs.ClearPlan(ctx); err != nil {
				logger.Warn("failed to clear plan on logout", sl.Err(err))
			}
		})
	}

	observe := entity.WithObserver(collector.EntityMutation)
	services := entity.New[models.Service]("services", logger, observe)
	reservationStore := entity.New[models.Reservation]("reservations", logger, observe)

	stores := Stores{
		Session:        sessions,
		Subscription:   subs,
		Services:       services,
		Reservations:   reservations.NewBook(reservationStore, services),
		CustomFields:   entity.New[models.CustomField]("custom-fields", logger, observe),
		PaymentMethods: entity.New[models.PaymentMethod]("payment-methods", logger, observe),
		Settings:       settings.New(logger),
	}

	if cfg.SeedDemoData {
		if err := seed(stores, reservationStore); err != nil {
			closeCache(redisCache, logger)
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		logger.Info("demo data seeded")
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Stores:    stores,
		Tokens:    jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL),
		Metrics:   collector,
		RateLimit: cfg.RateLimit,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		stores:  stores,
		metrics: collector,
		cache:   redisCache,
	}, nil
}

// Handler возвращает корневой HTTP-обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Stores возвращает хранилища приложения.
func (a *App) Stores() Stores {
	return a.stores
}

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
		closeCache(a.cache, a.logger)
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		closeCache(a.cache, a.logger)
		return err
	}
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.Storage, *cache.Cache, error) {
	switch cfg.Kind {
	case config.StorageFile:
		st, err := file.New(cfg.FilePath)
		return st, nil, err
	case config.StorageRedis:
		c, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	default:
		return memory.New(), nil, nil
	}
}

func closeCache(c *cache.Cache, logger *slog.Logger) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logger.Warn("failed to close redis connection", sl.Err(err))
	}
}
