package dashboard

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/catalog"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/config"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/guard"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/auth/session"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/entity/create"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/entity/list"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/entity/remove"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/entity/update"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/health"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/navigate"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/plans"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/reservations/confirmation"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/settings"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/subscription/choose"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/subscription/clear"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/handlers/subscription/read"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/middlewarectx"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/jwt"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/metrics"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/services/reservations"
)

// Deps — зависимости HTTP API.
type Deps struct {
	Stores    Stores
	Tokens    jwt.Maker
	Metrics   *metrics.Collector
	RateLimit config.RateLimit
}

// detailedReservations отдаёт записи вместе с названиями услуг.
type detailedReservations struct {
	book *reservations.Book
}

func (d detailedReservations) List() []reservations.Detailed {
	return d.book.ListDetailed()
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	stores := deps.Stores
	m := deps.Metrics

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// guarded открывает группу ресурсов, доступных как страница path панели.
	guarded := func(r chi.Router, path string) {
		r.Use(middlewarectx.GuardMiddleware(logger, path, stores.Session, stores.Subscription, m.GuardDecision))
		r.Use(middlewarectx.JWTMiddleware(deps.Tokens, stores.Session, logger))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New().ServeHTTP)
		r.Get("/plans", plans.New(catalog.Plans).ServeHTTP)
		r.Get("/navigate", navigate.New(stores.Session, stores.Subscription, m.GuardDecision).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, deps.RateLimit.RPS, deps.RateLimit.Burst))
			r.With(middlewarectx.GuardMiddleware(logger, guard.PathLogin, stores.Session, stores.Subscription, m.GuardDecision)).
				Post("/login", login.New(logger, stores.Session, deps.Tokens).ServeHTTP)
			r.With(middlewarectx.GuardMiddleware(logger, guard.PathRegister, stores.Session, stores.Subscription, m.GuardDecision)).
				Post("/register", register.New(logger, stores.Session, deps.Tokens).ServeHTTP)
		})

		r.Group(func(r chi.Router) {
			guarded(r, guard.PathRoot)
			r.Post("/logout", logout.New(logger, stores.Session).ServeHTTP)
			r.Get("/session", session.New(stores.Session, stores.Subscription).ServeHTTP)
		})

		r.Group(func(r chi.Router) {
			guarded(r, guard.PathSubscription)
			r.Get("/subscription", read.New(stores.Subscription).ServeHTTP)
			r.Put("/subscription", choose.New(logger, stores.Subscription, m.Checkout).ServeHTTP)
			r.Delete("/subscription", clear.New(logger, stores.Subscription).ServeHTTP)
		})

		r.Group(func(r chi.Router) {
			guarded(r, guard.PathServices)
			r.Get("/services", list.New[models.Service](logger, "services", stores.Services).ServeHTTP)
			r.Post("/services", create.New[models.Service](logger, "services", stores.Services).ServeHTTP)
			r.Put("/services/{id}", update.New[models.Service](logger, "services", stores.Services).ServeHTTP)
			r.Delete("/services/{id}", remove.New(logger, "services", stores.Services).ServeHTTP)
		})

		r.Group(func(r chi.Router) {
			guarded(r, guard.PathReservations)
			book := stores.Reservations
			r.Get("/reservations", list.New[reservations.Detailed](logger, "reservations", detailedReservations{book: book}).ServeHTTP)
			r.Post("/reservations", create.New[models.Reservation](logger, "reservations", book).ServeHTTP)
			r.Put("/reservations/{id}", update.New[models.Reservation](logger, "reservations", book).ServeHTTP)
			r.Delete("/reservations/{id}", remove.New(logger, "reservations", book).ServeHTTP)
			r.Get("/reservations/{id}/confirmation", confirmation.New(logger, book, stores.Settings).ServeHTTP)
		})

		r.Group(func(r chi.Router) {
			guarded(r, guard.PathCustomFields)
			r.Get("/custom-fields", list.New[models.CustomField](logger, "custom-fields", stores.CustomFields).ServeHTTP)
			r.Post("/custom-fields", create.New[models.CustomField](logger, "custom-fields", stores.CustomFields).ServeHTTP)
			r.Put("/custom-fields/{id}", update.New[models.CustomField](logger, "custom-fields", stores.CustomFields).ServeHTTP)
			r.Delete("/custom-fields/{id}", remove.New(logger, "custom-fields", stores.CustomFields).ServeHTTP)
		})

		r.Group(func(r chi.Router) {
			guarded(r, guard.PathPayments)
			r.Get("/payment-methods", list.New[models.PaymentMethod](logger, "payment-methods", stores.PaymentMethods).ServeHTTP)
			r.Post("/payment-methods", create.New[models.PaymentMethod](logger, "payment-methods", stores.PaymentMethods).ServeHTTP)
			r.Put("/payment-methods/{id}", update.New[models.PaymentMethod](logger, "payment-methods", stores.PaymentMethods).ServeHTTP)
			r.Delete("/payment-methods/{id}", remove.New(logger, "payment-methods", stores.PaymentMethods).ServeHTTP)
		})

		r.Group(func(r chi.Router) {
			guarded(r, guard.PathSettings)
			s := stores.Settings
			r.Get("/settings/white-label", settings.NewGet(s.WhiteLabel).ServeHTTP)
			r.Put("/settings/white-label", settings.NewPut(logger, "white-label", s.UpdateWhiteLabel).ServeHTTP)
			r.Get("/settings/email", settings.NewGet(s.EmailSettings).ServeHTTP)
			r.Put("/settings/email", settings.NewPut(logger, "email", s.UpdateEmailSettings).ServeHTTP)
			r.Get("/settings/business-hours", settings.NewGet(s.BusinessHours).ServeHTTP)
			r.Put("/settings/business-hours", settings.NewPut(logger, "business-hours", s.UpdateBusinessHours).ServeHTTP)
		})
	})

	r.Handle("/metrics", m.Handler())
}
