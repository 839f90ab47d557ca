// Package clear реализует HTTP-обработчик сброса выбранного тарифа.
package clear

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
)

type Service interface {
	ClearPlan(ctx context.Context) error
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.clear"

	log := h.log.With(
		slog.String("op", op),
		sl.Request(r),
	)

	if err := h.service.ClearPlan(r.Context()); err != nil {
		log.Error("failed to clear plan", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not clear plan"))
		return
	}

	log.Info("plan cleared")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"currentPlan": nil,
	}))
}
