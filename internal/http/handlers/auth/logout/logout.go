// Package logout реализует HTTP-обработчик выхода из панели.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
)

// Service описывает переход выхода.
type Service interface {
	Logout(ctx context.Context) error
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.service.Logout(r.Context()); err != nil {
		// сессия уже очищена в памяти, не сохранился только снимок
		log.Warn("logout not persisted", sl.Err(err))
	}

	log.Info("logout success")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"redirect": "/login",
	}))
}
