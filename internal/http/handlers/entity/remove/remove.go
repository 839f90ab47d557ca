// Package remove реализует HTTP-обработчик удаления записи коллекции.
package remove

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
)

// Service удаляет запись по id.
type Service interface {
	Remove(id string) error
}

type Handler struct {
	log        *slog.Logger
	collection string
	service    Service
}

func New(log *slog.Logger, collection string, service Service) *Handler {
	return &Handler{log: log, collection: collection, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entity.remove"
	log := h.log.With(
		slog.String("op", op),
		sl.Request(r),
		slog.String("collection", h.collection),
	)

	id := chi.URLParam(r, "id")
	if err := h.service.Remove(id); err != nil {
		log.Error("failed to remove record", slog.String("id", id), sl.Err(err))
		status, resp := response.FromError(err)
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("record removed", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"removed": id,
	}))
}
