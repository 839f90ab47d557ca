// Package list реализует HTTP-обработчик списка записей коллекции.
package list

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
)

// Service отдаёт записи коллекции в порядке добавления.
type Service[T any] interface {
	List() []T
}

type Handler[T any] struct {
	log        *slog.Logger
	collection string
	service    Service[T]
}

func New[T any](log *slog.Logger, collection string, service Service[T]) *Handler[T] {
	return &Handler[T]{log: log, collection: collection, service: service}
}

func (h *Handler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entity.list"

	items := h.service.List()
	h.log.Debug("collection listed",
		slog.String("op", op),
		sl.Request(r),
		slog.String("collection", h.collection),
		slog.Int("count", len(items)),
	)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"items": items,
		"count": len(items),
	}))
}
