// Package create реализует HTTP-обработчик создания записи коллекции.
//
// Id записи назначает коллекция, id из тела запроса игнорируется.
package create

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/validation"
)

// Service добавляет запись и возвращает её с назначенным id.
type Service[T any] interface {
	Add(record T) T
}

type Handler[T any] struct {
	log        *slog.Logger
	collection string
	service    Service[T]
	validate   *validator.Validate
}

func New[T any](log *slog.Logger, collection string, service Service[T]) *Handler[T] {
	return &Handler[T]{
		log:        log,
		collection: collection,
		service:    service,
		validate:   validation.New(),
	}
}

func (h *Handler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.entity.create"
	log := h.log.With(
		slog.String("op", op),
		sl.Request(r),
		slog.String("collection", h.collection),
	)

	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	created := h.service.Add(req)

	log.Info("record created")
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"item": created,
	}))
}
