// Package update реализует HTTP-обработчик замены полей записи коллекции.
package update

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/validation"
)

// Service заменяет все поля записи, кроме id.
type Service[T any] interface {
	Update(id string, patch T) (T, error)
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
	const op = "handlers.entity.update"
	log := h.log.With(
		slog.String("op", op),
		sl.Request(r),
		slog.String("collection", h.collection),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("id is missing in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("id is required"))
		return
	}

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

	updated, err := h.service.Update(id, req)
	if err != nil {
		log.Error("failed to update record", slog.String("id", id), sl.Err(err))
		status, resp := response.FromError(err)
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("record updated", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"item": updated,
	}))
}
