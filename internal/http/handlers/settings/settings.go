// Package settings реализует HTTP-обработчики чтения и замены настроек
// панели: брендирования, шаблона письма и часов работы.
package settings

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
)

// GetHandler отдаёт текущее значение настройки.
type GetHandler[T any] struct {
	get func() T
}

// NewGet создаёт обработчик чтения настройки.
func NewGet[T any](get func() T) *GetHandler[T] {
	return &GetHandler[T]{get: get}
}

func (h *GetHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(h.get()))
}

// PutHandler проверяет и заменяет настройку.
type PutHandler[T any] struct {
	log    *slog.Logger
	name   string
	update func(T) (T, error)
}

// NewPut создаёт обработчик замены настройки. Проверку выполняет update.
func NewPut[T any](log *slog.Logger, name string, update func(T) (T, error)) *PutHandler[T] {
	return &PutHandler[T]{log: log, name: name, update: update}
}

func (h *PutHandler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.settings.put"
	log := h.log.With(
		slog.String("op", op),
		sl.Request(r),
		slog.String("setting", h.name),
	)

	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	updated, err := h.update(req)
	if err != nil {
		log.Error("failed to update setting", sl.Err(err))
		status, resp := response.FromError(err)
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("setting updated")
	render.JSON(w, r, response.StatusOKWithData(updated))
}
