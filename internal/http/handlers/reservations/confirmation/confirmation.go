// Package confirmation реализует HTTP-обработчик, отдающий текст письма
// с подтверждением записи клиента.
package confirmation

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

// Book ищет запись и имя её услуги.
type Book interface {
	Get(id string) (models.Reservation, bool)
	ResolveServiceName(serviceID string) string
}

// Renderer подставляет данные записи в шаблон письма.
type Renderer interface {
	RenderConfirmation(r models.Reservation, serviceName string) (string, error)
}

type Handler struct {
	log      *slog.Logger
	book     Book
	renderer Renderer
}

func New(log *slog.Logger, book Book, renderer Renderer) *Handler {
	return &Handler{log: log, book: book, renderer: renderer}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reservations.confirmation"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	reservation, ok := h.book.Get(id)
	if !ok {
		log.Error("reservation not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error(models.ErrNotFound.Error()))
		return
	}

	serviceName := h.book.ResolveServiceName(reservation.ServiceID)
	body, err := h.renderer.RenderConfirmation(reservation, serviceName)
	if err != nil {
		log.Error("failed to render confirmation", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not render confirmation"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"to":          reservation.CustomerEmail,
		"serviceName": serviceName,
		"body":        body,
	}))
}
