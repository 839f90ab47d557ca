// Package read реализует HTTP-обработчик, отдающий выбранный тариф.
package read

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

// Service отдаёт выбранный тариф.
type Service interface {
	CurrentPlan() (models.Plan, bool)
}

type Handler struct {
	service Service
}

func New(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	plan, ok := h.service.CurrentPlan()
	if !ok {
		render.JSON(w, r, response.StatusOKWithData(map[string]any{
			"currentPlan": nil,
		}))
		return
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"currentPlan": plan.ID,
		"plan":        plan,
	}))
}
