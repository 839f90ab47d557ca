// Package plans реализует HTTP-обработчик каталога тарифов.
package plans

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

type Handler struct {
	plans func() []models.Plan
}

// New принимает источник каталога, обычно catalog.Plans.
func New(plans func() []models.Plan) *Handler {
	return &Handler{plans: plans}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"plans": h.plans(),
	}))
}
