// Package session реализует HTTP-обработчик, отдающий текущее состояние
// сессии и подписки.
package session

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/middlewarectx"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
)

type Handler struct {
	sessions middlewarectx.SessionSource
	subs     middlewarectx.SubscriptionSource
}

func New(sessions middlewarectx.SessionSource, subs middlewarectx.SubscriptionSource) *Handler {
	return &Handler{sessions: sessions, subs: subs}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	state := h.sessions.State()
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user":            state.CurrentUser,
		"isAuthenticated": state.IsAuthenticated,
		"currentPlan":     h.subs.State().CurrentPlanID,
	}))
}
