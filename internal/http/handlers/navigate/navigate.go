// Package navigate реализует HTTP-обработчик, отдающий решение route guard
// для пути панели из параметра path.
package navigate

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/guard"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/middlewarectx"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
)

type Handler struct {
	sessions middlewarectx.SessionSource
	subs     middlewarectx.SubscriptionSource
	observe  middlewarectx.GuardObserver
}

func New(sessions middlewarectx.SessionSource, subs middlewarectx.SubscriptionSource, observe middlewarectx.GuardObserver) *Handler {
	return &Handler{sessions: sessions, subs: subs, observe: observe}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := guard.Normalize(r.URL.Query().Get("path"))
	decision := guard.Decide(path, h.sessions.State(), h.subs.State())
	if h.observe != nil {
		label := path
		if !guard.Known(path) {
			label = "unknown"
		}
		h.observe(label, decision.Reason)
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"path":     path,
		"decision": decision,
	}))
}
