// Package choose реализует HTTP-обработчик выбора тарифа.
//
// Тариф оплачивается через платёжного провайдера и выбирается только после
// подтверждения оплаты.
package choose

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/middlewarectx"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/http/response"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/validation"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/paymentprovider"
)

// Request — выбранный тариф.
type Request struct {
	PlanID string `json:"planId" validate:"required"`
}

// Service описывает оплату и выбор тарифа.
type Service interface {
	Subscribe(ctx context.Context, planID string, identity models.Identity) (*paymentprovider.Confirmation, error)
}

// Observer получает тариф и исход оплаты.
type Observer func(plan, outcome string)

type Handler struct {
	log      *slog.Logger
	service  Service
	observe  Observer
	validate *validator.Validate
}

func New(log *slog.Logger, service Service, observe Observer) *Handler {
	if observe == nil {
		observe = func(string, string) {}
	}
	return &Handler{
		log:      log,
		service:  service,
		observe:  observe,
		validate: validation.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.choose"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
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

	identity, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Redirect("unauthorized", "/login"))
		return
	}

	conf, err := h.service.Subscribe(r.Context(), req.PlanID, identity)
	if err != nil {
		log.Error("subscribe failed", slog.String("plan_id", req.PlanID), sl.Err(err))
		h.observe(req.PlanID, "failure")
		status, resp := response.FromError(err)
		w.WriteHeader(status)
		render.JSON(w, r, resp)
		return
	}
	h.observe(req.PlanID, "success")

	log.Info("plan subscribed", slog.String("plan_id", req.PlanID), slog.String("payment_id", conf.PaymentID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"currentPlan": req.PlanID,
		"payment":     conf,
	}))
}
