// Package subscription хранит выбранный тариф компании.
//
// Выбранный тариф всегда ссылается на запись каталога. Сохранённый id,
// которого больше нет в каталоге, отбрасывается при восстановлении.
package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/catalog"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/paymentprovider"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/storage"
)

// Checkout проводит оплату тарифа.
type Checkout interface {
	Checkout(ctx context.Context, req paymentprovider.CheckoutRequest) (*paymentprovider.Confirmation, error)
}

// Store — хранилище состояния подписки.
type Store struct {
	mu       sync.RWMutex
	state    models.SubscriptionState
	storage  storage.Storage
	checkout Checkout
	log      *slog.Logger
}

// New создаёт хранилище и восстанавливает сохранённый снимок.
func New(ctx context.Context, log *slog.Logger, st storage.Storage, checkout Checkout) *Store {
	const op = "subscription.New"
	s := &Store{
		storage:  st,
		checkout: checkout,
		log:      log.With(slog.String("component", "subscription")),
	}

	state, found, err := storage.LoadState[models.SubscriptionState](ctx, st, storage.KeySubscription)
	if err != nil {
		s.log.Warn("failed to restore subscription, starting empty", slog.String("op", op), sl.Err(err))
		return s
	}
	if !found || !state.HasPlan() {
		return s
	}
	if !catalog.Contains(*state.CurrentPlanID) {
		s.log.Warn("dropping unknown persisted plan", slog.String("plan_id", *state.CurrentPlanID))
		return s
	}
	s.state = state
	return s
}

// State возвращает копию текущего состояния.
func (s *Store) State() models.SubscriptionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CurrentPlanID == nil {
		return models.SubscriptionState{}
	}
	id := *s.state.CurrentPlanID
	return models.SubscriptionState{CurrentPlanID: &id}
}

// CurrentPlan возвращает запись каталога выбранного тарифа.
func (s *Store) CurrentPlan() (models.Plan, bool) {
	state := s.State()
	if !state.HasPlan() {
		return models.Plan{}, false
	}
	return catalog.Lookup(*state.CurrentPlanID)
}

// SetPlan выбирает тариф без оплаты. Неизвестный тариф — ErrUnknownPlan,
// состояние при этом не меняется.
func (s *Store) SetPlan(ctx context.Context, planID string) error {
	const op = "subscription.SetPlan"
	if !catalog.Contains(planID) {
		return fmt.Errorf("%s: %q: %w", op, planID, models.ErrUnknownPlan)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := planID
	s.state = models.SubscriptionState{CurrentPlanID: &id}
	s.log.Info("plan selected", slog.String("plan_id", planID))
	if err := s.persistLocked(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ClearPlan сбрасывает выбранный тариф.
func (s *Store) ClearPlan(ctx context.Context) error {
	const op = "subscription.ClearPlan"
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = models.SubscriptionState{}
	s.log.Info("plan cleared")
	if err := s.persistLocked(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Subscribe оплачивает тариф и выбирает его только после подтверждения
// провайдера. ErrPayment оставляет состояние без изменений.
func (s *Store) Subscribe(ctx context.Context, planID string, identity models.Identity) (*paymentprovider.Confirmation, error) {
	const op = "subscription.Subscribe"
	plan, err := catalog.MustLookup(planID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	conf, err := s.checkout.Checkout(ctx, paymentprovider.CheckoutRequest{
		PlanID: plan.ID,
		UserID: identity.ID,
		Email:  identity.Email,
		Amount: plan.Price,
	})
	if err != nil {
		s.log.Warn("checkout failed", slog.String("plan_id", plan.ID), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.SetPlan(ctx, plan.ID); err != nil {
		return conf, fmt.Errorf("%s: %w", op, err)
	}
	return conf, nil
}

// persistLocked сохраняет снимок. Вызывается под s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	if err := storage.SaveState(ctx, s.storage, storage.KeySubscription, s.state); err != nil {
		s.log.Warn("failed to persist subscription", sl.Err(err))
		return err
	}
	return nil
}
