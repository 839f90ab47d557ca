// Package paymentprovider содержит заглушку платёжного провайдера, который
// подтверждает оплату тарифа перед его активацией.
package paymentprovider

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

// DefaultCurrency подставляется, если валюта в запросе не указана.
const DefaultCurrency = "USD"

// Client — заглушка провайдера: подтверждает любой запрос с непустым
// тарифом и неотрицательной суммой после фиксированной задержки.
type Client struct {
	log   *slog.Logger
	delay time.Duration
	now   func() time.Time
}

// NewClient создаёт заглушку провайдера с задержкой ответа delay.
func NewClient(log *slog.Logger, delay time.Duration) *Client {
	return &Client{
		log:   log,
		delay: delay,
		now:   time.Now,
	}
}

// Checkout проводит оплату. Отказ возвращается как models.ErrPayment.
func (c *Client) Checkout(ctx context.Context, req CheckoutRequest) (*Confirmation, error) {
	const op = "paymentprovider.Checkout"

	if strings.TrimSpace(req.PlanID) == "" {
		return nil, fmt.Errorf("%s: empty plan: %w", op, models.ErrPayment)
	}
	if req.Amount < 0 {
		return nil, fmt.Errorf("%s: negative amount %.2f: %w", op, req.Amount, models.ErrPayment)
	}

	if c.delay > 0 {
		t := time.NewTimer(c.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-t.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	currency := req.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	conf := &Confirmation{
		PaymentID:   uuid.NewString(),
		PlanID:      req.PlanID,
		Amount:      req.Amount,
		Currency:    currency,
		ConfirmedAt: c.now().UTC(),
	}
	c.log.Info("payment confirmed",
		slog.String("payment_id", conf.PaymentID),
		slog.String("plan_id", conf.PlanID),
		slog.String("user_id", req.UserID),
	)
	return conf, nil
}
