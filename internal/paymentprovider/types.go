package paymentprovider

import "time"

// CheckoutRequest — запрос на оплату тарифа.
type CheckoutRequest struct {
	PlanID   string  `json:"planId" validate:"required"`
	UserID   string  `json:"userId"`
	Email    string  `json:"email"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Confirmation — подтверждение оплаты от провайдера.
type Confirmation struct {
	PaymentID   string    `json:"paymentId"`
	PlanID      string    `json:"planId"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}
