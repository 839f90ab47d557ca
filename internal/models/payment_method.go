package models

// PaymentMethod — настройки платёжного шлюза (Stripe, PayPal, Square).
type PaymentMethod struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	Enabled       bool   `json:"enabled"`
	APIKey        string `json:"apiKey,omitempty"`
	WebhookSecret string `json:"webhookSecret,omitempty"`
}

func (p PaymentMethod) EntityID() string { return p.ID }

func (p PaymentMethod) WithID(id string) PaymentMethod {
	p.ID = id
	return p
}
