// Package catalog содержит статический каталог тарифов.
// Каталог неизменяем: функции возвращают копии, чтобы вызывающий код
// не мог изменить эталонные данные.
package catalog

import (
	"fmt"
	"slices"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

const (
	PlanBasic      = "basic"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

var plans = []models.Plan{
	{
		ID:       PlanBasic,
		Name:     "Basic",
		Price:    29,
		Interval: models.IntervalMonth,
		Features: []string{
			"Up to 100 reservations/month",
			"Basic analytics",
			"Email support",
			"2 staff accounts",
			"Basic customization",
		},
	},
	{
		ID:       PlanPro,
		Name:     "Professional",
		Price:    79,
		Interval: models.IntervalMonth,
		Features: []string{
			"Up to 500 reservations/month",
			"Advanced analytics",
			"Priority email & chat support",
			"5 staff accounts",
			"Advanced customization",
			"Custom fields",
			"API access",
		},
		Popular: true,
	},
	{
		ID:       PlanEnterprise,
		Name:     "Enterprise",
		Price:    199,
		Interval: models.IntervalMonth,
		Features: []string{
			"Unlimited reservations",
			"Enterprise analytics",
			"24/7 phone support",
			"Unlimited staff accounts",
			"Full customization",
			"Custom fields",
			"API access",
			"Dedicated account manager",
			"Custom integrations",
		},
	},
}

// Plans возвращает все тарифы в порядке отображения.
func Plans() []models.Plan {
	out := make([]models.Plan, len(plans))
	for i, p := range plans {
		out[i] = clonePlan(p)
	}
	return out
}

// Lookup ищет тариф по id.
func Lookup(id string) (models.Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return clonePlan(p), true
		}
	}
	return models.Plan{}, false
}

// Contains сообщает, есть ли тариф в каталоге.
func Contains(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// MustLookup возвращает тариф или ошибку ErrUnknownPlan.
func MustLookup(id string) (models.Plan, error) {
	const op = "catalog.MustLookup"
	p, ok := Lookup(id)
	if !ok {
		return models.Plan{}, fmt.Errorf("%s: %q: %w", op, id, models.ErrUnknownPlan)
	}
	return p, nil
}

func clonePlan(p models.Plan) models.Plan {
	p.Features = slices.Clone(p.Features)
	return p
}
