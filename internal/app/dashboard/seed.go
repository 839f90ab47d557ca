package dashboard

import (
	"fmt"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/entity"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

var (
	demoServices = []models.Service{
		{ID: "1", Name: "Oil Change", Description: "Complete oil change service with filter replacement", Duration: 60, Price: 49.99},
		{ID: "2", Name: "Brake Service", Description: "Brake pad replacement and rotor inspection", Duration: 120, Price: 199.99},
		{ID: "3", Name: "Tire Rotation", Description: "Rotate and balance all tires", Duration: 45, Price: 29.99},
	}

	demoReservations = []models.Reservation{
		{
			ID:            "1",
			CustomerName:  "John Doe",
			CustomerEmail: "john@example.com",
			CustomerPhone: "(555) 123-4567",
			ServiceID:     "1",
			Date:          "2025-03-20",
			Time:          "09:00",
			Status:        models.StatusConfirmed,
		},
		{
			ID:            "2",
			CustomerName:  "Jane Smith",
			CustomerEmail: "jane@example.com",
			CustomerPhone: "(555) 987-6543",
			ServiceID:     "2",
			Date:          "2025-03-21",
			Time:          "14:30",
			Status:        models.StatusPending,
		},
	}

	demoCustomFields = []models.CustomField{
		{ID: "1", Label: "Vehicle Make", Type: models.FieldText, Required: true},
		{ID: "2", Label: "Vehicle Model", Type: models.FieldText, Required: true},
		{ID: "3", Label: "Vehicle Year", Type: models.FieldNumber, Required: true},
	}

	demoPaymentMethods = []models.PaymentMethod{
		{ID: "stripe", Name: "Stripe", Enabled: true, APIKey: "pk_test_...", WebhookSecret: "whsec_..."},
		{ID: "paypal", Name: "PayPal"},
		{ID: "square", Name: "Square"},
	}
)

// seed заполняет коллекции демонстрационными данными.
func seed(stores Stores, reservationStore *entity.Store[models.Reservation]) error {
	const op = "dashboard.seed"
	if err := insertAll(stores.Services, demoServices); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := insertAll(reservationStore, demoReservations); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := insertAll(stores.CustomFields, demoCustomFields); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := insertAll(stores.PaymentMethods, demoPaymentMethods); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func insertAll[T entity.Record[T]](s *entity.Store[T], records []T) error {
	for _, rec := range records {
		if err := s.Insert(rec); err != nil {
			return err
		}
	}
	return nil
}
