package models

// ReservationStatus — статус записи клиента.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation — запись клиента на услугу. ServiceID — мягкая ссылка на Service,
// запись может пережить удаление услуги.
type Reservation struct {
	ID            string            `json:"id"`
	CustomerName  string            `json:"customerName" validate:"required"`
	CustomerEmail string            `json:"customerEmail" validate:"required,email"`
	CustomerPhone string            `json:"customerPhone" validate:"required"`
	ServiceID     string            `json:"serviceId" validate:"required"`
	Date          string            `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string            `json:"time" validate:"required,datetime=15:04"`
	Status        ReservationStatus `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

func (r Reservation) EntityID() string { return r.ID }

func (r Reservation) WithID(id string) Reservation {
	r.ID = id
	return r
}
