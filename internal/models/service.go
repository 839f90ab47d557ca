package models

// Service — услуга автосервиса из каталога услуг.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Duration    int     `json:"duration" validate:"required,gte=1"` // минуты
	Price       float64 `json:"price" validate:"gte=0"`
}

func (s Service) EntityID() string { return s.ID }

func (s Service) WithID(id string) Service {
	s.ID = id
	return s
}
