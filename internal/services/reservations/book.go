// Package reservations связывает записи клиентов с каталогом услуг.
//
// ServiceID записи — мягкая ссылка: услугу можно удалить, а запись
// останется. Такие ссылки разрешаются в UnknownServiceName.
package reservations

import (
	"fmt"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/entity"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

// UnknownServiceName подставляется вместо имени удалённой услуги.
const UnknownServiceName = "Unknown Service"

// ServiceSource отдаёт услугу по id.
type ServiceSource interface {
	Get(id string) (models.Service, bool)
}

// ServiceLookup — результат поиска услуги по ссылке из записи.
type ServiceLookup struct {
	Service models.Service
	Found   bool
}

// Detailed — запись клиента вместе с разрешённым именем услуги.
type Detailed struct {
	models.Reservation
	ServiceName string `json:"serviceName"`
}

// Book — журнал записей клиентов.
type Book struct {
	reservations *entity.Store[models.Reservation]
	services     ServiceSource
}

// NewBook создаёт журнал поверх коллекции записей и источника услуг.
func NewBook(reservations *entity.Store[models.Reservation], services ServiceSource) *Book {
	return &Book{
		reservations: reservations,
		services:     services,
	}
}

// List возвращает записи в порядке добавления.
func (b *Book) List() []models.Reservation {
	return b.reservations.List()
}

// Get ищет запись по id.
func (b *Book) Get(id string) (models.Reservation, bool) {
	return b.reservations.Get(id)
}

// Add создаёт запись. Пустой статус становится pending.
func (b *Book) Add(r models.Reservation) models.Reservation {
	return b.reservations.Add(withDefaultStatus(r))
}

// Update заменяет поля записи. Пустой статус становится pending.
func (b *Book) Update(id string, patch models.Reservation) (models.Reservation, error) {
	const op = "reservations.Update"
	updated, err := b.reservations.Update(id, withDefaultStatus(patch))
	if err != nil {
		return models.Reservation{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// Remove удаляет запись.
func (b *Book) Remove(id string) error {
	const op = "reservations.Remove"
	if err := b.reservations.Remove(id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// LookupService ищет услугу, на которую ссылается запись.
func (b *Book) LookupService(serviceID string) ServiceLookup {
	s, ok := b.services.Get(serviceID)
	return ServiceLookup{Service: s, Found: ok}
}

// ResolveServiceName возвращает имя услуги или UnknownServiceName.
func (b *Book) ResolveServiceName(serviceID string) string {
	if l := b.LookupService(serviceID); l.Found {
		return l.Service.Name
	}
	return UnknownServiceName
}

// ListDetailed возвращает записи с именами услуг.
func (b *Book) ListDetailed() []Detailed {
	list := b.reservations.List()
	out := make([]Detailed, 0, len(list))
	for _, r := range list {
		out = append(out, b.detail(r))
	}
	return out
}

// Detail дополняет одну запись именем услуги.
func (b *Book) Detail(r models.Reservation) Detailed {
	return b.detail(r)
}

func (b *Book) detail(r models.Reservation) Detailed {
	return Detailed{Reservation: r, ServiceName: b.ResolveServiceName(r.ServiceID)}
}

func withDefaultStatus(r models.Reservation) models.Reservation {
	if r.Status == "" {
		r.Status = models.StatusPending
	}
	return r
}
