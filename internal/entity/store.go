// Package entity реализует хранилище-коллекцию в памяти для одного типа
// доменных записей: услуг, записей клиентов, пользовательских полей и
// платёжных методов.
//
// Id записи назначает хранилище, вызывающий код его не выбирает. Id
// неизменяем и уникален в пределах коллекции. List отдаёт записи в порядке
// добавления.
package entity

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

// ErrDuplicateID возвращает Insert, если запись с таким id уже есть.
var ErrDuplicateID = errors.New("duplicate id")

// Record — ограничение на тип записи коллекции.
type Record[T any] interface {
	EntityID() string
	WithID(id string) T
}

// Observer получает уведомление о каждой успешной мутации (для метрик).
type Observer func(collection, op string)

// Option настраивает Store.
type Option func(*options)

type options struct {
	newID   func() string
	observe Observer
}

// WithIDFunc подменяет генератор id.
func WithIDFunc(f func() string) Option {
	return func(o *options) { o.newID = f }
}

// WithObserver подключает наблюдателя мутаций.
func WithObserver(f Observer) Option {
	return func(o *options) { o.observe = f }
}

// Store — потокобезопасная упорядоченная коллекция записей.
type Store[T Record[T]] struct {
	mu    sync.RWMutex
	name  string
	items []T
	log   *slog.Logger
	opts  options
}

// New создаёт пустую коллекцию с именем name (используется в логах и метриках).
func New[T Record[T]](name string, log *slog.Logger, opts ...Option) *Store[T] {
	o := options{
		newID:   newTimeOrderedID,
		observe: func(string, string) {},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T]{
		name: name,
		log:  log.With(slog.String("collection", name)),
		opts: o,
	}
}

// Name возвращает имя коллекции.
func (s *Store[T]) Name() string { return s.name }

// List возвращает копию текущих записей в порядке добавления.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Len возвращает количество записей.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get ищет запись по id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Add назначает записи новый id, добавляет её в конец и возвращает созданную запись.
// Id, переданный вызывающим кодом, игнорируется.
func (s *Store[T]) Add(record T) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.opts.newID()
	for s.indexOf(id) >= 0 {
		id = s.opts.newID()
	}
	created := record.WithID(id)
	s.items = append(s.items, created)

	s.log.Info("record added", slog.String("id", id))
	s.opts.observe(s.name, "add")
	return created
}

// Insert добавляет запись с уже назначенным id. Нужен для начальных данных
// и восстановления коллекции.
func (s *Store[T]) Insert(record T) error {
	const op = "entity.Insert"
	s.mu.Lock()
	defer s.mu.Unlock()

	id := record.EntityID()
	if id == "" {
		return fmt.Errorf("%s: %s: empty id", op, s.name)
	}
	if s.indexOf(id) >= 0 {
		return fmt.Errorf("%s: %s %q: %w", op, s.name, id, ErrDuplicateID)
	}
	s.items = append(s.items, record)
	return nil
}

// Update заменяет все поля записи, кроме id. Повторный вызов с теми же
// значениями ничего не меняет.
func (s *Store[T]) Update(id string, patch T) (T, error) {
	const op = "entity.Update"
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%s: %s %q: %w", op, s.name, id, models.ErrNotFound)
	}
	updated := patch.WithID(id)
	s.items[i] = updated

	s.log.Info("record updated", slog.String("id", id))
	s.opts.observe(s.name, "update")
	return updated, nil
}

// Remove удаляет запись. Связанных записей не каскадирует.
func (s *Store[T]) Remove(id string) error {
	const op = "entity.Remove"
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%s: %s %q: %w", op, s.name, id, models.ErrNotFound)
	}
	s.items = slices.Delete(s.items, i, i+1)

	s.log.Info("record removed", slog.String("id", id))
	s.opts.observe(s.name, "remove")
	return nil
}

func (s *Store[T]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(r T) bool { return r.EntityID() == id })
}

func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
