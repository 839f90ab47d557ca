// Package settings хранит настройки брендирования панели, шаблон письма
// с подтверждением записи и часы работы.
package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/validation"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

// Значения по умолчанию.
const (
	DefaultLogo         = "https://via.placeholder.com/200x60"
	DefaultPrimaryColor = "#3B82F6"
	DefaultCompanyName  = "Auto Service Pro"
	DefaultTemplate     = "Dear {customer_name}, your {service_name} appointment is confirmed for {date} at {time}."
	DefaultOpen         = "09:00"
	DefaultClose        = "17:00"
)

// Weekdays — дни недели в порядке расписания.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Store — потокобезопасное хранилище настроек.
type Store struct {
	mu       sync.RWMutex
	brand    models.WhiteLabelConfig
	email    models.EmailSettings
	hours    models.BusinessHours
	validate *validator.Validate
	log      *slog.Logger
}

// New создаёт хранилище с настройками по умолчанию.
func New(log *slog.Logger) *Store {
	return &Store{
		brand: models.WhiteLabelConfig{
			Logo:           DefaultLogo,
			PrimaryColor:   DefaultPrimaryColor,
			CompanyName:    DefaultCompanyName,
			CustomFieldIDs: []string{},
		},
		email:    models.EmailSettings{ConfirmationTemplate: DefaultTemplate},
		hours:    DefaultBusinessHours(),
		validate: validation.New(),
		log:      log.With(slog.String("component", "settings")),
	}
}

// DefaultBusinessHours возвращает расписание 09:00–17:00 на все дни.
func DefaultBusinessHours() models.BusinessHours {
	days := make([]models.DayHours, 0, len(Weekdays))
	for _, d := range Weekdays {
		days = append(days, models.DayHours{Day: d, Open: DefaultOpen, Close: DefaultClose})
	}
	return models.BusinessHours{Days: days}
}

// WhiteLabel возвращает копию настроек брендирования.
func (s *Store) WhiteLabel() models.WhiteLabelConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg := s.brand
	cfg.CustomFieldIDs = slices.Clone(cfg.CustomFieldIDs)
	return cfg
}

// UpdateWhiteLabel проверяет и заменяет настройки брендирования.
func (s *Store) UpdateWhiteLabel(cfg models.WhiteLabelConfig) (models.WhiteLabelConfig, error) {
	const op = "settings.UpdateWhiteLabel"
	cfg.CompanyName = strings.TrimSpace(cfg.CompanyName)
	if err := s.validate.Struct(cfg); err != nil {
		return models.WhiteLabelConfig{}, fmt.Errorf("%s: %w: %w", op, models.ErrInvalid, err)
	}
	if cfg.CustomFieldIDs == nil {
		cfg.CustomFieldIDs = []string{}
	}
	cfg.CustomFieldIDs = slices.Clone(cfg.CustomFieldIDs)

	s.mu.Lock()
	s.brand = cfg
	s.mu.Unlock()

	s.log.Info("white label updated", slog.String("company", cfg.CompanyName))
	return s.WhiteLabel(), nil
}

// EmailSettings возвращает шаблон письма.
func (s *Store) EmailSettings() models.EmailSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// UpdateEmailSettings заменяет шаблон письма. Пустой шаблон не допускается.
func (s *Store) UpdateEmailSettings(e models.EmailSettings) (models.EmailSettings, error) {
	const op = "settings.UpdateEmailSettings"
	if strings.TrimSpace(e.ConfirmationTemplate) == "" {
		return models.EmailSettings{}, fmt.Errorf("%s: empty template: %w", op, models.ErrInvalid)
	}
	s.mu.Lock()
	s.email = e
	s.mu.Unlock()

	s.log.Info("email settings updated")
	return e, nil
}

// BusinessHours возвращает копию расписания.
func (s *Store) BusinessHours() models.BusinessHours {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.BusinessHours{Days: slices.Clone(s.hours.Days)}
}

// UpdateBusinessHours проверяет и заменяет расписание. Дни должны идти
// с понедельника по воскресенье, открытие раньше закрытия, если день рабочий.
func (s *Store) UpdateBusinessHours(h models.BusinessHours) (models.BusinessHours, error) {
	const op = "settings.UpdateBusinessHours"
	if err := s.validate.Struct(h); err != nil {
		return models.BusinessHours{}, fmt.Errorf("%s: %w: %w", op, models.ErrInvalid, err)
	}
	if err := checkDays(h.Days); err != nil {
		return models.BusinessHours{}, fmt.Errorf("%s: %w: %w", op, models.ErrInvalid, err)
	}

	days := slices.Clone(h.Days)
	for i := range days {
		if days[i].Closed {
			days[i].Open, days[i].Close = "", ""
		}
	}
	s.mu.Lock()
	s.hours = models.BusinessHours{Days: days}
	s.mu.Unlock()

	s.log.Info("business hours updated")
	return s.BusinessHours(), nil
}

func checkDays(days []models.DayHours) error {
	for i, d := range days {
		if !strings.EqualFold(d.Day, Weekdays[i]) {
			return fmt.Errorf("day %d must be %s, got %q", i+1, Weekdays[i], d.Day)
		}
		if d.Closed {
			continue
		}
		if d.Open == "" || d.Close == "" {
			return fmt.Errorf("%s: open and close are required", d.Day)
		}
		// HH:MM сравнивается лексикографически
		if d.Open >= d.Close {
			return fmt.Errorf("%s: open %s must be before close %s", d.Day, d.Open, d.Close)
		}
	}
	return nil
}

// ErrNoTemplate возвращает RenderConfirmation, если шаблон пуст.
var ErrNoTemplate = errors.New("confirmation template is empty")

// RenderConfirmation подставляет данные записи в шаблон письма.
func (s *Store) RenderConfirmation(r models.Reservation, serviceName string) (string, error) {
	const op = "settings.RenderConfirmation"
	tmpl := s.EmailSettings().ConfirmationTemplate
	if tmpl == "" {
		return "", fmt.Errorf("%s: %w", op, ErrNoTemplate)
	}
	return strings.NewReplacer(
		"{customer_name}", r.CustomerName,
		"{service_name}", serviceName,
		"{date}", r.Date,
		"{time}", r.Time,
	).Replace(tmpl), nil
}
