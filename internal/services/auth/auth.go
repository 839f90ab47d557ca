// Package services содержит заглушки внешних сервисов аутентификации:
// проверку учётных данных, регистрацию и выход. Задержка сети имитируется
// фиксированной паузой, которая прерывается отменой контекста.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/password"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

const (
	// DemoEmail и DemoPassword — демо-аккаунт, который принимает заглушка.
	DemoEmail    = "test@example.com"
	DemoPassword = "password"
	demoID       = "1"
	demoCompany  = "Test Company"
)

// ErrUserExists возвращает UserRepository при повторной регистрации email.
var ErrUserExists = errors.New("user already exists")

// ErrUserNotFound возвращает UserRepository, если email не зарегистрирован.
var ErrUserNotFound = errors.New("user not found")

// Account — учётная запись в заглушке сервиса регистрации.
type Account struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	CompanyName  string `json:"companyName"`
	PasswordHash string `json:"passwordHash"`
}

// UserRepository описывает контракт для хранения учётных записей.
type UserRepository interface {
	// RegisterUser сохраняет новую учётную запись.
	RegisterUser(ctx context.Context, account Account) error
	// GetUserByEmail возвращает учётную запись по email.
	GetUserByEmail(ctx context.Context, email string) (*Account, error)
}

// AuthService имитирует удалённый сервис аутентификации.
type AuthService struct {
	users       UserRepository
	log         *slog.Logger
	loginDelay  time.Duration
	logoutDelay time.Duration
	hash        func(string) (string, error)
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, log *slog.Logger, loginDelay, logoutDelay time.Duration) *AuthService {
	return &AuthService{
		users:       users,
		log:         log,
		loginDelay:  loginDelay,
		logoutDelay: logoutDelay,
		hash:        password.GetHash,
	}
}

// WithHashCost задаёт стоимость bcrypt для новых учётных записей.
func (s *AuthService) WithHashCost(cost int) *AuthService {
	s.hash = func(raw string) (string, error) {
		return password.GetHashWithCost(raw, cost)
	}
	return s
}

// SeedDemoAccount регистрирует демо-аккаунт test@example.com / password.
func (s *AuthService) SeedDemoAccount(ctx context.Context) error {
	const op = "services.auth.SeedDemoAccount"
	hashed, err := s.hash(DemoPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	err = s.users.RegisterUser(ctx, Account{
		ID:           demoID,
		Email:        DemoEmail,
		CompanyName:  demoCompany,
		PasswordHash: hashed,
	})
	if err != nil && !errors.Is(err, ErrUserExists) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// VerifyLogin проверяет пару email/пароль и возвращает личность.
// Любая неудача (нет пользователя, неверный пароль) — ErrInvalidCredentials.
func (s *AuthService) VerifyLogin(ctx context.Context, email, rawPassword string) (models.Identity, error) {
	const op = "services.auth.VerifyLogin"
	if err := wait(ctx, s.loginDelay); err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	account, err := s.users.GetUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, ErrUserNotFound) {
		return models.Identity{}, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(account.PasswordHash, rawPassword); err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
	}

	s.log.Info("credentials verified", slog.String("user_id", account.ID))
	return account.identity(), nil
}

// CreateAccount регистрирует компанию и возвращает новую личность с id,
// назначенным сервисом.
func (s *AuthService) CreateAccount(ctx context.Context, email, rawPassword, companyName string) (models.Identity, error) {
	const op = "services.auth.CreateAccount"
	if err := wait(ctx, s.loginDelay); err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	email = normalizeEmail(email)
	companyName = strings.TrimSpace(companyName)
	if _, err := mail.ParseAddress(email); err != nil {
		return models.Identity{}, fmt.Errorf("%s: invalid email: %w", op, models.ErrRegistration)
	}
	if rawPassword == "" || companyName == "" {
		return models.Identity{}, fmt.Errorf("%s: password and company name are required: %w", op, models.ErrRegistration)
	}

	hashed, err := s.hash(rawPassword)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}
	account := Account{
		ID:           uuid.NewString(),
		Email:        email,
		CompanyName:  companyName,
		PasswordHash: hashed,
	}
	if err := s.users.RegisterUser(ctx, account); err != nil {
		if errors.Is(err, ErrUserExists) {
			return models.Identity{}, fmt.Errorf("%s: email already registered: %w", op, models.ErrRegistration)
		}
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("account created", slog.String("user_id", account.ID))
	return account.identity(), nil
}

// Logout уведомляет удалённую сторону о выходе.
func (s *AuthService) Logout(ctx context.Context) error {
	const op = "services.auth.Logout"
	if err := wait(ctx, s.logoutDelay); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (a Account) identity() models.Identity {
	return models.Identity{
		ID:          a.ID,
		Email:       a.Email,
		CompanyName: a.CompanyName,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
