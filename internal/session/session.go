// Package session хранит аутентифицированную личность панели и выполняет
// переходы входа, регистрации и выхода.
//
// Вход или регистрация применяются, только если с их начала сессию никто не
// изменил: не было другого успешного входа и не было выхода. Иначе переход
// возвращает models.ErrSuperseded, поэтому запоздавший ответ на вход не
// воскрешает сессию после выхода. Неудачный переход сессию не меняет и
// параллельные переходы не отменяет.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/storage"
)

// Исходы переходов для Observer.
const (
	OutcomeSuccess    = "success"
	OutcomeFailure    = "failure"
	OutcomeSuperseded = "superseded"
)

// Verifier проверяет учётные данные.
type Verifier interface {
	VerifyLogin(ctx context.Context, email, password string) (models.Identity, error)
}

// Registrar регистрирует новую компанию.
type Registrar interface {
	CreateAccount(ctx context.Context, email, password, companyName string) (models.Identity, error)
}

// Terminator уведомляет удалённую сторону о выходе.
type Terminator interface {
	Logout(ctx context.Context) error
}

// Authenticator объединяет всех участников переходов сессии.
type Authenticator interface {
	Verifier
	Registrar
	Terminator
}

// LogoutHook вызывается после того, как сессия очищена и сохранена.
type LogoutHook func(ctx context.Context)

// Observer получает имя перехода и его исход.
type Observer func(transition, outcome string)

// Store — хранилище состояния сессии.
type Store struct {
	mu    sync.RWMutex
	state models.SessionState
	// changes растёт при каждом применённом входе и каждом выходе
	changes uint64
	hooks   []LogoutHook

	auth    Authenticator
	storage storage.Storage
	log     *slog.Logger
	observe Observer
}

// New создаёт хранилище и восстанавливает сохранённый снимок.
// Снимок, нарушающий инвариант, нормализуется. Ошибка чтения не мешает
// старту: хранилище начинает с пустой сессии.
func New(ctx context.Context, log *slog.Logger, st storage.Storage, auth Authenticator) *Store {
	const op = "session.New"
	s := &Store{
		auth:    auth,
		storage: st,
		log:     log.With(slog.String("component", "session")),
		observe: func(string, string) {},
	}

	state, found, err := storage.LoadState[models.SessionState](ctx, st, storage.KeyAuth)
	if err != nil {
		s.log.Warn("failed to restore session, starting empty", slog.String("op", op), sl.Err(err))
		return s
	}
	if found {
		s.state = state.Normalize()
		s.log.Info("session restored", slog.Bool("authenticated", s.state.IsAuthenticated))
	}
	return s
}

// SetObserver подключает наблюдателя переходов.
func (s *Store) SetObserver(f Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observe = f
}

// OnLogout регистрирует хук, вызываемый после каждого выхода.
func (s *Store) OnLogout(hook LogoutHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// State возвращает копию текущего состояния.
func (s *Store) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

// Login проверяет учётные данные и открывает сессию.
// При ErrInvalidCredentials состояние не меняется.
func (s *Store) Login(ctx context.Context, email, password string) (models.Identity, error) {
	const op = "session.Login"
	gen := s.begin()

	identity, err := s.auth.VerifyLogin(ctx, email, password)
	if err != nil {
		s.notify("login", OutcomeFailure)
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.commit(ctx, gen, "login", &identity); err != nil {
		return identity, fmt.Errorf("%s: %w", op, err)
	}
	return identity, nil
}

// Register регистрирует компанию и открывает сессию с новой личностью.
// При ErrRegistration состояние не меняется.
func (s *Store) Register(ctx context.Context, email, password, companyName string) (models.Identity, error) {
	const op = "session.Register"
	gen := s.begin()

	identity, err := s.auth.CreateAccount(ctx, email, password, companyName)
	if err != nil {
		s.notify("register", OutcomeFailure)
		return models.Identity{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.commit(ctx, gen, "register", &identity); err != nil {
		return identity, fmt.Errorf("%s: %w", op, err)
	}
	return identity, nil
}

// Commit открывает сессию с готовой личностью без обращения к сервисам.
func (s *Store) Commit(ctx context.Context, identity models.Identity) error {
	const op = "session.Commit"
	if err := s.commit(ctx, s.begin(), "commit", &identity); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Logout очищает сессию, сохраняет снимок и вызывает хуки, после чего
// уведомляет удалённую сторону. Локальное состояние очищается сразу и не
// восстанавливается. Ошибка удалённой стороны только логируется.
func (s *Store) Logout(ctx context.Context) error {
	const op = "session.Logout"
	s.mu.Lock()
	s.changes++
	s.state = models.SessionState{}
	saveErr := s.persistLocked(ctx)
	hooks := append([]LogoutHook(nil), s.hooks...)
	s.mu.Unlock()

	s.log.Info("session closed")
	s.notify("logout", OutcomeSuccess)
	for _, hook := range hooks {
		hook(ctx)
	}

	if err := s.auth.Logout(ctx); err != nil {
		s.log.Warn("remote logout failed", slog.String("op", op), sl.Err(err))
	}
	if saveErr != nil {
		return fmt.Errorf("%s: %w", op, saveErr)
	}
	return nil
}

// begin запоминает номер последнего изменения сессии. Переход, завершившийся
// неудачей, номер не меняет и чужие переходы не отменяет.
func (s *Store) begin() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changes
}

func (s *Store) commit(ctx context.Context, gen uint64, transition string, identity *models.Identity) error {
	s.mu.Lock()
	if gen != s.changes {
		s.mu.Unlock()
		s.log.Info("stale session transition discarded", slog.String("transition", transition))
		s.notify(transition, OutcomeSuperseded)
		return models.ErrSuperseded
	}
	s.changes++
	user := *identity
	s.state = models.SessionState{CurrentUser: &user, IsAuthenticated: true}
	err := s.persistLocked(ctx)
	s.mu.Unlock()

	s.log.Info("session opened", slog.String("transition", transition), slog.String("user_id", identity.ID))
	s.notify(transition, OutcomeSuccess)
	return err
}

// persistLocked сохраняет снимок. Вызывается под s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	if err := storage.SaveState(ctx, s.storage, storage.KeyAuth, s.state); err != nil {
		s.log.Warn("failed to persist session", sl.Err(err))
		return err
	}
	return nil
}

func (s *Store) notify(transition, outcome string) {
	s.mu.RLock()
	observe := s.observe
	s.mu.RUnlock()
	observe(transition, outcome)
}

func copyState(st models.SessionState) models.SessionState {
	if st.CurrentUser == nil {
		return st
	}
	user := *st.CurrentUser
	if user.SubscriptionPlanID != nil {
		plan := *user.SubscriptionPlanID
		user.SubscriptionPlanID = &plan
	}
	st.CurrentUser = &user
	return st
}
