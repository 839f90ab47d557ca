package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/storage"
)

// StoredUsers — UserRepository поверх storage.Storage. Учётные записи
// хранятся одним снимком по ключу storage.KeyAccounts и переживают перезапуск.
type StoredUsers struct {
	mu       sync.RWMutex
	storage  storage.Storage
	accounts map[string]Account
}

// NewStoredUsers читает сохранённые учётные записи. Отсутствие снимка не
// является ошибкой, повреждённый снимок является.
func NewStoredUsers(ctx context.Context, st storage.Storage) (*StoredUsers, error) {
	const op = "services.auth.NewStoredUsers"
	saved, _, err := storage.LoadState[[]Account](ctx, st, storage.KeyAccounts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	accounts := make(map[string]Account, len(saved))
	for _, a := range saved {
		accounts[normalizeEmail(a.Email)] = a
	}
	return &StoredUsers{storage: st, accounts: accounts}, nil
}

// RegisterUser добавляет запись и сохраняет снимок. Если сохранить не
// удалось, запись в памяти не появляется.
func (u *StoredUsers) RegisterUser(ctx context.Context, account Account) error {
	const op = "services.auth.StoredUsers.RegisterUser"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	key := normalizeEmail(account.Email)
	if _, ok := u.accounts[key]; ok {
		return fmt.Errorf("%s: %w", op, ErrUserExists)
	}

	snapshot := make([]Account, 0, len(u.accounts)+1)
	for _, a := range u.accounts {
		snapshot = append(snapshot, a)
	}
	snapshot = append(snapshot, account)
	if err := storage.SaveState(ctx, u.storage, storage.KeyAccounts, snapshot); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	u.accounts[key] = account
	return nil
}

func (u *StoredUsers) GetUserByEmail(ctx context.Context, email string) (*Account, error) {
	const op = "services.auth.StoredUsers.GetUserByEmail"
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	a, ok := u.accounts[normalizeEmail(email)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return &a, nil
}
