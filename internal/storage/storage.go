// Package storage описывает порт постоянного key-value хранилища, в котором
// хранилища сессии, подписки и учётных записей сохраняют свои снимки между
// перезапусками.
//
// Значения сохраняются в конверте {"state": ..., "version": N}, чтобы формат
// можно было версионировать.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	// KeyAuth — ключ снимка сессии.
	KeyAuth = "auth-storage"
	// KeySubscription — ключ снимка подписки.
	KeySubscription = "subscription-storage"
	// KeyAccounts — ключ списка зарегистрированных учётных записей.
	KeyAccounts = "accounts-storage"

	// Version — текущая версия формата конверта.
	Version = 0
)

// Storage — порт key-value хранилища.
type Storage interface {
	// Save сохраняет значение по ключу, перезаписывая предыдущее.
	Save(ctx context.Context, key string, value []byte) error
	// Load возвращает значение и признак его наличия.
	Load(ctx context.Context, key string) ([]byte, bool, error)
}

type envelope[T any] struct {
	State   T   `json:"state"`
	Version int `json:"version"`
}

// SaveState сериализует state в конверт и сохраняет его по ключу.
func SaveState[T any](ctx context.Context, s Storage, key string, state T) error {
	const op = "storage.SaveState"
	data, err := json.Marshal(envelope[T]{State: state, Version: Version})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.Save(ctx, key, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// LoadState читает конверт по ключу. Если ключа нет, возвращает нулевое
// значение и false.
func LoadState[T any](ctx context.Context, s Storage, key string) (T, bool, error) {
	const op = "storage.LoadState"
	var env envelope[T]
	data, found, err := s.Load(ctx, key)
	if err != nil {
		return env.State, false, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return env.State, false, nil
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return env.State, false, fmt.Errorf("%s: %w", op, err)
	}
	if env.Version != Version {
		return env.State, false, fmt.Errorf("%s: unsupported version %d", op, env.Version)
	}
	return env.State, true, nil
}
