// Package file реализует storage.Storage поверх одного JSON-файла на диске,
// аналог localStorage браузера: все ключи хранятся в одном объекте,
// поэтому значения обязаны быть валидным JSON.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type Storage struct {
	mu   sync.Mutex
	path string
}

// New создаёт хранилище и каталог для файла, если его нет.
func New(path string) (*Storage, error) {
	const op = "storage.file.New"
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Storage{path: path}, nil
}

func (s *Storage) Save(ctx context.Context, key string, value []byte) error {
	const op = "storage.file.Save"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !json.Valid(value) {
		return fmt.Errorf("%s: value for %q is not valid JSON", op, key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	all[key] = json.RawMessage(value)

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	// запись через временный файл, чтобы обрыв не оставил половину JSON
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Storage) Load(ctx context.Context, key string) ([]byte, bool, error) {
	const op = "storage.file.Load"
	if err := ctx.Err(); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	v, ok := all[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (s *Storage) read() (map[string]json.RawMessage, error) {
	all := make(map[string]json.RawMessage)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return all, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return all, nil
	}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	return all, nil
}
