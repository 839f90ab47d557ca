package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/storage"
	"github.com/magabrotheeeer/autoservice-dashboard/internal/storage/memory"
)

type snapshot struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

type failingStorage struct{}

func (failingStorage) Save(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func (failingStorage) Load(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("disk gone")
}

func TestSaveLoadState_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	want := snapshot{Name: "acme", Items: []string{"a", "b"}}

	require.NoError(t, storage.SaveState(ctx, s, "key", want))

	got, found, err := storage.LoadState[snapshot](ctx, s, "key")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)
}

func TestSaveState_EnvelopeFormat(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	require.NoError(t, storage.SaveState(ctx, s, storage.KeyAuth, map[string]bool{"isAuthenticated": true}))

	raw, found, err := s.Load(ctx, storage.KeyAuth)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"state":{"isAuthenticated":true},"version":0}`, string(raw))
}

func TestLoadState_Missing(t *testing.T) {
	got, found, err := storage.LoadState[snapshot](context.Background(), memory.New(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, snapshot{}, got)
}

func TestLoadState_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		store storage.Storage
		setup func(s storage.Storage)
	}{
		{
			name:  "broken json",
			store: memory.New(),
			setup: func(s storage.Storage) {
				require.NoError(t, s.Save(ctx, "k", []byte("not-json")))
			},
		},
		{
			name:  "unsupported version",
			store: memory.New(),
			setup: func(s storage.Storage) {
				require.NoError(t, s.Save(ctx, "k", []byte(`{"state":{},"version":7}`)))
			},
		},
		{
			name:  "backend error",
			store: failingStorage{},
			setup: func(storage.Storage) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(tt.store)
			_, found, err := storage.LoadState[snapshot](ctx, tt.store, "k")
			assert.Error(t, err)
			assert.False(t, found)
		})
	}
}

func TestSaveState_BackendError(t *testing.T) {
	err := storage.SaveState(context.Background(), failingStorage{}, "k", snapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
