package entity

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func sequentialIDs() Option {
	n := 0
	return WithIDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func oilChange() models.Service {
	return models.Service{Name: "Oil Change", Description: "Oil and filter", Duration: 60, Price: 49.99}
}

func TestStore_AddAssignsUniqueIDs(t *testing.T) {
	s := New[models.Service]("services", newNoopLogger())

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		created := s.Add(models.Service{ID: "caller-chosen", Name: fmt.Sprintf("svc-%d", i), Duration: 10})
		require.NotEmpty(t, created.ID)
		assert.NotEqual(t, "caller-chosen", created.ID)
		assert.False(t, seen[created.ID], "duplicate id %s", created.ID)
		seen[created.ID] = true
	}
	assert.Equal(t, 50, s.Len())
}

func TestStore_AddRetriesOnCollision(t *testing.T) {
	ids := []string{"a", "a", "b"}
	i := 0
	s := New[models.Service]("services", newNoopLogger(), WithIDFunc(func() string {
		id := ids[i]
		i++
		return id
	}))

	first := s.Add(oilChange())
	second := s.Add(oilChange())
	assert.Equal(t, "a", first.ID)
	assert.Equal(t, "b", second.ID)
}

func TestStore_ListKeepsInsertionOrderAndIsSnapshot(t *testing.T) {
	s := New[models.CustomField]("custom_fields", newNoopLogger(), sequentialIDs())
	s.Add(models.CustomField{Label: "Vehicle Make", Type: models.FieldText})
	s.Add(models.CustomField{Label: "Vehicle Model", Type: models.FieldText})
	s.Add(models.CustomField{Label: "Vehicle Year", Type: models.FieldNumber})

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Vehicle Make", "Vehicle Model", "Vehicle Year"},
		[]string{list[0].Label, list[1].Label, list[2].Label})

	list[0].Label = "tampered"
	assert.Equal(t, "Vehicle Make", s.List()[0].Label)
}

func TestStore_UpdateReplacesOnlyTarget(t *testing.T) {
	s := New[models.Service]("services", newNoopLogger(), sequentialIDs())
	a := s.Add(oilChange())
	b := s.Add(models.Service{Name: "Brake Service", Description: "Pads", Duration: 120, Price: 199.99})

	patch := models.Service{ID: "ignored", Name: "Synthetic Oil Change", Description: "Full synthetic", Duration: 75, Price: 89}
	updated, err := s.Update(a.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, patch.WithID(a.ID), list[0])
	assert.Equal(t, b, list[1])

	again, err := s.Update(a.ID, patch)
	require.NoError(t, err)
	assert.Equal(t, updated, again)
	assert.Equal(t, list, s.List())
}

func TestStore_NotFound(t *testing.T) {
	s := New[models.Service]("services", newNoopLogger(), sequentialIDs())
	created := s.Add(oilChange())

	require.NoError(t, s.Remove(created.ID))

	_, err := s.Update(created.ID, oilChange())
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = s.Remove(created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, ok := s.Get(created.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_FailedMutationLeavesCollectionUnchanged(t *testing.T) {
	s := New[models.PaymentMethod]("payment_methods", newNoopLogger(), sequentialIDs())
	s.Add(models.PaymentMethod{Name: "Stripe", Enabled: true})
	before := s.List()

	_, err := s.Update("missing", models.PaymentMethod{Name: "PayPal"})
	require.Error(t, err)
	require.Error(t, s.Remove("missing"))

	assert.Equal(t, before, s.List())
}

func TestStore_LenMatchesAddsMinusRemoves(t *testing.T) {
	s := New[models.Reservation]("reservations", newNoopLogger())

	var ids []string
	for i := 0; i < 10; i++ {
		ids = append(ids, s.Add(models.Reservation{CustomerName: "John"}).ID)
	}
	removed := 0
	for i, id := range ids {
		if i%3 == 0 {
			require.NoError(t, s.Remove(id))
			removed++
		}
	}
	assert.Equal(t, 10-removed, s.Len())
	assert.Len(t, s.List(), 10-removed)
}

func TestStore_Insert(t *testing.T) {
	s := New[models.PaymentMethod]("payment_methods", newNoopLogger())

	require.NoError(t, s.Insert(models.PaymentMethod{ID: "stripe", Name: "Stripe"}))
	err := s.Insert(models.PaymentMethod{ID: "stripe", Name: "Stripe again"})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Error(t, s.Insert(models.PaymentMethod{Name: "no id"}))

	got, ok := s.Get("stripe")
	require.True(t, ok)
	assert.Equal(t, "Stripe", got.Name)
}

func TestStore_Observer(t *testing.T) {
	var calls []string
	s := New[models.Service]("services", newNoopLogger(), sequentialIDs(),
		WithObserver(func(collection, op string) { calls = append(calls, collection+":"+op) }))

	created := s.Add(oilChange())
	_, err := s.Update(created.ID, oilChange())
	require.NoError(t, err)
	require.NoError(t, s.Remove(created.ID))
	_ = s.Remove(created.ID)

	assert.Equal(t, []string{"services:add", "services:update", "services:remove"}, calls)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := New[models.Service]("services", newNoopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				s.Add(oilChange())
			}
		}()
	}
	wg.Wait()

	list := s.List()
	assert.Len(t, list, 500)
	seen := make(map[string]struct{}, len(list))
	for _, r := range list {
		seen[r.ID] = struct{}{}
	}
	assert.Len(t, seen, 500)
}
