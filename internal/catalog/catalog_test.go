package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/autoservice-dashboard/internal/models"
)

func TestPlans_FixedEntries(t *testing.T) {
	got := Plans()
	require.Len(t, got, 3)

	assert.Equal(t, PlanBasic, got[0].ID)
	assert.Equal(t, PlanPro, got[1].ID)
	assert.Equal(t, PlanEnterprise, got[2].ID)

	assert.Equal(t, float64(29), got[0].Price)
	assert.Equal(t, float64(79), got[1].Price)
	assert.Equal(t, float64(199), got[2].Price)

	assert.True(t, got[1].Popular)
	assert.False(t, got[0].Popular)
	for _, p := range got {
		assert.Equal(t, models.IntervalMonth, p.Interval)
	}
	assert.Len(t, got[2].Features, 9)
}

func TestPlans_ReturnsCopies(t *testing.T) {
	first := Plans()
	first[0].Features[0] = "tampered"
	first[0].Name = "tampered"

	second := Plans()
	assert.Equal(t, "Basic", second[0].Name)
	assert.Equal(t, "Up to 100 reservations/month", second[0].Features[0])
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantOK bool
	}{
		{name: "basic", id: "basic", wantOK: true},
		{name: "pro", id: "pro", wantOK: true},
		{name: "enterprise", id: "enterprise", wantOK: true},
		{name: "unknown", id: "unknown", wantOK: false},
		{name: "empty", id: "", wantOK: false},
		{name: "case sensitive", id: "PRO", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Lookup(tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOK, Contains(tt.id))
			if ok {
				assert.Equal(t, tt.id, p.ID)
			}
		})
	}
}

func TestMustLookup_Unknown(t *testing.T) {
	_, err := MustLookup("gold")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrUnknownPlan)
}
