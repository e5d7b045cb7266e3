package partner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

func TestNewPartner(t *testing.T) {
	t.Run("creates an active partner with defaults", func(t *testing.T) {
		id := kernel.NewUUID()
		areaID := kernel.NewUUID()

		p, err := partner.NewPartner(id, "Ravi Kumar", "ravi@example.com", "+911234567890", []kernel.UUID{areaID})

		require.NoError(t, err)
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "Ravi Kumar", p.Name())
		assert.Equal(t, "ravi@example.com", p.Email())
		assert.Equal(t, "+911234567890", p.Phone())
		assert.Equal(t, partner.Active, p.Status())
		assert.Equal(t, 0, p.CurrentLoad())
		assert.Len(t, p.AreaIDs(), 1)
		assert.Nil(t, p.Shift())
		assert.NoError(t, p.Validate())
	})

	t.Run("allows empty area set", func(t *testing.T) {
		p, err := partner.NewPartner(kernel.NewUUID(), "Ravi", "ravi@example.com", "+91", nil)

		require.NoError(t, err)
		assert.Empty(t, p.AreaIDs())
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		tests := []struct {
			name    string
			id      kernel.UUID
			pname   string
			email   string
			phone   string
			areaIDs []kernel.UUID
			wantErr error
		}{
			{"zero id", kernel.UUID{}, "Ravi", "r@e.com", "+91", nil, kernel.ErrUUIDIsNotConstructed},
			{"empty name", kernel.NewUUID(), "", "r@e.com", "+91", nil, partner.ErrNameIsRequired},
			{"empty email", kernel.NewUUID(), "Ravi", "", "+91", nil, partner.ErrEmailIsRequired},
			{"empty phone", kernel.NewUUID(), "Ravi", "r@e.com", "", nil, partner.ErrPhoneIsRequired},
			{"invalid area id", kernel.NewUUID(), "Ravi", "r@e.com", "+91", []kernel.UUID{{}}, kernel.ErrUUIDIsNotConstructed},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p, err := partner.NewPartner(tt.id, tt.pname, tt.email, tt.phone, tt.areaIDs)

				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
			})
		}
	})
}

func TestRestorePartner(t *testing.T) {
	t.Run("restores a partner with full state", func(t *testing.T) {
		shift := mustNewShift(t, "08:00", "17:00")
		metrics, err := partner.NewMetrics(4.5, 120, 3)
		require.NoError(t, err)

		p, err := partner.RestorePartner(
			kernel.NewUUID(), "Ravi", "ravi@example.com", "+91",
			partner.Inactive, 2,
			[]kernel.UUID{kernel.NewUUID()},
			&shift, metrics,
		)

		require.NoError(t, err)
		assert.Equal(t, partner.Inactive, p.Status())
		assert.Equal(t, 2, p.CurrentLoad())
		require.NotNil(t, p.Shift())
		assert.Equal(t, "08:00-17:00", p.Shift().String())
		assert.InDelta(t, 4.5, p.Metrics().Rating(), 0.001)
		assert.Equal(t, 120, p.Metrics().CompletedOrders())
		assert.Equal(t, 3, p.Metrics().CancelledOrders())
	})

	t.Run("rejects load outside bounds", func(t *testing.T) {
		for _, load := range []int{-1, partner.MaxLoad + 1} {
			_, err := partner.RestorePartner(
				kernel.NewUUID(), "Ravi", "r@e.com", "+91",
				partner.Active, load, nil, nil, partner.Metrics{},
			)
			assert.Error(t, err, "load: %d", load)
		}
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := partner.RestorePartner(
			kernel.NewUUID(), "Ravi", "r@e.com", "+91",
			partner.Unknown, 0, nil, nil, partner.Metrics{},
		)
		assert.Error(t, err)
	})
}

func TestPartner_ServesArea(t *testing.T) {
	servedArea := kernel.NewUUID()
	otherArea := kernel.NewUUID()
	p := mustNewPartner(t, []kernel.UUID{servedArea})

	assert.True(t, p.ServesArea(servedArea))
	assert.False(t, p.ServesArea(otherArea))
}

func TestPartner_IsAvailableAt(t *testing.T) {
	t.Run("partner without shift is never available", func(t *testing.T) {
		p := mustNewPartner(t, nil)

		assert.False(t, p.IsAvailableAt(mustParseTime(t, "12:00")))
	})

	t.Run("shift covers times inclusively", func(t *testing.T) {
		p := mustNewPartner(t, nil)
		require.NoError(t, p.SetShift(mustNewShift(t, "08:00", "17:00")))

		tests := []struct {
			time string
			want bool
		}{
			{"07:59", false},
			{"08:00", true}, // inclusive start boundary
			{"12:30", true},
			{"17:00", true}, // inclusive end boundary
			{"17:01", false},
		}

		for _, tt := range tests {
			assert.Equal(t, tt.want, p.IsAvailableAt(mustParseTime(t, tt.time)), "time: %s", tt.time)
		}
	})
}

func TestPartner_Load(t *testing.T) {
	t.Run("increments up to max load", func(t *testing.T) {
		p := mustNewPartner(t, nil)

		for i := range partner.MaxLoad {
			assert.True(t, p.HasCapacity(), "iteration: %d", i)
			require.NoError(t, p.IncrementLoad())
		}

		assert.Equal(t, partner.MaxLoad, p.CurrentLoad())
		assert.False(t, p.HasCapacity())
		assert.Error(t, p.IncrementLoad())
		assert.Equal(t, partner.MaxLoad, p.CurrentLoad())
	})

	t.Run("decrements down to zero", func(t *testing.T) {
		p := mustNewPartner(t, nil)
		require.NoError(t, p.IncrementLoad())

		require.NoError(t, p.DecrementLoad())
		assert.Equal(t, 0, p.CurrentLoad())
		assert.Error(t, p.DecrementLoad())
	})
}

func TestPartner_StatusChanges(t *testing.T) {
	p := mustNewPartner(t, nil)
	assert.True(t, p.IsActive())

	p.Deactivate()
	assert.False(t, p.IsActive())
	assert.Equal(t, partner.Inactive, p.Status())

	p.Activate()
	assert.True(t, p.IsActive())
}

func TestPartner_ShiftManagement(t *testing.T) {
	t.Run("set and clear shift", func(t *testing.T) {
		p := mustNewPartner(t, nil)

		require.NoError(t, p.SetShift(mustNewShift(t, "09:00", "18:00")))
		require.NotNil(t, p.Shift())

		p.ClearShift()
		assert.Nil(t, p.Shift())
		assert.False(t, p.IsAvailableAt(mustParseTime(t, "12:00")))
	})

	t.Run("rejects zero value shift", func(t *testing.T) {
		p := mustNewPartner(t, nil)
		assert.Error(t, p.SetShift(partner.Shift{}))
	})
}

func TestPartner_ReplaceAreas(t *testing.T) {
	oldArea := kernel.NewUUID()
	newArea := kernel.NewUUID()
	p := mustNewPartner(t, []kernel.UUID{oldArea})

	require.NoError(t, p.ReplaceAreas([]kernel.UUID{newArea}))

	assert.False(t, p.ServesArea(oldArea))
	assert.True(t, p.ServesArea(newArea))
}

func TestPartner_Validate(t *testing.T) {
	t.Run("zero value partner fails validation", func(t *testing.T) {
		var p partner.Partner
		assert.ErrorIs(t, p.Validate(), partner.ErrPartnerIsNotConstructed)
	})

	t.Run("nil partner fails validation", func(t *testing.T) {
		var p *partner.Partner
		assert.ErrorIs(t, p.Validate(), partner.ErrPartnerIsNotConstructed)
	})
}

func TestPartner_IsEqual(t *testing.T) {
	p1 := mustNewPartner(t, nil)
	p2 := mustNewPartner(t, nil)

	assert.True(t, p1.IsEqual(p1))
	assert.False(t, p1.IsEqual(p2))
	assert.False(t, p1.IsEqual(nil))
}

func mustNewPartner(t *testing.T, areaIDs []kernel.UUID) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), "Ravi Kumar", "ravi@example.com", "+911234567890", areaIDs)
	require.NoError(t, err)
	return p
}

func mustNewShift(t *testing.T, start, end string) partner.Shift {
	t.Helper()
	shift, err := partner.NewShift(mustParseTime(t, start), mustParseTime(t, end))
	require.NoError(t, err)
	return shift
}

func mustParseTime(t *testing.T, s string) kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}
