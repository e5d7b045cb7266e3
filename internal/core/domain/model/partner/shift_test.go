package partner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
)

func TestNewShift(t *testing.T) {
	t.Run("creates a shift from valid boundaries", func(t *testing.T) {
		shift, err := partner.NewShift(mustParseTime(t, "08:00"), mustParseTime(t, "17:00"))

		require.NoError(t, err)
		assert.Equal(t, "08:00", shift.Start().String())
		assert.Equal(t, "17:00", shift.End().String())
		assert.Equal(t, "08:00-17:00", shift.String())
		assert.NoError(t, shift.Validate())
	})

	t.Run("rejects unconstructed boundaries", func(t *testing.T) {
		valid := mustParseTime(t, "08:00")

		_, err := partner.NewShift(kernel.TimeOfDay{}, valid)
		assert.Error(t, err)

		_, err = partner.NewShift(valid, kernel.TimeOfDay{})
		assert.Error(t, err)
	})
}

func TestShift_Covers(t *testing.T) {
	shift := mustNewShift(t, "08:00", "17:00")

	tests := []struct {
		time string
		want bool
	}{
		{"00:00", false},
		{"07:59", false},
		{"08:00", true},
		{"08:01", true},
		{"12:00", true},
		{"16:59", true},
		{"17:00", true},
		{"17:01", false},
		{"23:59", false},
	}

	for _, tt := range tests {
		t.Run(tt.time, func(t *testing.T) {
			assert.Equal(t, tt.want, shift.Covers(mustParseTime(t, tt.time)))
		})
	}
}

func TestShift_CoversSingleMinute(t *testing.T) {
	// A zero-length shift covers exactly its single boundary minute.
	shift := mustNewShift(t, "12:00", "12:00")

	assert.True(t, shift.Covers(mustParseTime(t, "12:00")))
	assert.False(t, shift.Covers(mustParseTime(t, "11:59")))
	assert.False(t, shift.Covers(mustParseTime(t, "12:01")))
}

func TestShift_Validate(t *testing.T) {
	t.Run("zero value shift fails validation", func(t *testing.T) {
		var shift partner.Shift
		assert.ErrorIs(t, shift.Validate(), partner.ErrShiftIsNotConstructed)
	})
}
