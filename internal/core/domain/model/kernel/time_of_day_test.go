package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func TestNewTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		hour    int
		minute  int
		wantErr bool
	}{
		{
			name:   "valid time",
			hour:   14,
			minute: 30,
		},
		{
			name:   "midnight",
			hour:   0,
			minute: 0,
		},
		{
			name:   "end of day",
			hour:   23,
			minute: 59,
		},
		{
			name:    "hour too small",
			hour:    -1,
			minute:  0,
			wantErr: true,
		},
		{
			name:    "hour too large",
			hour:    24,
			minute:  0,
			wantErr: true,
		},
		{
			name:    "minute too small",
			hour:    12,
			minute:  -1,
			wantErr: true,
		},
		{
			name:    "minute too large",
			hour:    12,
			minute:  60,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod, err := kernel.NewTimeOfDay(tt.hour, tt.minute)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Zero(t, tod)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.hour, tod.Hour())
				assert.Equal(t, tt.minute, tod.Minute())
				assert.NoError(t, tod.Validate())
			}
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("parses valid HH:MM strings", func(t *testing.T) {
		tests := []struct {
			input  string
			hour   int
			minute int
		}{
			{"00:00", 0, 0},
			{"09:05", 9, 5},
			{"14:30", 14, 30},
			{"23:59", 23, 59},
		}

		for _, tt := range tests {
			tod, err := kernel.ParseTimeOfDay(tt.input)
			require.NoError(t, err, "input: %s", tt.input)
			assert.Equal(t, tt.hour, tod.Hour())
			assert.Equal(t, tt.minute, tod.Minute())
		}
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		inputs := []string{
			"",
			"9",
			"9:5:0",
			"ab:cd",
			"12:xx",
			"midnight",
		}

		for _, input := range inputs {
			_, err := kernel.ParseTimeOfDay(input)
			assert.Error(t, err, "expected error for input: %q", input)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid, "input: %q", input)
		}
	})

	t.Run("rejects out of range components", func(t *testing.T) {
		inputs := []string{"24:00", "12:60", "-1:30"}

		for _, input := range inputs {
			_, err := kernel.ParseTimeOfDay(input)
			assert.Error(t, err, "expected error for input: %q", input)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "input: %q", input)
		}
	})
}

func TestTimeOfDay_String(t *testing.T) {
	tests := []struct {
		name   string
		hour   int
		minute int
		want   string
	}{
		{"zero padded", 9, 5, "09:05"},
		{"midnight", 0, 0, "00:00"},
		{"afternoon", 14, 30, "14:30"},
		{"end of day", 23, 59, "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod := mustNewTimeOfDay(t, tt.hour, tt.minute)
			assert.Equal(t, tt.want, tod.String())
		})
	}
}

func TestTimeOfDay_Comparisons(t *testing.T) {
	morning := mustNewTimeOfDay(t, 8, 0)
	noon := mustNewTimeOfDay(t, 12, 0)
	alsoNoon := mustNewTimeOfDay(t, 12, 0)

	t.Run("Before", func(t *testing.T) {
		assert.True(t, morning.Before(noon))
		assert.False(t, noon.Before(morning))
		assert.False(t, noon.Before(alsoNoon))
	})

	t.Run("After", func(t *testing.T) {
		assert.True(t, noon.After(morning))
		assert.False(t, morning.After(noon))
		assert.False(t, noon.After(alsoNoon))
	})

	t.Run("IsEqual", func(t *testing.T) {
		assert.True(t, noon.IsEqual(alsoNoon))
		assert.False(t, noon.IsEqual(morning))
	})
}

func TestTimeOfDay_Validate(t *testing.T) {
	t.Run("constructed time is valid", func(t *testing.T) {
		tod := mustNewTimeOfDay(t, 0, 0)
		assert.NoError(t, tod.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var tod kernel.TimeOfDay
		err := tod.Validate()

		assert.Error(t, err)
		assert.Equal(t, kernel.ErrTimeOfDayIsNotConstructed, err)
	})
}

func mustNewTimeOfDay(t *testing.T, hour, minute int) kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return tod
}
