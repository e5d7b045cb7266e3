package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/order"
)

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status order.Status
		want   string
	}{
		{order.Unknown, "UNKNOWN"},
		{order.Pending, "PENDING"},
		{order.Assigned, "ASSIGNED"},
		{order.Picked, "PICKED"},
		{order.Delivered, "DELIVERED"},
		{order.Status(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses valid statuses", func(t *testing.T) {
		tests := []struct {
			input string
			want  order.Status
		}{
			{"PENDING", order.Pending},
			{"ASSIGNED", order.Assigned},
			{"PICKED", order.Picked},
			{"DELIVERED", order.Delivered},
		}

		for _, tt := range tests {
			got, err := order.StatusFromString(tt.input)
			require.NoError(t, err, "input: %s", tt.input)
			assert.Equal(t, tt.want, got)
		}
	})

	t.Run("rejects invalid statuses", func(t *testing.T) {
		inputs := []string{"", "pending", "UNKNOWN", "CANCELLED", "Pending"}

		for _, input := range inputs {
			got, err := order.StatusFromString(input)
			assert.Error(t, err, "expected error for input: %q", input)
			assert.Equal(t, order.Unknown, got)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Assigned, order.Picked, order.Delivered} {
			assert.NoError(t, s.Validate(), "status: %s", s)
		}
	})

	t.Run("invalid statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(42)} {
			assert.Error(t, s.Validate(), "status: %d", s)
		}
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("pending can be assigned", func(t *testing.T) {
		newStatus, err := order.Pending.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, newStatus)
	})

	t.Run("other statuses cannot be assigned", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Assigned, order.Picked, order.Delivered} {
			_, err := s.Assign()
			assert.Error(t, err, "status: %s", s)
		}
	})
}

func TestStatus_Pick(t *testing.T) {
	t.Run("assigned can be picked", func(t *testing.T) {
		newStatus, err := order.Assigned.Pick()

		require.NoError(t, err)
		assert.Equal(t, order.Picked, newStatus)
	})

	t.Run("other statuses cannot be picked", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Pending, order.Picked, order.Delivered} {
			_, err := s.Pick()
			assert.Error(t, err, "status: %s", s)
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("picked can be delivered", func(t *testing.T) {
		newStatus, err := order.Picked.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("other statuses cannot be delivered", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Pending, order.Assigned, order.Delivered} {
			_, err := s.Deliver()
			assert.Error(t, err, "status: %s", s)
		}
	})
}

func TestStatus_ValidateCanHavePartner(t *testing.T) {
	t.Run("pending must not have a partner", func(t *testing.T) {
		assert.NoError(t, order.Pending.ValidateCanHavePartner(false))
		assert.Error(t, order.Pending.ValidateCanHavePartner(true))
	})

	t.Run("assigned and later must have a partner", func(t *testing.T) {
		for _, s := range []order.Status{order.Assigned, order.Picked, order.Delivered} {
			assert.NoError(t, s.ValidateCanHavePartner(true), "status: %s", s)
			assert.Error(t, s.ValidateCanHavePartner(false), "status: %s", s)
		}
	})
}
