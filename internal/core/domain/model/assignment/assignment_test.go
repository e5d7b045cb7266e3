package assignment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
)

func TestNewSuccess(t *testing.T) {
	t.Run("creates a success record", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		partnerID := kernel.NewUUID()

		a, err := assignment.NewSuccess(id, orderID, partnerID)

		require.NoError(t, err)
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.OrderID().IsEqual(orderID))
		require.NotNil(t, a.Partner())
		assert.True(t, a.Partner().IsEqual(partnerID))
		assert.Equal(t, assignment.Success, a.Status())
		assert.True(t, a.IsSuccess())
		assert.Empty(t, a.Reason())
		assert.WithinDuration(t, time.Now().UTC(), a.CreatedAt(), time.Minute)
		assert.NoError(t, a.Validate())
	})

	t.Run("rejects invalid identifiers", func(t *testing.T) {
		valid := kernel.NewUUID()

		_, err := assignment.NewSuccess(kernel.UUID{}, valid, valid)
		assert.Error(t, err)

		_, err = assignment.NewSuccess(valid, kernel.UUID{}, valid)
		assert.Error(t, err)

		_, err = assignment.NewSuccess(valid, valid, kernel.UUID{})
		assert.Error(t, err)
	})
}

func TestNewFailure(t *testing.T) {
	t.Run("creates a failed record with reason", func(t *testing.T) {
		a, err := assignment.NewFailure(kernel.NewUUID(), kernel.NewUUID(), assignment.ReasonNoSuitablePartner)

		require.NoError(t, err)
		assert.Equal(t, assignment.Failed, a.Status())
		assert.False(t, a.IsSuccess())
		assert.Equal(t, "No suitable partner available", a.Reason())
		assert.Nil(t, a.Partner())
	})

	t.Run("rejects empty reason", func(t *testing.T) {
		_, err := assignment.NewFailure(kernel.NewUUID(), kernel.NewUUID(), "")

		assert.ErrorIs(t, err, assignment.ErrReasonIsRequired)
	})
}

func TestRestoreAssignment(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("restores a success record", func(t *testing.T) {
		partnerID := kernel.NewUUID()

		a, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), &partnerID,
			assignment.Success, "", createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, assignment.Success, a.Status())
		assert.Equal(t, createdAt, a.CreatedAt())
		require.NotNil(t, a.Partner())
	})

	t.Run("restores a failed record", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			assignment.Failed, assignment.ReasonNoSuitablePartner, createdAt,
		)

		require.NoError(t, err)
		assert.Equal(t, assignment.Failed, a.Status())
		assert.Equal(t, assignment.ReasonNoSuitablePartner, a.Reason())
	})

	t.Run("rejects success without partner", func(t *testing.T) {
		_, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			assignment.Success, "", createdAt,
		)
		assert.Error(t, err)
	})

	t.Run("rejects failure without reason", func(t *testing.T) {
		_, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			assignment.Failed, "", createdAt,
		)
		assert.ErrorIs(t, err, assignment.ErrReasonIsRequired)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := assignment.RestoreAssignment(
			kernel.NewUUID(), kernel.NewUUID(), nil,
			assignment.Unknown, "", createdAt,
		)
		assert.Error(t, err)
	})
}

func TestAssignmentStatusFromString(t *testing.T) {
	t.Run("parses valid statuses", func(t *testing.T) {
		got, err := assignment.StatusFromString("SUCCESS")
		require.NoError(t, err)
		assert.Equal(t, assignment.Success, got)

		got, err = assignment.StatusFromString("FAILED")
		require.NoError(t, err)
		assert.Equal(t, assignment.Failed, got)
	})

	t.Run("rejects invalid statuses", func(t *testing.T) {
		for _, input := range []string{"", "success", "PENDING"} {
			_, err := assignment.StatusFromString(input)
			assert.Error(t, err, "input: %q", input)
		}
	})
}

func TestAssignment_Validate(t *testing.T) {
	t.Run("zero value record fails validation", func(t *testing.T) {
		var a assignment.Assignment
		assert.ErrorIs(t, a.Validate(), assignment.ErrAssignmentIsNotConstructed)
	})

	t.Run("nil record fails validation", func(t *testing.T) {
		var a *assignment.Assignment
		assert.ErrorIs(t, a.Validate(), assignment.ErrAssignmentIsNotConstructed)
	})
}
