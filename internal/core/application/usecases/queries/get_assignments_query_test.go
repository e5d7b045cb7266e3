package queries_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAssignmentsQuery(t *testing.T) {
	t.Run("should create query with defaults when zero values given", func(t *testing.T) {
		query, err := queries.NewGetAssignmentsQuery(0, 0, nil, nil, nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, query.Page())
		assert.Equal(t, 20, query.PageSize())
		assert.Empty(t, query.Statuses())
		assert.Nil(t, query.OrderID())
		assert.Nil(t, query.PartnerID())
		assert.NoError(t, query.Validate())
	})

	t.Run("should accept multiple outcome statuses", func(t *testing.T) {
		statuses := []assignment.Status{assignment.Success, assignment.Failed}

		query, err := queries.NewGetAssignmentsQuery(1, 20, statuses, nil, nil, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, statuses, query.Statuses())
	})

	t.Run("should reject an invalid status in the list", func(t *testing.T) {
		statuses := []assignment.Status{assignment.Success, assignment.Unknown}

		_, err := queries.NewGetAssignmentsQuery(1, 20, statuses, nil, nil, nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should keep the time range bounds", func(t *testing.T) {
		from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 7)

		query, err := queries.NewGetAssignmentsQuery(1, 20, nil, nil, nil, &from, &to)

		require.NoError(t, err)
		require.NotNil(t, query.From())
		require.NotNil(t, query.To())
		assert.True(t, query.From().Equal(from))
		assert.True(t, query.To().Equal(to))
	})

	t.Run("should reject out of range pagination", func(t *testing.T) {
		_, err := queries.NewGetAssignmentsQuery(-1, 500, nil, nil, nil, nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject invalid filter IDs", func(t *testing.T) {
		badID := kernel.UUID{}

		_, err := queries.NewGetAssignmentsQuery(1, 20, nil, &badID, nil, nil, nil)
		require.Error(t, err)

		_, err = queries.NewGetAssignmentsQuery(1, 20, nil, nil, &badID, nil, nil)
		require.Error(t, err)
	})

	t.Run("zero value query should fail validation", func(t *testing.T) {
		var query queries.GetAssignmentsQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetAssignmentsQueryIsNotConstructed)
	})
}
