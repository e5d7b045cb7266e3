package queries_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	areaID := kernel.NewUUID()

	query, err := queries.NewGetOrdersQuery(2, 50, order.Pending, &areaID, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 50, query.PageSize())
	assert.Equal(t, order.Pending, query.Status())
	require.NotNil(t, query.AreaID())
	assert.True(t, query.AreaID().IsEqual(areaID))
	assert.Nil(t, query.PartnerID())
}

func TestNewGetOrdersQuery_Defaults(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(0, 0, order.Unknown, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 20, query.PageSize())
	assert.Equal(t, order.Unknown, query.Status())
}

func TestNewGetOrdersQuery_Invalid(t *testing.T) {
	_, err := queries.NewGetOrdersQuery(-1, 20, order.Unknown, nil, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetOrdersQuery(1, 101, order.Unknown, nil, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewGetOrdersQuery(1, 20, order.Status(99), nil, nil)
	require.Error(t, err)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
