package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/order"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates a customer with valid values", func(t *testing.T) {
		c, err := order.NewCustomer("Jane Doe", "+15550100")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", c.Name())
		assert.Equal(t, "+15550100", c.Phone())
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		_, err := order.NewCustomer("", "+15550100")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCustomerNameIsRequired)
	})

	t.Run("rejects an empty phone", func(t *testing.T) {
		_, err := order.NewCustomer("Jane Doe", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCustomerPhoneIsRequired)
	})

	t.Run("zero value customer fails validation", func(t *testing.T) {
		var c order.Customer
		assert.Error(t, c.Validate())
	})
}
