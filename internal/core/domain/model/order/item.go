package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrItemNameIsRequired is returned when an order line has no product name.
var ErrItemNameIsRequired = errs.NewValueIsRequiredError("itemName")

// Item is a single line of an order: a product name, how many units the
// customer ordered and the unit price. Items are immutable once the order
// is created.
type Item struct {
	name     string
	quantity int
	price    float64
}

// NewItem creates an Item value with validation.
//
// Parameters:
//   - name: the product name (must be non-empty)
//   - quantity: number of units (must be at least 1)
//   - price: unit price (must be positive)
//
// Returns:
//   - Item: the item value if all validations pass
//   - error: validation error otherwise
func NewItem(name string, quantity int, price float64) (Item, error) {
	item := Item{
		name:     name,
		quantity: quantity,
		price:    price,
	}
	if err := item.Validate(); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks the item's fields. The zero value is invalid; an order
// line always names a product.
func (i Item) Validate() error {
	if i.name == "" {
		return ErrItemNameIsRequired
	}
	if i.quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", i.quantity),
		)
	}
	if i.price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%v is not greater than 0", i.price),
		)
	}
	return nil
}

// Name returns the product name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}
