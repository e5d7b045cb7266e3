package order

import (
	"dispatch/internal/pkg/errs"
)

// Validation errors for the customer value object.
var (
	// ErrCustomerNameIsRequired is returned when the customer name is empty.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrCustomerPhoneIsRequired is returned when the customer phone is empty.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customerPhone")
)

// Customer identifies the person the order is delivered to. It is a plain
// value object owned by the order aggregate; a customer never exists without
// an order.
type Customer struct {
	name  string
	phone string
}

// NewCustomer creates a Customer value with validation.
//
// Parameters:
//   - name: the customer's display name (must be non-empty)
//   - phone: the customer's contact phone (must be non-empty)
//
// Returns:
//   - Customer: the customer value if all validations pass
//   - error: validation error otherwise
func NewCustomer(name, phone string) (Customer, error) {
	customer := Customer{
		name:  name,
		phone: phone,
	}
	if err := customer.Validate(); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate checks the customer's required fields. The zero value is invalid;
// every order carries a real customer.
func (c Customer) Validate() error {
	if c.name == "" {
		return ErrCustomerNameIsRequired
	}
	if c.phone == "" {
		return ErrCustomerPhoneIsRequired
	}
	return nil
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's contact phone.
func (c Customer) Phone() string {
	return c.phone
}
