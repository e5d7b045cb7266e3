package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreatePartnerCommandIsNotConstructed = errors.New(
		"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
	)
	ErrPartnerNameIsRequired  = errors.New("partner name is required")
	ErrPartnerEmailIsRequired = errors.New("partner email is required")
	ErrPartnerPhoneIsRequired = errors.New("partner phone is required")
	ErrAreaIDsAreRequired     = errors.New("at least one area is required")
)

// CreatePartnerCommand represents a request to register a new delivery
// partner. The shift is optional: a partner without one is never considered
// available by the dispatcher until a shift is set.
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	name      string
	email     string
	phone     string
	areaIDs   []kernel.UUID
	shift     *partner.Shift

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand creates a command to register a new delivery
// partner. Validates identifiers, contact data and the served area list.
// Returns an error if any validation fails.
func NewCreatePartnerCommand(
	partnerID kernel.UUID,
	name string,
	email string,
	phone string,
	areaIDs []kernel.UUID,
	shift *partner.Shift,
) (CreatePartnerCommand, error) {
	partnerCommand := CreatePartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		partnerCommand.setPartnerID(partnerID),
		partnerCommand.setName(name),
		partnerCommand.setEmail(email),
		partnerCommand.setPhone(phone),
		partnerCommand.setAreaIDs(areaIDs),
		partnerCommand.setShift(shift),
	); err != nil {
		return CreatePartnerCommand{}, err
	}

	return partnerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePartnerCommandIsNotConstructed if validation fails.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the unique identifier for the partner.
func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Name returns the partner's display name.
func (c CreatePartnerCommand) Name() string {
	return c.name
}

// Email returns the partner's contact email.
func (c CreatePartnerCommand) Email() string {
	return c.email
}

// Phone returns the partner's contact phone number.
func (c CreatePartnerCommand) Phone() string {
	return c.phone
}

// AreaIDs returns the identifiers of areas the partner will serve.
func (c CreatePartnerCommand) AreaIDs() []kernel.UUID {
	return c.areaIDs
}

// Shift returns the working shift, or nil if none was provided.
func (c CreatePartnerCommand) Shift() *partner.Shift {
	return c.shift
}

func (c *CreatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *CreatePartnerCommand) setName(name string) error {
	if name == "" {
		return ErrPartnerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePartnerCommand) setEmail(email string) error {
	if email == "" {
		return ErrPartnerEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreatePartnerCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPartnerPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *CreatePartnerCommand) setAreaIDs(areaIDs []kernel.UUID) error {
	if len(areaIDs) == 0 {
		return ErrAreaIDsAreRequired
	}

	for _, areaID := range areaIDs {
		if err := areaID.Validate(); err != nil {
			return err
		}
	}

	c.areaIDs = areaIDs
	return nil
}

func (c *CreatePartnerCommand) setShift(shift *partner.Shift) error {
	if shift != nil {
		if err := shift.Validate(); err != nil {
			return err
		}
	}

	c.shift = shift
	return nil
}
