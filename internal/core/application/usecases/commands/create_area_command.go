package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateAreaCommandIsNotConstructed = errors.New(
		"CreateAreaCommand must be created via NewCreateAreaCommand constructor",
	)
	ErrAreaNameIsRequired = errors.New("area name is required")
)

// CreateAreaCommand represents a request to register a new service area.
//
// Example:
//
//	cmd, err := NewCreateAreaCommand(kernel.NewUUID(), "Downtown")
//	if err != nil {
//	    return fmt.Errorf("invalid area data: %w", err)
//	}
//	handler := NewCreateAreaCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create area: %w", err)
//	}
type CreateAreaCommand struct { //nolint:recvcheck //using for validation
	areaID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

// NewCreateAreaCommand creates a command to register a new service area.
// Validates that the area ID is valid and the name is not empty.
func NewCreateAreaCommand(areaID kernel.UUID, name string) (CreateAreaCommand, error) {
	areaCommand := CreateAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		areaCommand.setAreaID(areaID),
		areaCommand.setName(name),
	); err != nil {
		return CreateAreaCommand{}, err
	}

	return areaCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAreaCommandIsNotConstructed if validation fails.
func (c CreateAreaCommand) Validate() error {
	return c.guard.Validate(ErrCreateAreaCommandIsNotConstructed)
}

// AreaID returns the unique identifier for the area.
func (c CreateAreaCommand) AreaID() kernel.UUID {
	return c.areaID
}

// Name returns the human-readable name of the area.
func (c CreateAreaCommand) Name() string {
	return c.name
}

func (c *CreateAreaCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}

	c.areaID = areaID
	return nil
}

func (c *CreateAreaCommand) setName(name string) error {
	if name == "" {
		return ErrAreaNameIsRequired
	}

	c.name = name
	return nil
}
