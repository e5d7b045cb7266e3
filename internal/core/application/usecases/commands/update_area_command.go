package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateAreaCommandIsNotConstructed = errors.New(
	"UpdateAreaCommand must be created via NewUpdateAreaCommand constructor",
)

// UpdateAreaCommand represents a request to rename an existing service area.
type UpdateAreaCommand struct { //nolint:recvcheck //using for validation
	areaID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

// NewUpdateAreaCommand creates a command to rename a service area.
// Validates that the area ID is valid and the new name is not empty.
func NewUpdateAreaCommand(areaID kernel.UUID, name string) (UpdateAreaCommand, error) {
	areaCommand := UpdateAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		areaCommand.setAreaID(areaID),
		areaCommand.setName(name),
	); err != nil {
		return UpdateAreaCommand{}, err
	}

	return areaCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateAreaCommandIsNotConstructed if validation fails.
func (c UpdateAreaCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAreaCommandIsNotConstructed)
}

// AreaID returns the unique identifier for the area.
func (c UpdateAreaCommand) AreaID() kernel.UUID {
	return c.areaID
}

// Name returns the new name for the area.
func (c UpdateAreaCommand) Name() string {
	return c.name
}

func (c *UpdateAreaCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}

	c.areaID = areaID
	return nil
}

func (c *UpdateAreaCommand) setName(name string) error {
	if name == "" {
		return ErrAreaNameIsRequired
	}

	c.name = name
	return nil
}
