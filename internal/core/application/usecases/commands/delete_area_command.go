package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDeleteAreaCommandIsNotConstructed = errors.New(
	"DeleteAreaCommand must be created via NewDeleteAreaCommand constructor",
)

// DeleteAreaCommand represents a request to remove a service area.
type DeleteAreaCommand struct { //nolint:recvcheck //using for validation
	areaID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteAreaCommand creates a command to remove a service area.
func NewDeleteAreaCommand(areaID kernel.UUID) (DeleteAreaCommand, error) {
	areaCommand := DeleteAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := areaCommand.setAreaID(areaID); err != nil {
		return DeleteAreaCommand{}, err
	}

	return areaCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteAreaCommandIsNotConstructed if validation fails.
func (c DeleteAreaCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAreaCommandIsNotConstructed)
}

// AreaID returns the unique identifier for the area.
func (c DeleteAreaCommand) AreaID() kernel.UUID {
	return c.areaID
}

func (c *DeleteAreaCommand) setAreaID(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}

	c.areaID = areaID
	return nil
}
