package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrRunAssignmentCommandIsNotConstructed = errors.New(
	"RunAssignmentCommand must be created via NewRunAssignmentCommand constructor",
)

// RunAssignmentCommand triggers one dispatch run: a single greedy pass that
// matches every pending order against the active, under-capacity partners.
// The command carries no parameters; the run always covers the full pending
// backlog.
//
// Example:
//
//	cmd := NewRunAssignmentCommand()
//	handler := NewRunAssignmentCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoPendingOrders) {
//	    log.Println("Nothing to dispatch")
//	}
type RunAssignmentCommand struct {
	guard guard.ConstructorGuard
}

// NewRunAssignmentCommand creates a new command to trigger a dispatch run.
func NewRunAssignmentCommand() RunAssignmentCommand {
	return RunAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunAssignmentCommandIsNotConstructed if validation fails.
func (c *RunAssignmentCommand) Validate() error {
	return c.guard.Validate(
		ErrRunAssignmentCommandIsNotConstructed,
	)
}
