package commands

import (
	"errors"

	"foodorders/internal/pkg/guard"
)

var ErrReleaseDueOrdersCommandIsNotConstructed = errors.New(
	"ReleaseDueOrdersCommand must be created via NewReleaseDueOrdersCommand constructor",
)

// ReleaseDueOrdersCommand triggers one sweep over dormant orders that are
// ready to start processing: scheduled orders whose time has arrived, and
// immediate orders that lost admission earlier and are waiting for
// capacity.
//
// Example:
//
//	cmd := NewReleaseDueOrdersCommand()
//	handler := NewReleaseDueOrdersCommandHandler(uowFactory, admission, dispatcher, sink)
//
//	// Run periodically so due orders enter the pipeline.
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("release sweep failed: %v", err)
//	}
type ReleaseDueOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewReleaseDueOrdersCommand creates a command to trigger one release sweep.
func NewReleaseDueOrdersCommand() ReleaseDueOrdersCommand {
	command := ReleaseDueOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrReleaseDueOrdersCommandIsNotConstructed if validation fails.
func (c *ReleaseDueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReleaseDueOrdersCommandIsNotConstructed)
}
