package port

import (
	"context"
	"timebot/internal/core/domain"
)

type Command interface {
	// Respond runs the command state on the given step and returns the step handed to the next state.
	Respond(ctx context.Context, step domain.Step) (domain.Step, error)
	// GetCommand retrieves the command identifier associated with a specific command state.
	GetCommand() string
	// Next returns the command identifier this state falls through to, or an empty string if it is terminal.
	Next() string
}

type CommandRegistry interface {
	// Register adds a new command state to the command registry.
	Register(handler Command)
	// Get retrieves a registered Command based on its string identifier or returns an error if not found.
	Get(command string) (Command, error)
	// ListCommands returns a list of all command identifiers currently registered in the command registry.
	ListCommands() []string
	// Validate checks that every fallthrough target names a registered command.
	Validate() error
}

type Dispatcher interface {
	// Reply classifies an inbound message and builds the single reply for it.
	Reply(ctx context.Context, message domain.Message) (domain.Reply, error)
}
