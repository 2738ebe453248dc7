package command

import (
	"errors"
	"fmt"
	"timebot/internal/core/domain"
	"timebot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// Registry holds the command states keyed by name, in registration order.
type Registry struct {
	states map[string]port.Command
	order  []string
}

// Register adds a state. Registering a name twice replaces the earlier state
// but keeps its position.
func (r *Registry) Register(state port.Command) {
	if r.states == nil {
		r.states = make(map[string]port.Command)
	}

	name := state.GetCommand()
	if _, ok := r.states[name]; !ok {
		r.order = append(r.order, name)
	}

	log.Info().Str("state", name).Str("next", state.Next()).Msg("adding command state to registry")
	r.states[name] = state
}

func (r *Registry) Get(command string) (port.Command, error) {
	log.Debug().Str("command", command).Msg("fetching command state from registry")

	if r.states == nil {
		return nil, errors.New("can't fetch command, registry not initialized")
	}

	state, ok := r.states[command]
	if !ok {
		return nil, errors.New("command not found")
	}

	return state, nil
}

func (r *Registry) ListCommands() []string {
	return append([]string(nil), r.order...)
}

// Validate reports every state whose fallthrough target is not registered.
func (r *Registry) Validate() error {
	var errs []error

	for _, name := range r.order {
		next := r.states[name].Next()
		if next == "" {
			continue
		}

		if _, ok := r.states[next]; !ok {
			errs = append(errs, fmt.Errorf("%w: %s falls through to unregistered %s",
				domain.ErrUnknownTransition, name, next))
		}
	}

	return errors.Join(errs...)
}
