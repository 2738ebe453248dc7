package command

import (
	"context"
	"fmt"
	"timebot/internal/core/domain"
	"timebot/internal/core/port"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// Dispatcher turns an inbound message into its reply by walking the command
// state table from the classified command until a terminal state.
type Dispatcher struct {
	classifier *Classifier
	registry   port.CommandRegistry
	fallback   port.Command
	maxHops    int
}

// NewDispatcher fails if a state of the registry falls through to a command
// that is not registered.
func NewDispatcher(classifier *Classifier, registry port.CommandRegistry) (*Dispatcher, error) {
	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command state table: %w", err)
	}

	return &Dispatcher{
		classifier: classifier,
		registry:   registry,
		fallback:   NewUnknown(),
		maxHops:    len(registry.ListCommands()) + 1,
	}, nil
}

func (d *Dispatcher) Reply(ctx context.Context, message domain.Message) (domain.Reply, error) {
	cmd := d.classifier.Classify(message)

	result, err := d.Dispatch(ctx, cmd)
	if err != nil {
		return domain.Reply{}, err
	}

	return domain.Reply{
		ChatID: message.ChatID,
		Text:   result.Text,
		Format: domain.MarkdownLike,
	}, nil
}

// Dispatch runs cmd through the state table. Each visited state and the
// command it received is recorded in the trace.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd domain.ClassifiedCommand) (domain.Dispatch, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return domain.Dispatch{}, fmt.Errorf("failed to generate dispatch id: %w", err)
	}

	l := log.With().
		Str("dispatchId", id.String()).
		Str("command", cmd.Name).
		Logger()
	ctx = l.WithContext(ctx)

	l.Info().Str("arguments", cmd.Argument.Candidate()).Msg("handling command")

	result := domain.Dispatch{ID: id}
	step := domain.Step{Command: cmd}

	state, err := d.registry.Get(cmd.Name)
	if err != nil {
		l.Debug().Err(err).Msg("no state for command, using fallback")
		state = d.fallback
	}

	for hops := 0; ; hops++ {
		if hops >= d.maxHops {
			return result, fmt.Errorf("%w: transition limit of %d exceeded", domain.ErrUnknownTransition, d.maxHops)
		}

		result.Trace = append(result.Trace, domain.Transition{State: state.GetCommand(), Command: step.Command})

		step, err = state.Respond(ctx, step)
		if err != nil {
			return result, fmt.Errorf("%s: %w", state.GetCommand(), err)
		}

		next := state.Next()
		if next == "" {
			break
		}

		l.Debug().Str("from", state.GetCommand()).Str("to", next).Msg("falling through")

		state, err = d.registry.Get(next)
		if err != nil {
			return result, fmt.Errorf("%w: %s: %w", domain.ErrUnknownTransition, next, err)
		}
	}

	result.Text = step.Text

	return result, nil
}
