package command

import (
	"context"
	"fmt"
	"timebot/internal/core/domain"
	"timebot/internal/core/port"

	"github.com/rs/zerolog"
)

// Location resolves the coordinates of a command into a timezone identifier.
type Location struct {
	resolver port.TimezoneResolver
	command  string
	next     string
}

func NewLocation(resolver port.TimezoneResolver, command, next string) *Location {
	return &Location{resolver: resolver, command: command, next: next}
}

func (l *Location) GetCommand() string {
	return l.command
}

func (l *Location) Next() string {
	return l.next
}

func (l *Location) Respond(ctx context.Context, step domain.Step) (domain.Step, error) {
	logger := zerolog.Ctx(ctx)

	if step.Command.Argument.Kind != domain.Coordinates {
		return step, fmt.Errorf("%w: command carries no location", domain.ErrGeoLookupFailed)
	}

	location := step.Command.Argument.Location
	logger.Debug().
		Float64("latitude", location.Latitude).
		Float64("longitude", location.Longitude).
		Msg("asking geocoder for the timezone of location")

	timezone, err := l.resolver.ResolveTimezone(ctx, location)
	if err != nil {
		return step, fmt.Errorf("%w: %w", domain.ErrGeoLookupFailed, err)
	}

	logger.Info().Str("timezone", timezone).Str("next", l.next).Msg("timezone resolved, passing it on")

	step.Command = step.Command.WithArgument(domain.TimezoneArgument(timezone))

	return step, nil
}
