package command

import (
	"context"
	"errors"
	"fmt"
	"timebot/internal/core/domain"
	"timebot/internal/core/port"

	"github.com/rs/zerolog"
)

// Timezone replies with the current time in the timezone named by the
// command argument.
type Timezone struct {
	formatter port.TimeFormatter
	command   string
}

func NewTimezone(formatter port.TimeFormatter, command string) *Timezone {
	return &Timezone{formatter: formatter, command: command}
}

func (t *Timezone) GetCommand() string {
	return t.command
}

func (t *Timezone) Next() string {
	return ""
}

const (
	missingTimezoneMessage = "Please provide a valid timezone identifier"
	timeMessage            = "The date & time in *%s* is now *%s hours*"
	invalidTimezoneMessage = "Sorry but \"*%s*\" is not a valid timezone identifier. " +
		"Please check [the following list](%s) for all possible timezone identifiers"
	timezoneListURL = "https://en.wikipedia.org/wiki/List_of_tz_database_time_zones"
)

func (t *Timezone) Respond(ctx context.Context, step domain.Step) (domain.Step, error) {
	logger := zerolog.Ctx(ctx)

	candidate := step.Command.Argument.Candidate()
	if candidate == "" {
		logger.Warn().Msg("valid command found but invalid arguments")
		step.Text = missingTimezoneMessage
		return step, nil
	}

	timezone := NormalizeTimezone(candidate)
	step.Command = step.Command.WithArgument(domain.TimezoneArgument(timezone))

	formatted, err := t.formatter.FormatNow(timezone)
	switch {
	case errors.Is(err, domain.ErrInvalidTimezone):
		logger.Warn().Str("timezone", timezone).Msg("invalid timezone detected")
		step.Text = fmt.Sprintf(invalidTimezoneMessage, timezone, timezoneListURL)
	case err != nil:
		return step, fmt.Errorf("failed to format time for %q: %w", timezone, err)
	default:
		logger.Info().Str("timezone", timezone).Msg("valid timezone, sending time back to user")
		step.Text = fmt.Sprintf(timeMessage, timezone, formatted)
	}

	return step, nil
}
