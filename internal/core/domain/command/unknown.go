package command

import (
	"context"
	"timebot/internal/core/domain"

	"github.com/rs/zerolog"
)

// Unknown is the fallback state for command names without a registered state.
type Unknown struct{}

func NewUnknown() *Unknown {
	return &Unknown{}
}

func (u *Unknown) GetCommand() string {
	return "unknown"
}

func (u *Unknown) Next() string {
	return ""
}

const unknownMessage = "Sorry but I don't understand this option, please check /help"

func (u *Unknown) Respond(ctx context.Context, step domain.Step) (domain.Step, error) {
	zerolog.Ctx(ctx).Warn().
		Str("requested", step.Command.Name).
		Str("arguments", step.Command.Argument.Candidate()).
		Msg("invalid command detected")

	step.Text = unknownMessage
	return step, nil
}
