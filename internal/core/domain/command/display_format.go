package command

import (
	"context"
	"timebot/internal/core/domain"
)

type DisplayFormat struct {
	command string
}

func NewDisplayFormat(command string) *DisplayFormat {
	return &DisplayFormat{command: command}
}

func (d *DisplayFormat) GetCommand() string {
	return d.command
}

func (d *DisplayFormat) Next() string {
	return ""
}

const notImplementedMessage = "Sorry but this command is not yet implemented, check later!"

func (d *DisplayFormat) Respond(_ context.Context, step domain.Step) (domain.Step, error) {
	step.Text = notImplementedMessage
	return step, nil
}
