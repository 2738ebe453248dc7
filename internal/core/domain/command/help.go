package command

import (
	"context"
	"timebot/internal/core/domain"
)

type Help struct {
	command string
}

func NewHelp(command string) *Help {
	return &Help{command: command}
}

func (h *Help) GetCommand() string {
	return h.command
}

func (h *Help) Next() string {
	return ""
}

const helpMessage = "*Example commands:*\n" +
	"- `/get_time_for_timezone America/Santiago` -> Displays the current time in America/Santiago\n" +
	"- You can also send a location (Works from phone only)"

// Respond appends the usage text to whatever an earlier state produced.
func (h *Help) Respond(_ context.Context, step domain.Step) (domain.Step, error) {
	step.Text += helpMessage
	return step, nil
}
