package command

import (
	"context"
	"timebot/internal/core/domain"
)

type Start struct {
	command string
	next    string
}

func NewStart(command, next string) *Start {
	return &Start{command: command, next: next}
}

func (s *Start) GetCommand() string {
	return s.command
}

func (s *Start) Next() string {
	return s.next
}

const welcomeMessage = "Welcome! Consult /help at any time to get a list of command and options.\n"

func (s *Start) Respond(_ context.Context, step domain.Step) (domain.Step, error) {
	step.Text = welcomeMessage
	return step, nil
}
