package domain

import "github.com/gofrs/uuid/v5"

type Entity struct {
	Offset int
	Length int
}

type Location struct {
	Latitude  float64
	Longitude float64
}

// Message is an inbound chat message as surfaced by the transport. Edited
// messages are delivered through the same type.
type Message struct {
	ID       int
	ChatID   int64
	Text     string
	Entities []Entity
	Location *Location
}

type ArgumentKind int

const (
	NoArgument ArgumentKind = iota
	RawText
	Coordinates
	TimezoneID
)

// Argument is the payload attached to a command. Only the field matching Kind
// is meaningful.
type Argument struct {
	Kind     ArgumentKind
	Text     string
	Location Location
}

func TextArgument(text string) Argument {
	return Argument{Kind: RawText, Text: text}
}

func LocationArgument(location Location) Argument {
	return Argument{Kind: Coordinates, Location: location}
}

func TimezoneArgument(id string) Argument {
	return Argument{Kind: TimezoneID, Text: id}
}

// Candidate returns the textual argument, empty for argument kinds that carry
// no text.
func (a Argument) Candidate() string {
	switch a.Kind {
	case RawText, TimezoneID:
		return a.Text
	default:
		return ""
	}
}

type ClassifiedCommand struct {
	Name     string
	Argument Argument
}

// WithArgument returns a copy of the command carrying the given argument.
func (c ClassifiedCommand) WithArgument(argument Argument) ClassifiedCommand {
	c.Argument = argument
	return c
}

// Step is the value threaded through the command states of one dispatch.
type Step struct {
	Command ClassifiedCommand
	Text    string
}

type Transition struct {
	State   string
	Command ClassifiedCommand
}

type Dispatch struct {
	ID    uuid.UUID
	Trace []Transition
	Text  string
}

type Format string

const (
	PlainText    Format = "plain"
	MarkdownLike Format = "markdown"
)

type Reply struct {
	ChatID int64
	Text   string
	Format Format
}
