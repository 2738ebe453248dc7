package command

import (
	"testing"
	"timebot/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	type TestCase struct {
		description string
		username    string
		message     domain.Message
		want        domain.ClassifiedCommand
	}

	santiago := domain.Location{Latitude: -33.45, Longitude: -70.66}

	testCases := []TestCase{
		{
			description: "command with argument",
			message: domain.Message{
				Text:     "/help extra",
				Entities: []domain.Entity{{Offset: 0, Length: 5}},
			},
			want: domain.ClassifiedCommand{Name: "help", Argument: domain.TextArgument("extra")},
		},
		{
			description: "command is lower cased",
			message: domain.Message{
				Text:     "/HeLp",
				Entities: []domain.Entity{{Offset: 0, Length: 5}},
			},
			want: domain.ClassifiedCommand{Name: "help", Argument: domain.TextArgument("")},
		},
		{
			description: "command without argument",
			message: domain.Message{
				Text:     "/start",
				Entities: []domain.Entity{{Offset: 0, Length: 6}},
			},
			want: domain.ClassifiedCommand{Name: "start", Argument: domain.TextArgument("")},
		},
		{
			description: "timezone argument is trimmed",
			message: domain.Message{
				Text:     "/get_time_for_timezone   america/santiago  ",
				Entities: []domain.Entity{{Offset: 0, Length: 22}},
			},
			want: domain.ClassifiedCommand{
				Name:     "get_time_for_timezone",
				Argument: domain.TextArgument("america/santiago"),
			},
		},
		{
			description: "only first entity is used",
			message: domain.Message{
				Text:     "/help /start",
				Entities: []domain.Entity{{Offset: 0, Length: 5}, {Offset: 6, Length: 6}},
			},
			want: domain.ClassifiedCommand{Name: "help", Argument: domain.TextArgument("/start")},
		},
		{
			description: "argument slice starts at entity length, not its end",
			message: domain.Message{
				Text:     "hi /help",
				Entities: []domain.Entity{{Offset: 3, Length: 5}},
			},
			want: domain.ClassifiedCommand{Name: "help", Argument: domain.TextArgument("elp")},
		},
		{
			description: "offsets count utf-16 units",
			message: domain.Message{
				Text:     "\U0001F550 /help",
				Entities: []domain.Entity{{Offset: 3, Length: 5}},
			},
			want: domain.ClassifiedCommand{Name: "help", Argument: domain.TextArgument("elp")},
		},
		{
			description: "non-ascii argument is kept whole",
			message: domain.Message{
				Text:     "/get_time_for_timezone \u00e9urope/z\u00fcrich \U0001F550",
				Entities: []domain.Entity{{Offset: 0, Length: 22}},
			},
			want: domain.ClassifiedCommand{
				Name:     "get_time_for_timezone",
				Argument: domain.TextArgument("\u00e9urope/z\u00fcrich \U0001F550"),
			},
		},
		{
			description: "entity beyond text yields empty command",
			message: domain.Message{
				Text:     "/",
				Entities: []domain.Entity{{Offset: 0, Length: 1}},
			},
			want: domain.ClassifiedCommand{Name: "", Argument: domain.TextArgument("")},
		},
		{
			description: "bot mention is stripped",
			username:    "TheTimeBot",
			message: domain.Message{
				Text:     "/help@TheTimeBot",
				Entities: []domain.Entity{{Offset: 0, Length: 16}},
			},
			want: domain.ClassifiedCommand{Name: "help", Argument: domain.TextArgument("")},
		},
		{
			description: "other mentions are kept",
			username:    "TheTimeBot",
			message: domain.Message{
				Text:     "/help@OtherBot",
				Entities: []domain.Entity{{Offset: 0, Length: 14}},
			},
			want: domain.ClassifiedCommand{Name: "help@otherbot", Argument: domain.TextArgument("")},
		},
		{
			description: "location becomes getTimeByLocation",
			message:     domain.Message{Location: &santiago},
			want: domain.ClassifiedCommand{
				Name:     domain.CommandTimeByLocation,
				Argument: domain.LocationArgument(santiago),
			},
		},
		{
			description: "entities take priority over location",
			message: domain.Message{
				Text:     "/help",
				Entities: []domain.Entity{{Offset: 0, Length: 5}},
				Location: &santiago,
			},
			want: domain.ClassifiedCommand{Name: "help", Argument: domain.TextArgument("")},
		},
		{
			description: "plain text has no command",
			message:     domain.Message{Text: "what time is it"},
			want:        domain.ClassifiedCommand{},
		},
		{
			description: "empty message has no command",
			message:     domain.Message{},
			want:        domain.ClassifiedCommand{},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			got := NewClassifier(testCase.username).Classify(testCase.message)

			assert.Equal(t, testCase.want, got)
		})
	}
}
