package command

import (
	"strings"
	"timebot/internal/core/domain"
	"unicode/utf16"
)

// Classifier extracts the command name and argument from an inbound message.
type Classifier struct {
	mention string
}

// NewClassifier creates a Classifier. When botUsername is set, a trailing
// "@botUsername" is removed from classified command names.
func NewClassifier(botUsername string) *Classifier {
	c := &Classifier{}
	if botUsername != "" {
		c.mention = "@" + strings.ToLower(strings.TrimPrefix(botUsername, "@"))
	}

	return c
}

// Classify never fails: a message without a recognizable command yields an
// empty command name.
//
// The name is read from the first entity starting one unit after its offset,
// and the argument from the entity's length to the end of the text. Offsets
// and lengths are UTF-16 code units, as Telegram reports them. The argument
// slice is only aligned with the command token when it starts at offset 0.
func (c *Classifier) Classify(message domain.Message) domain.ClassifiedCommand {
	if len(message.Entities) > 0 {
		entity := message.Entities[0]
		text := utf16.Encode([]rune(message.Text))

		name := strings.ToLower(strings.TrimSpace(substring(text, entity.Offset+1, entity.Length)))
		if c.mention != "" {
			name = strings.TrimSuffix(name, c.mention)
		}

		return domain.ClassifiedCommand{
			Name:     name,
			Argument: domain.TextArgument(strings.TrimSpace(substring(text, entity.Length, len(text)))),
		}
	}

	if message.Location != nil {
		return domain.ClassifiedCommand{
			Name:     domain.CommandTimeByLocation,
			Argument: domain.LocationArgument(*message.Location),
		}
	}

	return domain.ClassifiedCommand{}
}

func substring(text []uint16, start, length int) string {
	if start < 0 {
		start = 0
	}

	if start >= len(text) || length <= 0 {
		return ""
	}

	end := min(start+length, len(text))

	return string(utf16.Decode(text[start:end]))
}
