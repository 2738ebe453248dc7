package handler

import (
	"context"
	"time"
	"timebot/internal/core/domain"
	"timebot/internal/core/port"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type Update struct {
	dispatcher port.Dispatcher
	sender     port.ReplySender
	timeout    time.Duration
}

// NewUpdate creates the handler for inbound updates. A zero timeout leaves
// the handling of an update unbounded.
func NewUpdate(dispatcher port.Dispatcher, sender port.ReplySender, timeout time.Duration) *Update {
	return &Update{dispatcher: dispatcher, sender: sender, timeout: timeout}
}

func (u *Update) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	message := effectiveMessage(update)
	if message == nil {
		log.Debug().Msg("update carries no message, ignoring")
		return
	}

	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	msg := toDomainMessage(message)

	l := log.With().
		Int("messageId", msg.ID).
		Int64("chatId", msg.ChatID).
		Logger()

	l.Debug().Str("text", msg.Text).Int("entities", len(msg.Entities)).
		Bool("location", msg.Location != nil).Msg("incoming message")

	reply, err := u.dispatcher.Reply(ctx, msg)
	if err != nil {
		err = u.sender.NotifyAndReturnError(ctx, err, msg.ChatID)
		l.Err(err).Msg("failed to dispatch message")
		return
	}

	if err := u.deliver(ctx, reply); err != nil {
		l.Err(err).Msg("failed to send reply")
	}
}

// deliver resends a rejected Markdown reply as plain text, since user input
// inside the reply can make it unparseable.
func (u *Update) deliver(ctx context.Context, reply domain.Reply) error {
	err := u.sender.SendReply(ctx, reply)
	if err == nil || reply.Format != domain.MarkdownLike {
		return err
	}

	log.Warn().Err(err).Int64("chatId", reply.ChatID).Msg("markdown reply rejected, resending as plain text")

	reply.Format = domain.PlainText

	return u.sender.SendReply(ctx, reply)
}

// effectiveMessage treats a text edit the same way as a new message.
func effectiveMessage(update *models.Update) *models.Message {
	if update == nil {
		return nil
	}

	message := update.Message
	if (message == nil || message.Text == "") && update.EditedMessage != nil && update.EditedMessage.Text != "" {
		message = update.EditedMessage
	}

	return message
}

func toDomainMessage(message *models.Message) domain.Message {
	msg := domain.Message{
		ID:     message.ID,
		ChatID: message.Chat.ID,
		Text:   message.Text,
	}

	for _, entity := range message.Entities {
		msg.Entities = append(msg.Entities, domain.Entity{Offset: entity.Offset, Length: entity.Length})
	}

	if message.Location != nil {
		msg.Location = &domain.Location{
			Latitude:  message.Location.Latitude,
			Longitude: message.Location.Longitude,
		}
	}

	return msg
}
