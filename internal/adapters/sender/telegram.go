package sender

import (
	"context"
	"fmt"
	"timebot/internal/core/domain"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

//go:generate mockery --name TelegramBot

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

type Telegram struct {
	bot TelegramBot
}

func NewTelegram(bot TelegramBot) *Telegram {
	return &Telegram{bot: bot}
}

func (s *Telegram) SendReply(ctx context.Context, reply domain.Reply) error {
	log.Debug().
		Int64("chatId", reply.ChatID).
		Str("text", reply.Text).
		Str("format", string(reply.Format)).
		Msg("sending the message to user")

	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    reply.ChatID,
		Text:      reply.Text,
		ParseMode: parseMode(reply.Format),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

const errorMessage = "Sorry, something went wrong while handling your request. Please try again later."

func (s *Telegram) NotifyAndReturnError(ctx context.Context, err error, chatID int64) error {
	log.Err(err).Int64("chatId", chatID).Msg("notifying user about failed request")

	sendErr := s.SendReply(ctx, domain.Reply{
		ChatID: chatID,
		Text:   errorMessage,
		Format: domain.PlainText,
	})
	if sendErr != nil {
		log.Err(sendErr).Int64("chatId", chatID).Msg("failed to send error notification")
		return sendErr
	}

	return err
}

func parseMode(format domain.Format) models.ParseMode {
	switch format {
	case domain.MarkdownLike:
		return models.ParseModeMarkdownV1
	default:
		return ""
	}
}
