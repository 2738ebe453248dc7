package port

import (
	"context"
	"timebot/internal/core/domain"
)

type ReplySender interface {
	// SendReply delivers a reply to its chat.
	SendReply(ctx context.Context, reply domain.Reply) error
	// NotifyAndReturnError sends a generic error notification to the chat and returns the error.
	NotifyAndReturnError(ctx context.Context, err error, chatID int64) error
}
