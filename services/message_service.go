package services

import (
	"context"
	"strings"

	"pingly/contract"
	"pingly/domain"
	"pingly/errors"
)

// IMessageService is the send path: validation happens here, before the
// store is touched, so an empty submission never creates a row.
type IMessageService interface {
	Send(ctx context.Context, senderID, receiverID, content string) (domain.Message, error)
}

type MessageService struct {
	store contract.IMessageStore
}

func NewMessageService(store contract.IMessageStore) *MessageService {
	return &MessageService{store: store}
}

// Send creates one message. The store assigns id and timestamp; the
// sender sees the message come back through the feed like any other
// participant, keeping a single source of truth for ordering.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string) (domain.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Message{}, errors.ErrEmptyContent
	}
	if senderID == receiverID {
		return domain.Message{}, errors.ErrSelfConversation
	}
	if senderID == "" || receiverID == "" {
		return domain.Message{}, errors.NewValidation("participants", "sender and receiver are required")
	}
	return s.store.CreateMessage(ctx, senderID, receiverID, content)
}
