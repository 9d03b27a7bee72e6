package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pingly/errors"
)

func TestMessageService_Send_RejectsBlankContent(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	service := NewMessageService(store)

	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := service.Send(context.Background(), "alice", "bob", content)
		req.ErrorIs(err, errors.ErrEmptyContent, "content %q", content)
	}
	req.Empty(store.rows, "no row may be created for a blank submission")
}

func TestMessageService_Send_RejectsSelfMessage(t *testing.T) {
	req := require.New(t)
	service := NewMessageService(&fakeMessageStore{})

	_, err := service.Send(context.Background(), "alice", "alice", "hi me")
	req.ErrorIs(err, errors.ErrSelfConversation)
}

func TestMessageService_Send_RejectsMissingParticipants(t *testing.T) {
	req := require.New(t)
	service := NewMessageService(&fakeMessageStore{})

	_, err := service.Send(context.Background(), "", "bob", "hello")
	req.True(errors.IsValidation(err))
}

func TestMessageService_Send_TrimsAndDelegates(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	service := NewMessageService(store)

	msg, err := service.Send(context.Background(), "alice", "bob", "  hello bob  ")
	req.NoError(err)
	req.Equal("hello bob", msg.Content)
	req.Equal("alice", msg.SenderID)
	req.Equal("bob", msg.ReceiverID)
	req.NotZero(msg.ID)
	req.False(msg.CreatedAt.IsZero(), "the store assigns the timestamp")
	req.Len(store.rows, 1)
}
