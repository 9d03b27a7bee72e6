package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pingly/domain"
	"pingly/errors"
)

func setupBadger(t *testing.T) *badger.DB {
	t.Helper()
	opts := badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

var repoBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func storedMessage(sender, receiver, content string, offset time.Duration) domain.Message {
	return domain.Message{
		ID:         uuid.New(),
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		CreatedAt:  repoBase.Add(offset),
	}
}

func TestMessageRepository_StoreAndFetchConversation(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(setupBadger(t), slog.Default())

	// Given: messages stored out of chronological order
	second := storedMessage("alice", "bob", "second", 2*time.Second)
	first := storedMessage("bob", "alice", "first", 1*time.Second)
	third := storedMessage("alice", "bob", "third", 3*time.Second)
	for _, m := range []domain.Message{second, first, third} {
		req.NoError(repo.StoreMessage(m))
	}

	// When: fetching the conversation
	messages, err := repo.FetchConversation(domain.NewConversationKey("alice", "bob"))

	// Then: oldest first, straight from the key layout
	req.NoError(err)
	req.Len(messages, 3)
	req.Equal("first", messages[0].Content)
	req.Equal("second", messages[1].Content)
	req.Equal("third", messages[2].Content)
	req.Equal(first.ID, messages[0].ID)
	req.Equal(first.CreatedAt, messages[0].CreatedAt)
}

func TestMessageRepository_ConversationIsolation(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(setupBadger(t), slog.Default())

	req.NoError(repo.StoreMessage(storedMessage("alice", "bob", "for bob", time.Second)))
	req.NoError(repo.StoreMessage(storedMessage("alice", "carol", "for carol", 2*time.Second)))

	messages, err := repo.FetchConversation(domain.NewConversationKey("alice", "bob"))
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("for bob", messages[0].Content)
}

func TestMessageRepository_FetchAllMessages(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(setupBadger(t), slog.Default())

	// Given: alice talks with bob and carol; bob and carol also talk
	req.NoError(repo.StoreMessage(storedMessage("alice", "bob", "a->b", 1*time.Second)))
	req.NoError(repo.StoreMessage(storedMessage("carol", "alice", "c->a", 2*time.Second)))
	req.NoError(repo.StoreMessage(storedMessage("bob", "carol", "b->c", 3*time.Second)))

	// When: loading alice's inbox
	messages, err := repo.FetchAllMessages("alice")

	// Then: sent and received, oldest first, nothing of other people's threads
	req.NoError(err)
	req.Len(messages, 2)
	req.Equal("a->b", messages[0].Content)
	req.Equal("c->a", messages[1].Content)
}

func TestMessageRepository_FetchEmpty(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(setupBadger(t), slog.Default())

	messages, err := repo.FetchConversation(domain.NewConversationKey("nobody", "noone"))
	req.NoError(err)
	req.Empty(messages)

	messages, err = repo.FetchAllMessages("ghost")
	req.NoError(err)
	req.Empty(messages)
}

func TestMessageRepository_StoreRejectsMalformed(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(setupBadger(t), slog.Default())

	blank := storedMessage("alice", "bob", "   ", 0)
	req.ErrorIs(repo.StoreMessage(blank), errors.ErrEmptyContent)

	self := storedMessage("alice", "alice", "note", 0)
	req.ErrorIs(repo.StoreMessage(self), errors.ErrSelfConversation)
}

func TestMessageRepository_SameNanosecondMessagesBothSurvive(t *testing.T) {
	req := require.New(t)
	repo := NewMessageRepository(setupBadger(t), slog.Default())

	// Two messages on the same nanosecond: the UUID suffix keeps the
	// keys distinct.
	a := storedMessage("alice", "bob", "a", 0)
	b := storedMessage("bob", "alice", "b", 0)
	req.NoError(repo.StoreMessage(a))
	req.NoError(repo.StoreMessage(b))

	messages, err := repo.FetchConversation(domain.NewConversationKey("alice", "bob"))
	req.NoError(err)
	req.Len(messages, 2)
}
