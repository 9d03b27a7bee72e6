package projection

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pingly/domain"
	"pingly/domain/event"
	"pingly/errors"
)

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func message(sender, receiver, content string, offset time.Duration) domain.Message {
	return domain.Message{
		ID:         uuid.New(),
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		CreatedAt:  baseTime.Add(offset),
	}
}

func TestTimeline_Ingest_SortedInsertion(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(domain.NewConversationKey("alice", "bob"))

	// Given: messages arriving newest first
	third := message("alice", "bob", "third", 3*time.Second)
	first := message("bob", "alice", "first", 1*time.Second)
	second := message("alice", "bob", "second", 2*time.Second)

	for _, m := range []domain.Message{third, first, second} {
		changed, err := timeline.Ingest(m)
		req.NoError(err)
		req.True(changed)
	}

	// Then: the view is oldest first regardless of arrival order
	view := timeline.View()
	req.Len(view, 3)
	req.Equal("first", view[0].Content)
	req.Equal("second", view[1].Content)
	req.Equal("third", view[2].Content)
}

func TestTimeline_Ingest_DuplicateIsNoOp(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(domain.NewConversationKey("alice", "bob"))
	msg := message("alice", "bob", "hello", 0)

	// Given: the same event delivered three times
	changed, err := timeline.Ingest(msg)
	req.NoError(err)
	req.True(changed)

	for i := 0; i < 2; i++ {
		changed, err = timeline.Ingest(msg)
		req.NoError(err)
		req.False(changed, "redelivery must not change state")
	}

	req.Equal(1, timeline.Len())
}

func TestTimeline_Ingest_OrderInvariance(t *testing.T) {
	req := require.New(t)
	key := domain.NewConversationKey("alice", "bob")

	// Given: a fixed set of messages
	var messages []domain.Message
	for i := 0; i < 10; i++ {
		messages = append(messages, message("alice", "bob", "msg", time.Duration(i)*time.Second))
	}

	reference := NewTimeline(key)
	for _, m := range messages {
		_, err := reference.Ingest(m)
		req.NoError(err)
	}

	// When: ingesting shuffled permutations, with duplicates sprinkled in
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 5; trial++ {
		shuffled := append([]domain.Message(nil), messages...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		shuffled = append(shuffled, shuffled[0], shuffled[3])

		timeline := NewTimeline(key)
		for _, m := range shuffled {
			_, err := timeline.Ingest(m)
			req.NoError(err)
		}

		// Then: every permutation converges to the reference state
		req.Equal(reference.View(), timeline.View())
	}
}

func TestTimeline_Ingest_OtherConversationIgnored(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(domain.NewConversationKey("alice", "bob"))

	// When: an event of another conversation comes down the shared feed
	changed, err := timeline.Ingest(message("alice", "carol", "off-topic", 0))

	// Then: silently dropped
	req.NoError(err)
	req.False(changed)
	req.Equal(0, timeline.Len())
}

func TestTimeline_Ingest_MalformedRejected(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(domain.NewConversationKey("alice", "bob"))

	blank := message("alice", "bob", "   ", 0)
	_, err := timeline.Ingest(blank)
	req.ErrorIs(err, errors.ErrEmptyContent)
	req.Equal(0, timeline.Len())
}

func TestTimeline_Ingest_UpdateAmendsInPlace(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(domain.NewConversationKey("alice", "bob"))

	original := message("alice", "bob", "typo", 0)
	_, err := timeline.Ingest(original)
	req.NoError(err)

	// When: an update event for the same id arrives
	edited := original
	edited.Content = "fixed"
	edited.CreatedAt = original.CreatedAt.Add(time.Second)
	changed, err := timeline.Ingest(edited)
	req.NoError(err)
	req.True(changed)

	// Then: one entry, with the new content
	view := timeline.View()
	req.Len(view, 1)
	req.Equal("fixed", view[0].Content)

	// And: replaying the original afterwards does not resurrect the typo
	changed, err = timeline.Ingest(original)
	req.NoError(err)
	req.False(changed)
	req.Equal("fixed", timeline.View()[0].Content)
}

func TestTimeline_Ingest_TimestampTieBrokenByID(t *testing.T) {
	req := require.New(t)
	key := domain.NewConversationKey("alice", "bob")

	a := message("alice", "bob", "a", 0)
	b := message("bob", "alice", "b", 0)

	forward := NewTimeline(key)
	for _, m := range []domain.Message{a, b} {
		_, err := forward.Ingest(m)
		req.NoError(err)
	}
	backward := NewTimeline(key)
	for _, m := range []domain.Message{b, a} {
		_, err := backward.Ingest(m)
		req.NoError(err)
	}

	req.Equal(forward.View(), backward.View())
}

func TestTimeline_Load_ReplacesState(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(domain.NewConversationKey("alice", "bob"))

	_, err := timeline.Ingest(message("alice", "bob", "live", 0))
	req.NoError(err)

	rows := []domain.Message{
		message("bob", "alice", "hist-2", 2*time.Second),
		message("alice", "bob", "hist-1", 1*time.Second),
	}
	req.NoError(timeline.Load(rows))

	view := timeline.View()
	req.Len(view, 2)
	req.Equal("hist-1", view[0].Content)
	req.Equal("hist-2", view[1].Content)
}

func TestTimeline_Load_MalformedRowLeavesStateUntouched(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(domain.NewConversationKey("alice", "bob"))

	keep := message("alice", "bob", "keep", 0)
	_, err := timeline.Ingest(keep)
	req.NoError(err)

	// When: the bulk fetch contains a corrupt row
	rows := []domain.Message{
		message("bob", "alice", "fine", time.Second),
		{ID: uuid.New(), SenderID: "alice", ReceiverID: "bob", CreatedAt: baseTime}, // empty content
	}
	err = timeline.Load(rows)

	// Then: the load is rejected wholesale
	req.ErrorIs(err, errors.ErrEmptyContent)
	view := timeline.View()
	req.Len(view, 1)
	req.Equal("keep", view[0].Content)
}

func TestTimeline_Consume_RoutesFeedEvents(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline(domain.NewConversationKey("alice", "bob"))
	ctx := context.Background()

	created := message("alice", "bob", "hello", 0)
	req.NoError(timeline.Consume(ctx, event.MessageCreated{Message: created}))

	edited := created
	edited.Content = "hello!"
	edited.CreatedAt = created.CreatedAt.Add(time.Second)
	req.NoError(timeline.Consume(ctx, event.MessageUpdated{Message: edited}))

	// Gap markers are not timeline input
	req.NoError(timeline.Consume(ctx, event.FeedInterrupted{At: baseTime}))

	view := timeline.View()
	req.Len(view, 1)
	req.Equal("hello!", view[0].Content)
}
