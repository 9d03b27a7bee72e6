package feed

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pingly/domain"
	"pingly/domain/event"
)

// recordingSink keeps every event it sees.
type recordingSink struct {
	events []event.DomainEvent
	err    error
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.events = append(s.events, e)
	return s.err
}

func created(sender, receiver, content string) event.MessageCreated {
	return event.MessageCreated{Message: domain.Message{
		ID:         uuid.New(),
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}}
}

func TestBus_Publish_RoutesByConversation(t *testing.T) {
	req := require.New(t)
	bus := NewBus(slog.Default())
	ctx := context.Background()

	aliceBob := &recordingSink{}
	aliceCarol := &recordingSink{}
	bus.Subscribe(MatchConversation(domain.NewConversationKey("alice", "bob")), aliceBob)
	bus.Subscribe(MatchConversation(domain.NewConversationKey("alice", "carol")), aliceCarol)

	bus.Publish(ctx, created("alice", "bob", "for bob"))
	bus.Publish(ctx, created("carol", "alice", "for carol thread"))

	// Each subscription only sees its own conversation
	req.Len(aliceBob.events, 1)
	req.Len(aliceCarol.events, 1)
	req.Equal("for bob", aliceBob.events[0].(event.MessageCreated).Message.Content)
	req.Equal("for carol thread", aliceCarol.events[0].(event.MessageCreated).Message.Content)
}

func TestBus_Publish_MatchUserSeesAllConversations(t *testing.T) {
	req := require.New(t)
	bus := NewBus(slog.Default())
	ctx := context.Background()

	alice := &recordingSink{}
	bus.Subscribe(MatchUser("alice"), alice)

	bus.Publish(ctx, created("alice", "bob", "one"))
	bus.Publish(ctx, created("carol", "alice", "two"))
	bus.Publish(ctx, created("bob", "carol", "not alice"))

	req.Len(alice.events, 2)
}

func TestBus_Publish_PreservesFeedOrder(t *testing.T) {
	req := require.New(t)
	bus := NewBus(slog.Default())
	ctx := context.Background()

	sink := &recordingSink{}
	bus.Subscribe(nil, sink)

	for i := 0; i < 5; i++ {
		bus.Publish(ctx, created("alice", "bob", fmt.Sprintf("msg-%d", i)))
	}

	req.Len(sink.events, 5)
	for i, e := range sink.events {
		req.Equal(fmt.Sprintf("msg-%d", i), e.(event.MessageCreated).Message.Content)
	}
}

func TestBus_Publish_SinkErrorDoesNotStopDelivery(t *testing.T) {
	req := require.New(t)
	bus := NewBus(slog.Default())
	ctx := context.Background()

	failing := &recordingSink{err: fmt.Errorf("broken sink")}
	healthy := &recordingSink{}
	bus.Subscribe(nil, failing)
	bus.Subscribe(nil, healthy)

	bus.Publish(ctx, created("alice", "bob", "hello"))

	req.Len(failing.events, 1)
	req.Len(healthy.events, 1, "one failing consumer must not starve the others")
}

func TestBus_Subscription_CloseIsIdempotent(t *testing.T) {
	req := require.New(t)
	bus := NewBus(slog.Default())
	ctx := context.Background()

	sink := &recordingSink{}
	sub := bus.Subscribe(nil, sink)
	req.Equal(1, bus.SubscriberCount())

	sub.Close()
	sub.Close()
	req.Equal(0, bus.SubscriberCount())

	bus.Publish(ctx, created("alice", "bob", "after close"))
	req.Empty(sink.events)
}

func TestBus_NotifyGap_ReachesEverySubscriptionRegardlessOfPredicate(t *testing.T) {
	req := require.New(t)
	bus := NewBus(slog.Default())
	ctx := context.Background()

	// A predicate that matches nothing normal
	never := func(event.DomainEvent) bool { return false }
	muted := &recordingSink{}
	scoped := &recordingSink{}
	bus.Subscribe(never, muted)
	bus.Subscribe(MatchConversation(domain.NewConversationKey("alice", "bob")), scoped)

	bus.NotifyGap(ctx)

	req.Len(muted.events, 1)
	req.Len(scoped.events, 1)
	_, ok := muted.events[0].(event.FeedInterrupted)
	req.True(ok)
}
