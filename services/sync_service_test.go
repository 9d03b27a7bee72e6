package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pingly/domain"
	"pingly/domain/event"
	"pingly/errors"
	"pingly/feed"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func msgAt(sender, receiver, content string, offset time.Duration) domain.Message {
	return domain.Message{
		ID:         uuid.New(),
		SenderID:   sender,
		ReceiverID: receiver,
		Content:    content,
		CreatedAt:  testBase.Add(offset),
	}
}

// fakeMessageStore is an in-memory IMessageStore. onFetch hooks let
// tests interleave engine calls with an in-flight bulk fetch.
type fakeMessageStore struct {
	mu      sync.Mutex
	rows    []domain.Message
	err     error
	onFetch func()
}

func (f *fakeMessageStore) setRows(rows []domain.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = rows
}

func (f *fakeMessageStore) CreateMessage(_ context.Context, senderID, receiverID, content string) (domain.Message, error) {
	if f.err != nil {
		return domain.Message{}, f.err
	}
	msg := domain.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}
	f.mu.Lock()
	f.rows = append(f.rows, msg)
	f.mu.Unlock()
	return msg, nil
}

func (f *fakeMessageStore) FetchConversation(_ context.Context, key domain.ConversationKey) ([]domain.Message, error) {
	if f.onFetch != nil {
		f.onFetch()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Message
	for _, row := range f.rows {
		if key.Matches(row) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeMessageStore) FetchAllMessages(_ context.Context, userID string) ([]domain.Message, error) {
	if f.onFetch != nil {
		f.onFetch()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Message
	for _, row := range f.rows {
		if row.Involves(userID) {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeProfileStore struct {
	mu       sync.Mutex
	profiles map[string]domain.Profile
	err      error
}

func newFakeProfileStore(profiles ...domain.Profile) *fakeProfileStore {
	store := &fakeProfileStore{profiles: make(map[string]domain.Profile)}
	for _, p := range profiles {
		store.profiles[p.ID] = p
	}
	return store
}

func (f *fakeProfileStore) GetProfile(_ context.Context, id string) (domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return domain.Profile{}, f.err
	}
	profile, ok := f.profiles[id]
	if !ok {
		return domain.Profile{}, fmt.Errorf("profile %s not found", id)
	}
	return profile, nil
}

func (f *fakeProfileStore) SearchProfiles(_ context.Context, query string, excludeIDs []string) ([]domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}
	var out []domain.Profile
	for _, p := range f.profiles {
		if _, skip := excluded[p.ID]; skip {
			continue
		}
		if query != "" && !containsFold(p.Username, query) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func newTestEngine(store *fakeMessageStore, profiles *fakeProfileStore) (*SyncEngine, *feed.Bus) {
	bus := feed.NewBus(slog.Default())
	return NewSyncEngine(slog.Default(), store, profiles, bus), bus
}

func TestSyncEngine_Login_LoadsConversationIndex(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{rows: []domain.Message{
		msgAt("alice", "bob", "hi bob", time.Second),
		msgAt("carol", "alice", "hey", 2*time.Second),
		msgAt("bob", "carol", "unrelated", 3*time.Second),
	}}
	profiles := newFakeProfileStore(
		domain.Profile{ID: "bob", Username: "bob_real"},
		domain.Profile{ID: "carol", Username: "carol_x"},
	)
	engine, _ := newTestEngine(store, profiles)

	req.NoError(engine.Login(context.Background(), "alice"))
	req.Equal("alice", engine.CurrentUser())

	summaries := engine.Conversations(context.Background())
	req.Len(summaries, 2)
	req.Equal("carol", summaries[0].PeerID)
	req.Equal("carol_x", summaries[0].Profile.Username)
	req.Equal("bob", summaries[1].PeerID)
	req.Equal("bob_real", summaries[1].Profile.Username)
}

func TestSyncEngine_LiveEventUpdatesIndex(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	engine, bus := newTestEngine(store, newFakeProfileStore())

	req.NoError(engine.Login(context.Background(), "alice"))
	req.Empty(engine.Conversations(context.Background()))

	// When: a message lands on the feed after login
	bus.Publish(context.Background(), event.MessageCreated{
		Message: msgAt("dave", "alice", "new conversation", time.Second),
	})

	summaries := engine.Conversations(context.Background())
	req.Len(summaries, 1)
	req.Equal("dave", summaries[0].PeerID)
	req.Equal("new conversation", summaries[0].LastMessage)
}

func TestSyncEngine_SelectPeer_LoadsHistoryAndStaysLive(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{rows: []domain.Message{
		msgAt("alice", "bob", "old", time.Second),
	}}
	engine, bus := newTestEngine(store, newFakeProfileStore())
	req.NoError(engine.Login(context.Background(), "alice"))

	timeline, err := engine.SelectPeer(context.Background(), "bob")
	req.NoError(err)
	req.Equal(1, timeline.Len())

	// Live event for the open conversation lands in the timeline
	bus.Publish(context.Background(), event.MessageCreated{
		Message: msgAt("bob", "alice", "fresh", 2*time.Second),
	})
	view := timeline.View()
	req.Len(view, 2)
	req.Equal("fresh", view[1].Content)

	// Another conversation's traffic does not leak in
	bus.Publish(context.Background(), event.MessageCreated{
		Message: msgAt("carol", "alice", "other thread", 3*time.Second),
	})
	req.Equal(2, timeline.Len())
}

func TestSyncEngine_SelectPeer_Guards(t *testing.T) {
	req := require.New(t)
	engine, _ := newTestEngine(&fakeMessageStore{}, newFakeProfileStore())

	_, err := engine.SelectPeer(context.Background(), "bob")
	req.ErrorIs(err, errors.ErrNotLoggedIn)

	req.NoError(engine.Login(context.Background(), "alice"))
	_, err = engine.SelectPeer(context.Background(), "alice")
	req.ErrorIs(err, errors.ErrSelfConversation)
}

func TestSyncEngine_SelectPeer_SwitchingStopsOldTimeline(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	engine, bus := newTestEngine(store, newFakeProfileStore())
	req.NoError(engine.Login(context.Background(), "alice"))

	bobTimeline, err := engine.SelectPeer(context.Background(), "bob")
	req.NoError(err)
	_, err = engine.SelectPeer(context.Background(), "carol")
	req.NoError(err)

	// When: bob's conversation keeps moving after the switch
	bus.Publish(context.Background(), event.MessageCreated{
		Message: msgAt("bob", "alice", "too late", time.Second),
	})

	// Then: the abandoned timeline no longer receives anything
	req.Equal(0, bobTimeline.Len())
}

func TestSyncEngine_SelectPeer_StaleFetchDiscarded(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	engine, _ := newTestEngine(store, newFakeProfileStore())
	req.NoError(engine.Login(context.Background(), "alice"))

	// The selection changes while the bulk fetch is in flight
	selected := false
	store.onFetch = func() {
		if !selected {
			selected = true
			engine.ClearPeer()
		}
	}

	_, err := engine.SelectPeer(context.Background(), "bob")
	req.ErrorIs(err, errors.ErrStaleSelection)
}

func TestSyncEngine_FeedGapTriggersBulkReload(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	engine, bus := newTestEngine(store, newFakeProfileStore())
	req.NoError(engine.Login(context.Background(), "alice"))

	timeline, err := engine.SelectPeer(context.Background(), "bob")
	req.NoError(err)
	req.Equal(0, timeline.Len())

	// Given: messages committed while the feed was down
	store.setRows([]domain.Message{
		msgAt("bob", "alice", "missed during outage", time.Second),
	})

	// When: the pump signals the gap after reconnecting
	bus.NotifyGap(context.Background())

	// Then: both projections converge on the refetched state
	req.Eventually(func() bool {
		return timeline.Len() == 1
	}, time.Second, 10*time.Millisecond)
	req.Eventually(func() bool {
		return len(engine.Conversations(context.Background())) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSyncEngine_Logout_TearsDownSubscriptions(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{}
	engine, bus := newTestEngine(store, newFakeProfileStore())

	req.NoError(engine.Login(context.Background(), "alice"))
	_, err := engine.SelectPeer(context.Background(), "bob")
	req.NoError(err)
	req.Equal(2, bus.SubscriberCount())

	engine.Logout()
	req.Equal(0, bus.SubscriberCount())
	req.Empty(engine.CurrentUser())
	req.Nil(engine.Conversations(context.Background()))

	// Safe to call twice
	engine.Logout()
}

func TestSyncEngine_ReLoginReplacesSession(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{rows: []domain.Message{
		msgAt("alice", "bob", "alice history", time.Second),
		msgAt("zoe", "carol", "zoe history", 2*time.Second),
	}}
	engine, bus := newTestEngine(store, newFakeProfileStore())

	req.NoError(engine.Login(context.Background(), "alice"))
	req.NoError(engine.Login(context.Background(), "zoe"))

	req.Equal("zoe", engine.CurrentUser())
	req.Equal(1, bus.SubscriberCount(), "old session subscription must be gone")

	summaries := engine.Conversations(context.Background())
	req.Len(summaries, 1)
	req.Equal("carol", summaries[0].PeerID)
}

func TestSyncEngine_KnownPeers(t *testing.T) {
	req := require.New(t)
	store := &fakeMessageStore{rows: []domain.Message{
		msgAt("alice", "bob", "x", time.Second),
		msgAt("carol", "alice", "y", 2*time.Second),
	}}
	engine, _ := newTestEngine(store, newFakeProfileStore())

	req.Nil(engine.KnownPeers())
	req.NoError(engine.Login(context.Background(), "alice"))
	req.ElementsMatch([]string{"bob", "carol"}, engine.KnownPeers())
}
