package services

import (
	"context"
	"log/slog"
	"sync"

	"pingly/contract"
	"pingly/domain"
	"pingly/domain/event"
	"pingly/errors"
	"pingly/feed"
	"pingly/projection"
)

// ISyncEngine is the one surface the rest of the application talks to:
// it owns the session, the selected peer, and the wiring between the
// feed bus and the projections.
type ISyncEngine interface {
	Login(ctx context.Context, userID string) error
	Logout()
	SelectPeer(ctx context.Context, peerID string) (*projection.Timeline, error)
	ClearPeer()
	Conversations(ctx context.Context) []projection.ConversationSummary
	KnownPeers() []string
	CurrentUser() string
}

// SyncEngine wires the EventBus to the projections.
//
// Lifecycle: Login opens the index subscription (any message involving
// the user) for the whole session; SelectPeer opens a timeline
// subscription scoped to one conversation and closes the previous one
// first, so successive selections never cross-talk. Every asynchronous
// result is guarded by a selection generation counter: a bulk fetch
// that completes after the user moved on is discarded, not merged.
type SyncEngine struct {
	mu       sync.Mutex
	log      *slog.Logger
	store    contract.IMessageStore
	profiles contract.IProfileStore
	bus      *feed.Bus

	user     string
	index    *projection.ConversationIndex
	indexSub *feed.Subscription

	selectedPeer string
	timeline     *projection.Timeline
	timelineSub  *feed.Subscription
	generation   uint64
}

func NewSyncEngine(log *slog.Logger, store contract.IMessageStore,
	profiles contract.IProfileStore, bus *feed.Bus) *SyncEngine {
	return &SyncEngine{
		log:      log,
		store:    store,
		profiles: profiles,
		bus:      bus,
	}
}

// Login starts a session: it subscribes the conversation index to the
// feed first and only then runs the bulk fetch, so a message committed
// between the two is either in the fetch or already folded in — the
// upsert rule converges either way.
func (e *SyncEngine) Login(ctx context.Context, userID string) error {
	e.mu.Lock()
	if e.user != "" {
		e.mu.Unlock()
		e.Logout()
		e.mu.Lock()
	}
	e.user = userID
	e.index = projection.NewConversationIndex(userID)
	e.generation++
	gen := e.generation

	index := e.index
	e.indexSub = e.bus.Subscribe(feed.MatchUser(userID), &gapAwareSink{
		inner: index,
		onGap: func(gapCtx context.Context) {
			e.reloadIndex(gapCtx, index)
		},
	})
	e.mu.Unlock()

	rows, err := e.store.FetchAllMessages(ctx, userID)
	if err != nil {
		e.Logout()
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.generation || e.index != index {
		return errors.ErrStaleSelection
	}
	return index.Load(rows)
}

// Logout tears the session down: both subscriptions are closed and all
// derived state is dropped. Safe to call twice.
func (e *SyncEngine) Logout() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	if e.timelineSub != nil {
		e.timelineSub.Close()
		e.timelineSub = nil
	}
	if e.indexSub != nil {
		e.indexSub.Close()
		e.indexSub = nil
	}
	e.timeline = nil
	e.index = nil
	e.selectedPeer = ""
	e.user = ""
}

// SelectPeer opens the conversation with peerID: prior subscription
// closed, bulk fetch, load, then a feed subscription scoped to the
// conversation key. The returned timeline stays live until the next
// SelectPeer, ClearPeer, or Logout.
func (e *SyncEngine) SelectPeer(ctx context.Context, peerID string) (*projection.Timeline, error) {
	e.mu.Lock()
	if e.user == "" {
		e.mu.Unlock()
		return nil, errors.ErrNotLoggedIn
	}
	if peerID == e.user {
		e.mu.Unlock()
		return nil, errors.ErrSelfConversation
	}

	e.generation++
	gen := e.generation
	if e.timelineSub != nil {
		e.timelineSub.Close()
		e.timelineSub = nil
	}
	key := domain.NewConversationKey(e.user, peerID)
	timeline := projection.NewTimeline(key)
	e.timeline = timeline
	e.selectedPeer = peerID
	e.mu.Unlock()

	// Bulk fetch happens outside the lock; the generation decides
	// whether its result is still wanted when it lands.
	rows, err := e.store.FetchConversation(ctx, key)

	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.generation {
		return nil, errors.ErrStaleSelection
	}
	if err != nil {
		return nil, err
	}
	if err := timeline.Load(rows); err != nil {
		return nil, err
	}

	e.timelineSub = e.bus.Subscribe(feed.MatchConversation(key), &gapAwareSink{
		inner: timeline,
		onGap: func(gapCtx context.Context) {
			e.reloadTimeline(gapCtx, gen, timeline)
		},
	})
	return timeline, nil
}

// ClearPeer deselects the current conversation without ending the
// session.
func (e *SyncEngine) ClearPeer() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	if e.timelineSub != nil {
		e.timelineSub.Close()
		e.timelineSub = nil
	}
	e.timeline = nil
	e.selectedPeer = ""
}

// Conversations returns the live sidebar, most recent exchange first,
// with peer profiles resolved out-of-band and cached on the index.
func (e *SyncEngine) Conversations(ctx context.Context) []projection.ConversationSummary {
	e.mu.Lock()
	index := e.index
	e.mu.Unlock()
	if index == nil {
		return nil
	}

	snapshot := index.Snapshot()
	for i, summary := range snapshot {
		if summary.Profile.ID != "" {
			continue
		}
		profile, err := e.profiles.GetProfile(ctx, summary.PeerID)
		if err != nil {
			e.log.Debug("profile lookup failed", "peer_id", summary.PeerID, "error", err)
			continue
		}
		index.AttachProfile(profile)
		snapshot[i].Profile = profile
	}
	return snapshot
}

// KnownPeers returns the ids the index currently tracks; the directory
// excludes them from search results.
func (e *SyncEngine) KnownPeers() []string {
	e.mu.Lock()
	index := e.index
	e.mu.Unlock()
	if index == nil {
		return nil
	}
	return index.PeerIDs()
}

// CurrentUser returns the logged-in user id, or "" between sessions.
func (e *SyncEngine) CurrentUser() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.user
}

// reloadIndex re-runs the session bulk fetch after a feed gap. The
// index folds the rows through the same upsert rule, so a reload can
// only move summaries forward, never resurrect stale ones. The index
// outlives peer selections; it is stale only once a new session
// replaced it.
func (e *SyncEngine) reloadIndex(ctx context.Context, index *projection.ConversationIndex) {
	rows, err := e.store.FetchAllMessages(ctx, index.User())
	if err != nil {
		e.log.Warn("index reload after feed gap failed", "error", err)
		return
	}
	e.mu.Lock()
	stale := e.index != index
	e.mu.Unlock()
	if stale {
		return
	}
	if err := index.Load(rows); err != nil {
		e.log.Warn("index reload rejected rows", "error", err)
	}
}

// reloadTimeline re-fetches the selected conversation after a feed gap,
// applying the result only if the selection is still current.
func (e *SyncEngine) reloadTimeline(ctx context.Context, gen uint64, timeline *projection.Timeline) {
	rows, err := e.store.FetchConversation(ctx, timeline.Key())
	if err != nil {
		e.log.Warn("timeline reload after feed gap failed", "error", err)
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if gen != e.generation || e.timeline != timeline {
		return
	}
	if err := timeline.Load(rows); err != nil {
		e.log.Warn("timeline reload rejected rows", "error", err)
	}
}

// gapAwareSink routes domain events to the projection and turns a
// FeedInterrupted notice into an asynchronous bulk reload, keeping the
// pump goroutine free of fetch I/O.
type gapAwareSink struct {
	inner contract.EventSink
	onGap func(ctx context.Context)
}

func (s *gapAwareSink) Consume(ctx context.Context, e event.DomainEvent) error {
	if _, ok := e.(event.FeedInterrupted); ok {
		go s.onGap(context.WithoutCancel(ctx))
		return nil
	}
	return s.inner.Consume(ctx, e)
}
