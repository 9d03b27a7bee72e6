// Package feed multiplexes one logical change-feed connection to many
// scoped subscriptions. It owns delivery order and gap signalling;
// deduplication is the projections' job, not the bus's.
package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pingly/contract"
	"pingly/domain"
	"pingly/domain/event"
)

// Predicate decides whether a subscription wants an event. A nil
// predicate matches everything.
type Predicate func(e event.DomainEvent) bool

// MatchConversation scopes a subscription to exactly one conversation.
// This is the filter that keeps a shared feed from leaking messages
// across open threads.
func MatchConversation(key domain.ConversationKey) Predicate {
	return func(e event.DomainEvent) bool {
		return e.Key() == key
	}
}

// MatchUser scopes a subscription to any message involving one user.
func MatchUser(userID string) Predicate {
	return func(e event.DomainEvent) bool {
		return e.Key().Contains(userID)
	}
}

// Bus fans feed events out to registered subscriptions, in the order
// they were received from the feed. Delivery is at least once: a
// reconnect may replay events, and consumers are expected to treat
// duplicates as normal traffic.
type Bus struct {
	mu     sync.RWMutex
	log    *slog.Logger
	nextID uint64
	subs   map[uint64]*Subscription
}

func NewBus(log *slog.Logger) *Bus {
	return &Bus{
		log:  log,
		subs: make(map[uint64]*Subscription),
	}
}

// Subscription is a closable registration on the bus. Closing it is
// idempotent and releases the slot immediately; events dispatched after
// Close are not delivered.
type Subscription struct {
	id   uint64
	bus  *Bus
	pred Predicate
	sink contract.EventSink
	once sync.Once
}

// Close unregisters the subscription from the bus.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.subs, s.id)
		s.bus.mu.Unlock()
	})
}

// Subscribe registers a sink for events matching pred. Multiple
// subscriptions share the one underlying feed connection; the bus
// multiplexes.
func (b *Bus) Subscribe(pred Predicate, sink contract.EventSink) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	sub := &Subscription{id: b.nextID, bus: b, pred: pred, sink: sink}
	b.subs[sub.id] = sub
	return sub
}

// SubscriberCount reports the number of open subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Publish delivers one event to every matching subscription,
// synchronously and in call order. A sink error is logged and does not
// stop delivery to the remaining sinks: a malformed row for one
// consumer must not starve the others.
func (b *Bus) Publish(ctx context.Context, e event.DomainEvent) {
	b.mu.RLock()
	targets := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if sub.pred == nil || sub.pred(e) {
			targets = append(targets, sub)
		}
	}
	b.mu.RUnlock()

	for _, sub := range targets {
		if err := sub.sink.Consume(ctx, e); err != nil {
			b.log.Warn("sink rejected event", "subscription", sub.id, "error", err)
		}
	}
}

// NotifyGap tells every subscription that the feed reconnected and
// events may have been missed, so bulk state must be reloaded. The gap
// event bypasses predicates: a gap concerns every consumer.
func (b *Bus) NotifyGap(ctx context.Context) {
	gap := event.FeedInterrupted{At: time.Now().UTC()}

	b.mu.RLock()
	targets := make([]*Subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		targets = append(targets, sub)
	}
	b.mu.RUnlock()

	for _, sub := range targets {
		if err := sub.sink.Consume(ctx, gap); err != nil {
			b.log.Warn("sink rejected gap notice", "subscription", sub.id, "error", err)
		}
	}
}
