// Package event defines the domain events delivered by the change-feed.
// Events are facts about committed rows; delivery is at least once and
// unordered across conversations, so consumers must deduplicate.
package event

import (
	"time"

	"pingly/domain"
)

type DomainEvent interface {
	Key() domain.ConversationKey
}

// MessageCreated is emitted once a message row is committed to the store.
type MessageCreated struct {
	Message domain.Message
}

func (e MessageCreated) Key() domain.ConversationKey {
	return e.Message.Key()
}

// MessageUpdated is emitted when an existing row changes. The feed may
// replay it; projections apply it through the same monotonic merge path
// as inserts.
type MessageUpdated struct {
	Message domain.Message
}

func (e MessageUpdated) Key() domain.ConversationKey {
	return e.Message.Key()
}

// FeedInterrupted signals that the underlying feed connection was lost and
// re-established: events may be missing. Consumers must re-run a bulk load
// rather than trust ingest alone. Its key is zero; the bus delivers it to
// every subscription.
type FeedInterrupted struct {
	At time.Time
}

func (e FeedInterrupted) Key() domain.ConversationKey {
	return domain.ConversationKey{}
}
