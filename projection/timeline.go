// Package projection builds local read models from observed events.
// Handles ordering, deduplication, and aggregation. It does not emit
// events or touch the network.
package projection

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"pingly/domain"
	"pingly/domain/event"
)

// Timeline is the ordered message log of one two-party conversation.
// It merges an initial bulk fetch with live feed events through a single
// reconciliation path: entries stay sorted by (CreatedAt, ID) and each
// message id survives at most once, whatever order or multiplicity the
// feed delivers.
//
// All mutations on one instance are serialized; reads observe a
// consistent point-in-time state.
type Timeline struct {
	mu      sync.RWMutex
	key     domain.ConversationKey
	entries []domain.Message
	byID    map[uuid.UUID]int
}

func NewTimeline(key domain.ConversationKey) *Timeline {
	return &Timeline{
		key:  key,
		byID: make(map[uuid.UUID]int),
	}
}

// Key returns the conversation this timeline belongs to.
func (t *Timeline) Key() domain.ConversationKey {
	return t.key
}

// Load replaces the current state with the result of a bulk fetch. The
// rows may be unordered and may contain duplicates; they go through the
// same merge rules as live events. A malformed row rejects the whole
// load and leaves the previous state untouched.
func (t *Timeline) Load(rows []domain.Message) error {
	staged := NewTimeline(t.key)
	for _, row := range rows {
		if _, err := staged.Ingest(row); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = staged.entries
	t.byID = staged.byID
	return nil
}

// Ingest merges one message. It reports whether the state changed:
//   - a message of another conversation is a no-op (the shared feed
//     delivers events for all conversations),
//   - a known id with the same timestamp and content is a no-op
//     (at-least-once delivery),
//   - a known id with a newer timestamp or changed content amends the
//     entry in place (update events),
//   - anything malformed is rejected without touching the state.
func (t *Timeline) Ingest(msg domain.Message) (bool, error) {
	if err := msg.Validate(); err != nil {
		return false, err
	}
	if !t.key.Matches(msg) {
		return false, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if idx, ok := t.byID[msg.ID]; ok {
		return t.amend(idx, msg), nil
	}

	pos := sort.Search(len(t.entries), func(i int) bool {
		return msg.Before(t.entries[i])
	})
	t.entries = append(t.entries, domain.Message{})
	copy(t.entries[pos+1:], t.entries[pos:])
	t.entries[pos] = msg
	for i := pos; i < len(t.entries); i++ {
		t.byID[t.entries[i].ID] = i
	}
	return true, nil
}

// amend applies an update event for an already-known id. A replay with an
// older timestamp must never resurrect stale content.
func (t *Timeline) amend(idx int, msg domain.Message) bool {
	current := t.entries[idx]
	if msg.CreatedAt.Before(current.CreatedAt) {
		return false
	}
	if current.Content == msg.Content && current.CreatedAt.Equal(msg.CreatedAt) {
		return false
	}
	t.entries[idx] = msg
	if !current.CreatedAt.Equal(msg.CreatedAt) {
		sort.Slice(t.entries, func(i, j int) bool {
			return t.entries[i].Before(t.entries[j])
		})
		for i, e := range t.entries {
			t.byID[e.ID] = i
		}
	}
	return true
}

// View returns the current merged state, oldest first.
func (t *Timeline) View() []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]domain.Message, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len reports the number of entries.
func (t *Timeline) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Consume lets a Timeline sit directly on the feed bus as an EventSink.
// Out-of-order and duplicate input is expected traffic, never an error;
// only malformed rows are reported.
func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageCreated:
		_, err := t.Ingest(evt.Message)
		return err
	case event.MessageUpdated:
		_, err := t.Ingest(evt.Message)
		return err
	}
	return nil
}
