package projection

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pingly/domain"
	"pingly/domain/event"
)

// ConversationSummary is the sidebar entry for one counterparty: the
// peer plus the most recent message exchanged with them.
type ConversationSummary struct {
	PeerID        string
	Profile       domain.Profile
	LastMessage   string
	LastMessageAt time.Time
	LastMessageID uuid.UUID
}

// ConversationIndex derives, from the raw message stream of one user,
// at most one summary per counterparty. The upsert rule is idempotent
// and order-independent: folding the same rows through Load and Ingest
// in any order converges to the same state, which is what makes the
// race between the initial bulk fetch and the first live event safe.
type ConversationIndex struct {
	mu          sync.RWMutex
	currentUser string
	peers       map[string]ConversationSummary
}

func NewConversationIndex(currentUser string) *ConversationIndex {
	return &ConversationIndex{
		currentUser: currentUser,
		peers:       make(map[string]ConversationSummary),
	}
}

// User returns the owner of this index.
func (c *ConversationIndex) User() string {
	return c.currentUser
}

// Load folds a bulk fetch of historical rows into the index. The rows
// may hold many messages per peer in any order; each goes through the
// same upsert rule as a live event, so a fetch completing after live
// ingestion has already started cannot clobber newer state.
func (c *ConversationIndex) Load(rows []domain.Message) error {
	for _, row := range rows {
		if _, err := c.Ingest(row); err != nil {
			return err
		}
	}
	return nil
}

// Ingest folds one message in and reports whether the index changed.
// Messages not involving the current user are ignored; a degenerate row
// that would surface the user as their own peer is discarded.
func (c *ConversationIndex) Ingest(msg domain.Message) (bool, error) {
	if err := msg.Validate(); err != nil {
		return false, err
	}
	if !msg.Involves(c.currentUser) {
		return false, nil
	}
	peerID := msg.Key().Peer(c.currentUser)
	if peerID == "" || peerID == c.currentUser {
		return false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.peers[peerID]
	if ok {
		// Monotonic update: an out-of-order replay must not resurrect
		// stale content over newer content. Equal timestamps break the
		// tie on message id so the winner does not depend on arrival
		// order; a same-id replay with identical content is a no-op.
		switch {
		case msg.CreatedAt.Before(current.LastMessageAt):
			return false, nil
		case msg.CreatedAt.Equal(current.LastMessageAt):
			if msg.ID == current.LastMessageID {
				if current.LastMessage == msg.Content {
					return false, nil
				}
			} else if msg.ID.String() < current.LastMessageID.String() {
				return false, nil
			}
		}
	}

	summary := ConversationSummary{
		PeerID:        peerID,
		Profile:       current.Profile,
		LastMessage:   msg.Content,
		LastMessageAt: msg.CreatedAt,
		LastMessageID: msg.ID,
	}
	c.peers[peerID] = summary
	return true, nil
}

// AttachProfile stores the out-of-band profile for a known peer. It is
// a no-op for peers the index has not seen.
func (c *ConversationIndex) AttachProfile(profile domain.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if summary, ok := c.peers[profile.ID]; ok {
		summary.Profile = profile
		c.peers[profile.ID] = summary
	}
}

// PeerIDs returns the current key set, unordered. The directory uses it
// to exclude known peers from search results.
func (c *ConversationIndex) PeerIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.peers))
	for id := range c.peers {
		out = append(out, id)
	}
	return out
}

// Snapshot returns one summary per peer, most recent exchange first,
// ties broken by ascending peer id for a stable order.
func (c *ConversationIndex) Snapshot() []ConversationSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]ConversationSummary, 0, len(c.peers))
	for _, summary := range c.peers {
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastMessageAt.Equal(out[j].LastMessageAt) {
			return out[i].LastMessageAt.After(out[j].LastMessageAt)
		}
		return out[i].PeerID < out[j].PeerID
	})
	return out
}

// Consume implements the feed bus EventSink.
func (c *ConversationIndex) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.MessageCreated:
		_, err := c.Ingest(evt.Message)
		return err
	case event.MessageUpdated:
		_, err := c.Ingest(evt.Message)
		return err
	}
	return nil
}
