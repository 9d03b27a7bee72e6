// Package domain contains core concepts of the chat system.
// This file defines Message values and the conversation pairing rules.
// Messages are immutable and validated at the boundary.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pingly/errors"
)

// Message represents an immutable chat message between two users.
// The store assigns ID and CreatedAt at creation; this layer never
// mutates or deletes a message.
type Message struct {
	ID         uuid.UUID
	SenderID   string
	ReceiverID string
	Content    string
	CreatedAt  time.Time
}

// Validate checks the invariants a row must satisfy before it may reach
// a projection. A failing row is rejected whole; partial objects never
// propagate.
func (m Message) Validate() error {
	if m.ID == uuid.Nil {
		return errors.NewValidation("id", "missing message id")
	}
	if strings.TrimSpace(m.SenderID) == "" {
		return errors.NewValidation("sender_id", "missing sender")
	}
	if strings.TrimSpace(m.ReceiverID) == "" {
		return errors.NewValidation("receiver_id", "missing receiver")
	}
	if m.SenderID == m.ReceiverID {
		return errors.ErrSelfConversation
	}
	if strings.TrimSpace(m.Content) == "" {
		return errors.ErrEmptyContent
	}
	if m.CreatedAt.IsZero() {
		return errors.NewValidation("created_at", "missing creation timestamp")
	}
	return nil
}

// Key returns the conversation this message belongs to.
func (m Message) Key() ConversationKey {
	return NewConversationKey(m.SenderID, m.ReceiverID)
}

// Involves reports whether userID is one of the two participants.
func (m Message) Involves(userID string) bool {
	return m.SenderID == userID || m.ReceiverID == userID
}

// Before orders two messages by (CreatedAt, ID). Arrival order is never
// used: the feed does not guarantee it.
func (m Message) Before(other Message) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.Before(other.CreatedAt)
	}
	return strings.Compare(m.ID.String(), other.ID.String()) < 0
}

// ConversationKey identifies a two-party conversation as an unordered
// pair: (A,B) and (B,A) rows normalize to the same key.
type ConversationKey struct {
	low  string
	high string
}

func NewConversationKey(a, b string) ConversationKey {
	if a > b {
		a, b = b, a
	}
	return ConversationKey{low: a, high: b}
}

// IsZero reports whether the key was never assigned participants.
func (k ConversationKey) IsZero() bool {
	return k.low == "" && k.high == ""
}

// Contains reports whether userID is one side of the pair.
func (k ConversationKey) Contains(userID string) bool {
	return k.low == userID || k.high == userID
}

// Peer returns the other side of the pair, or "" when userID is not a
// participant.
func (k ConversationKey) Peer(userID string) string {
	switch userID {
	case k.low:
		return k.high
	case k.high:
		return k.low
	default:
		return ""
	}
}

// Matches reports whether the message belongs to this conversation.
func (k ConversationKey) Matches(m Message) bool {
	return m.Key() == k
}

// String renders a stable representation usable as a storage key prefix.
func (k ConversationKey) String() string {
	return k.low + "|" + k.high
}
