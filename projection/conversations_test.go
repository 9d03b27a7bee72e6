package projection

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"pingly/domain"
)

func TestConversationIndex_Ingest_OneSummaryPerPeer(t *testing.T) {
	req := require.New(t)
	index := NewConversationIndex("alice")

	// Given: several exchanges with two peers
	rows := []domain.Message{
		message("alice", "bob", "hi bob", 1*time.Second),
		message("bob", "alice", "hi alice", 2*time.Second),
		message("carol", "alice", "ping", 3*time.Second),
		message("alice", "bob", "latest to bob", 4*time.Second),
	}
	req.NoError(index.Load(rows))

	// Then: one entry per peer, carrying the most recent message
	snapshot := index.Snapshot()
	req.Len(snapshot, 2)
	req.Equal("bob", snapshot[0].PeerID)
	req.Equal("latest to bob", snapshot[0].LastMessage)
	req.Equal("carol", snapshot[1].PeerID)
	req.Equal("ping", snapshot[1].LastMessage)
}

func TestConversationIndex_Ingest_StaleMessageDoesNotRegress(t *testing.T) {
	req := require.New(t)
	index := NewConversationIndex("alice")

	newer := message("bob", "alice", "newer", 10*time.Second)
	older := message("alice", "bob", "older", 1*time.Second)

	changed, err := index.Ingest(newer)
	req.NoError(err)
	req.True(changed)

	// When: an older message of the same conversation arrives late
	changed, err = index.Ingest(older)
	req.NoError(err)
	req.False(changed)

	req.Equal("newer", index.Snapshot()[0].LastMessage)
}

func TestConversationIndex_Ingest_Confluence(t *testing.T) {
	req := require.New(t)

	// Given: one user's full history across three peers
	var rows []domain.Message
	for i, peer := range []string{"bob", "carol", "dave"} {
		for j := 0; j < 4; j++ {
			offset := time.Duration(i*7+j*3) * time.Second
			if j%2 == 0 {
				rows = append(rows, message("alice", peer, "out", offset))
			} else {
				rows = append(rows, message(peer, "alice", "in", offset))
			}
		}
	}

	reference := NewConversationIndex("alice")
	req.NoError(reference.Load(rows))

	// When: the same rows are folded in shuffled order with redeliveries
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 5; trial++ {
		shuffled := append([]domain.Message(nil), rows...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		shuffled = append(shuffled, shuffled[1], shuffled[5])

		index := NewConversationIndex("alice")
		for _, row := range shuffled {
			_, err := index.Ingest(row)
			req.NoError(err)
		}

		// Then: load-then-live and live-then-load converge identically
		req.Equal(reference.Snapshot(), index.Snapshot())
	}
}

func TestConversationIndex_Ingest_EqualTimestampTieBreak(t *testing.T) {
	req := require.New(t)

	// Given: two messages with the same peer and identical timestamps
	a := message("alice", "bob", "a", 0)
	b := message("bob", "alice", "b", 0)

	forward := NewConversationIndex("alice")
	for _, m := range []domain.Message{a, b} {
		_, err := forward.Ingest(m)
		req.NoError(err)
	}
	backward := NewConversationIndex("alice")
	for _, m := range []domain.Message{b, a} {
		_, err := backward.Ingest(m)
		req.NoError(err)
	}

	// Then: the winner does not depend on arrival order
	req.Equal(forward.Snapshot(), backward.Snapshot())
}

func TestConversationIndex_Ingest_UpdateSameIDReplacesContent(t *testing.T) {
	req := require.New(t)
	index := NewConversationIndex("alice")

	original := message("alice", "bob", "typo", 0)
	_, err := index.Ingest(original)
	req.NoError(err)

	edited := original
	edited.Content = "fixed"
	changed, err := index.Ingest(edited)
	req.NoError(err)
	req.True(changed)
	req.Equal("fixed", index.Snapshot()[0].LastMessage)
}

func TestConversationIndex_Ingest_UninvolvedMessageIgnored(t *testing.T) {
	req := require.New(t)
	index := NewConversationIndex("alice")

	changed, err := index.Ingest(message("bob", "carol", "not for alice", 0))
	req.NoError(err)
	req.False(changed)
	req.Empty(index.Snapshot())
}

func TestConversationIndex_Ingest_NeverListsSelfAsPeer(t *testing.T) {
	req := require.New(t)
	index := NewConversationIndex("alice")

	// Forged row: validation rejects sender == receiver before the
	// peer derivation could even run.
	degenerate := domain.Message{
		ID:         uuid.New(),
		SenderID:   "alice",
		ReceiverID: "alice",
		Content:    "note to self",
		CreatedAt:  baseTime,
	}
	_, err := index.Ingest(degenerate)
	req.Error(err)

	for _, summary := range index.Snapshot() {
		req.NotEqual("alice", summary.PeerID)
	}
}

func TestConversationIndex_Snapshot_MostRecentFirst(t *testing.T) {
	req := require.New(t)
	index := NewConversationIndex("alice")

	req.NoError(index.Load([]domain.Message{
		message("bob", "alice", "old", 1*time.Second),
		message("carol", "alice", "recent", 9*time.Second),
		message("dave", "alice", "middle", 5*time.Second),
	}))

	snapshot := index.Snapshot()
	req.Equal([]string{"carol", "dave", "bob"}, []string{
		snapshot[0].PeerID, snapshot[1].PeerID, snapshot[2].PeerID,
	})
}

func TestConversationIndex_AttachProfile(t *testing.T) {
	req := require.New(t)
	index := NewConversationIndex("alice")

	_, err := index.Ingest(message("bob", "alice", "hello", 0))
	req.NoError(err)

	// Unknown peers are ignored
	index.AttachProfile(domain.Profile{ID: "stranger", Username: "nobody"})
	// Known peers get their profile attached
	index.AttachProfile(domain.Profile{ID: "bob", Username: "bob_real"})

	snapshot := index.Snapshot()
	req.Len(snapshot, 1)
	req.Equal("bob_real", snapshot[0].Profile.Username)

	// And the attachment survives later message upserts
	_, err = index.Ingest(message("bob", "alice", "again", time.Second))
	req.NoError(err)
	req.Equal("bob_real", index.Snapshot()[0].Profile.Username)
}

func TestConversationIndex_PeerIDs(t *testing.T) {
	req := require.New(t)
	index := NewConversationIndex("alice")

	req.NoError(index.Load([]domain.Message{
		message("bob", "alice", "x", 0),
		message("carol", "alice", "y", time.Second),
	}))

	req.ElementsMatch([]string{"bob", "carol"}, index.PeerIDs())
}
