//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"pingly/domain"
	"pingly/domain/event"
)

// EventSink receives domain events from the feed bus. Implementations
// must be cheap and non-blocking; the bus dispatches synchronously in
// feed order.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IMessageStore is the hosted message table: bulk fetches plus the send
// operation. Fetch results may contain duplicates and arrive unordered;
// the projections reconcile.
type IMessageStore interface {
	CreateMessage(ctx context.Context, senderID, receiverID, content string) (domain.Message, error)
	FetchConversation(ctx context.Context, key domain.ConversationKey) ([]domain.Message, error)
	FetchAllMessages(ctx context.Context, userID string) ([]domain.Message, error)
}

// IProfileStore is the hosted profiles table.
type IProfileStore interface {
	GetProfile(ctx context.Context, id string) (domain.Profile, error)
	SearchProfiles(ctx context.Context, query string, excludeIDs []string) ([]domain.Profile, error)
}

// IFeedSource is one underlying change-feed connection scoped to a user.
// Open blocks until connected and returns the delivery channel; the
// channel closes when the connection drops or ctx is canceled.
type IFeedSource interface {
	Open(ctx context.Context, userID string) (<-chan event.DomainEvent, error)
}

type WorkerName string

// Worker doesn't protect itself.
// Supervision, restart, and panic recovery live elsewhere.
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision during worker lifecycle events,
// avoiding manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
