package client

import (
	"context"
	"time"

	pb "pingly/proto/chat"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"pingly/domain"
	"pingly/domain/event"
	"pingly/errors"
)

// FeedClient is the remote side of the sync engine: message store,
// profile store and realtime feed source, all over one connection.
// It carries the session token and stamps it on every call.
type FeedClient struct {
	client pb.ChatServiceClient
	userID string
	token  string
}

func NewFeedClient(conn *grpc.ClientConn, userID, token string) *FeedClient {
	return &FeedClient{client: pb.NewChatServiceClient(conn), userID: userID, token: token}
}

func (c *FeedClient) authContext(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+c.token)
}

// CreateMessage posts a message. The server assigns the ID and
// timestamp; the returned message is the authoritative record.
func (c *FeedClient) CreateMessage(ctx context.Context, _, receiverID, content string) (domain.Message, error) {
	response, err := c.client.PostMessage(c.authContext(ctx), &pb.PostMessageRequest{
		ReceiverId: receiverID,
		Content:    content,
	})
	if err != nil {
		return domain.Message{}, errors.NewTransport("post message", err)
	}
	return toMessage(response.GetMessage())
}

func (c *FeedClient) FetchConversation(ctx context.Context, key domain.ConversationKey) ([]domain.Message, error) {
	response, err := c.client.FetchConversation(c.authContext(ctx), &pb.FetchConversationRequest{
		PeerId: key.Peer(c.userID),
	})
	if err != nil {
		return nil, errors.NewTransport("fetch conversation", err)
	}
	return toMessages(response.GetMessages())
}

func (c *FeedClient) FetchAllMessages(ctx context.Context, _ string) ([]domain.Message, error) {
	response, err := c.client.FetchAllMessages(c.authContext(ctx), &pb.FetchAllMessagesRequest{})
	if err != nil {
		return nil, errors.NewTransport("fetch all messages", err)
	}
	return toMessages(response.GetMessages())
}

func (c *FeedClient) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	response, err := c.client.GetProfile(c.authContext(ctx), &pb.GetProfileRequest{UserId: id})
	if err != nil {
		return domain.Profile{}, errors.NewTransport("get profile", err)
	}
	return toProfile(response.GetProfile()), nil
}

func (c *FeedClient) SearchProfiles(ctx context.Context, query string, excludeIDs []string) ([]domain.Profile, error) {
	response, err := c.client.SearchProfiles(c.authContext(ctx), &pb.SearchProfilesRequest{
		Query:      query,
		ExcludeIds: excludeIDs,
	})
	if err != nil {
		return nil, errors.NewTransport("search profiles", err)
	}
	return lo.Map(response.GetProfiles(), func(p *pb.ProfileRecord, _ int) domain.Profile {
		return toProfile(p)
	}), nil
}

// Open subscribes to the caller's realtime feed. The returned channel
// is closed when the stream breaks; the feed pump reconnects and
// signals the gap.
func (c *FeedClient) Open(ctx context.Context, _ string) (<-chan event.DomainEvent, error) {
	stream, err := c.client.Subscribe(c.authContext(ctx), &pb.SubscribeRequest{})
	if err != nil {
		return nil, errors.NewTransport("subscribe", err)
	}

	events := make(chan event.DomainEvent)
	go func() {
		defer close(events)
		for {
			feedEvent, err := stream.Recv()
			if err != nil {
				return
			}
			evt, ok := toDomainEvent(feedEvent)
			if !ok {
				continue
			}
			select {
			case events <- evt:
			case <-ctx.Done():
				return
			}
		}
	}()
	return events, nil
}

func toDomainEvent(feedEvent *pb.FeedEvent) (event.DomainEvent, bool) {
	message, err := toMessage(feedEvent.GetMessage())
	if err != nil {
		return nil, false
	}
	switch feedEvent.GetKind() {
	case pb.FeedEvent_KIND_INSERT:
		return event.MessageCreated{Message: message}, true
	case pb.FeedEvent_KIND_UPDATE:
		return event.MessageUpdated{Message: message}, true
	default:
		return nil, false
	}
}

func toMessage(record *pb.MessageRecord) (domain.Message, error) {
	parsedID, err := uuid.Parse(record.GetId())
	if err != nil {
		return domain.Message{}, err
	}
	createdAt := time.Time{}
	if record.GetCreatedAt() != nil {
		createdAt = record.GetCreatedAt().AsTime()
	}
	return domain.Message{
		ID:         parsedID,
		SenderID:   record.GetSenderId(),
		ReceiverID: record.GetReceiverId(),
		Content:    record.GetContent(),
		CreatedAt:  createdAt,
	}, nil
}

func toMessages(records []*pb.MessageRecord) ([]domain.Message, error) {
	messages := make([]domain.Message, 0, len(records))
	for _, record := range records {
		message, err := toMessage(record)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func toProfile(record *pb.ProfileRecord) domain.Profile {
	return domain.Profile{
		ID:       record.GetId(),
		Username: record.GetUsername(),
		Email:    record.GetEmail(),
	}
}
