package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	pb "pingly/proto/chat"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/timestamppb"

	"pingly/auth"
	"pingly/domain"
	"pingly/domain/event"
	"pingly/errors"
	"pingly/feed"
	"pingly/repositories"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	messages             repositories.IMessageRepository
	profiles             repositories.IProfileRepository
	bus                  *feed.Bus
	connectionBufferSize int
	log                  *slog.Logger
}

func NewChatServer(log *slog.Logger, messages repositories.IMessageRepository,
	profiles repositories.IProfileRepository, bus *feed.Bus, connectionBufferSize int) *ChatServer {
	return &ChatServer{
		messages:             messages,
		profiles:             profiles,
		bus:                  bus,
		connectionBufferSize: connectionBufferSize,
		log:                  log,
	}
}

// PostMessage persists the message, then publishes it on the server bus.
// Both participants, the sender included, see it arrive on their
// Subscribe stream: a single source of truth for IDs, timestamps and order.
func (s *ChatServer) PostMessage(ctx context.Context, req *pb.PostMessageRequest) (*pb.PostMessageResponse, error) {
	message := domain.Message{
		ID:         uuid.New(),
		SenderID:   auth.UserID(ctx),
		ReceiverID: req.GetReceiverId(),
		Content:    req.GetContent(),
		CreatedAt:  time.Now().UTC(),
	}
	if err := message.Validate(); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	if err := s.messages.StoreMessage(message); err != nil {
		return nil, errors.MapToGRPCError(err)
	}

	s.bus.Publish(ctx, event.MessageCreated{Message: message})

	return &pb.PostMessageResponse{Message: lo.ToPtr(toMessageRecord(message))}, nil
}

// FetchConversation returns the caller's history with one peer, oldest first.
func (s *ChatServer) FetchConversation(ctx context.Context, req *pb.FetchConversationRequest) (*pb.FetchConversationResponse, error) {
	userID := auth.UserID(ctx)
	if req.GetPeerId() == userID {
		return nil, errors.MapToGRPCError(errors.ErrSelfConversation)
	}
	key := domain.NewConversationKey(userID, req.GetPeerId())
	messages, err := s.messages.FetchConversation(key)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.FetchConversationResponse{Messages: toMessageRecords(messages)}, nil
}

// FetchAllMessages returns every message involving the caller.
func (s *ChatServer) FetchAllMessages(ctx context.Context, _ *pb.FetchAllMessagesRequest) (*pb.FetchAllMessagesResponse, error) {
	messages, err := s.messages.FetchAllMessages(auth.UserID(ctx))
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.FetchAllMessagesResponse{Messages: toMessageRecords(messages)}, nil
}

// SearchProfiles matches usernames by substring. The caller is always
// excluded from its own results.
func (s *ChatServer) SearchProfiles(ctx context.Context, req *pb.SearchProfilesRequest) (*pb.SearchProfilesResponse, error) {
	excluded := append(req.GetExcludeIds(), auth.UserID(ctx))
	profiles, err := s.profiles.SearchProfiles(ctx, req.GetQuery(), excluded)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	records := lo.Map(profiles, func(p domain.Profile, _ int) *pb.ProfileRecord {
		return lo.ToPtr(toProfileRecord(p))
	})
	return &pb.SearchProfilesResponse{Profiles: records}, nil
}

func (s *ChatServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	profile, err := s.profiles.GetProfile(req.GetUserId())
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetProfileResponse{Profile: lo.ToPtr(toProfileRecord(profile))}, nil
}

// Subscribe opens the caller's realtime feed. A dedicated Sink is
// registered on the bus for the lifetime of the stream; the deferred
// close prevents leaking subscriptions when the client goes away.
func (s *ChatServer) Subscribe(_ *pb.SubscribeRequest, stream pb.ChatService_SubscribeServer) error {
	userID := auth.UserID(stream.Context())
	sink := NewGrpcSink(s.connectionBufferSize)
	subscription := s.bus.Subscribe(feed.MatchUser(userID), sink)
	defer subscription.Close()

	for {
		select {
		case <-stream.Context().Done():
			s.log.Info(fmt.Sprintf("Client %s disconnected from feed", userID))
			return nil
		case evt := <-sink.Events:
			feedEvent, ok := toFeedEvent(evt)
			if !ok {
				continue
			}
			if err := stream.Send(feedEvent); err != nil {
				s.log.Error("failed to push event to stream",
					"user_id", userID,
					"error", err)
				return err
			}
		}
	}
}

func toFeedEvent(e event.DomainEvent) (*pb.FeedEvent, bool) {
	switch evt := e.(type) {
	case event.MessageCreated:
		return &pb.FeedEvent{
			Kind:    pb.FeedEvent_KIND_INSERT,
			Message: lo.ToPtr(toMessageRecord(evt.Message)),
		}, true
	case event.MessageUpdated:
		return &pb.FeedEvent{
			Kind:    pb.FeedEvent_KIND_UPDATE,
			Message: lo.ToPtr(toMessageRecord(evt.Message)),
		}, true
	default:
		return nil, false
	}
}

func toMessageRecord(message domain.Message) pb.MessageRecord {
	return pb.MessageRecord{
		Id:         message.ID.String(),
		SenderId:   message.SenderID,
		ReceiverId: message.ReceiverID,
		Content:    message.Content,
		CreatedAt:  timestamppb.New(message.CreatedAt),
	}
}

func toMessageRecords(messages []domain.Message) []*pb.MessageRecord {
	return lo.Map(messages, func(m domain.Message, _ int) *pb.MessageRecord {
		return lo.ToPtr(toMessageRecord(m))
	})
}

func toProfileRecord(profile domain.Profile) pb.ProfileRecord {
	return pb.ProfileRecord{
		Id:       profile.ID,
		Username: profile.Username,
		Email:    profile.Email,
	}
}
