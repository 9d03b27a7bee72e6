//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	pb "pingly/proto/storage"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	"pingly/domain"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	FetchConversation(key domain.ConversationKey) ([]domain.Message, error)
	FetchAllMessages(userID string) ([]domain.Message, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// StoreMessage persists a message in BadgerDB under two keys:
//
//	msg:{conversation}:{timestamp_padded}:{uuid}   primary, one copy per conversation
//	inbox:{user}:{timestamp_padded}:{uuid}         one copy per participant
//
// The 19-digit zero-padded nanosecond timestamp makes a plain prefix scan
// come out in chronological order, and the trailing UUID disambiguates two
// messages landing on the same nanosecond. The inbox copies let a login-time
// bulk load walk a single prefix instead of every conversation the user is in.
func (m MessageRepository) StoreMessage(message domain.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}
	bytes, err := proto.Marshal(lo.ToPtr(fromMessage(message)))
	if err != nil {
		return err
	}
	suffix := fmt.Sprintf("%019d:%s", message.CreatedAt.UnixNano(), message.ID)
	keys := []string{
		fmt.Sprintf("msg:%s:%s", message.Key(), suffix),
		fmt.Sprintf("inbox:%s:%s", message.SenderID, suffix),
		fmt.Sprintf("inbox:%s:%s", message.ReceiverID, suffix),
	}
	return m.db.Update(func(txn *badger.Txn) error {
		for _, key := range keys {
			if err := txn.Set([]byte(key), bytes); err != nil {
				return err
			}
		}
		return nil
	})
}

// FetchConversation returns every message of a conversation, oldest first.
// Ordering falls out of the key layout, no sort needed.
func (m MessageRepository) FetchConversation(key domain.ConversationKey) ([]domain.Message, error) {
	prefix := fmt.Sprintf("msg:%s:", key)
	return m.scanPrefix(prefix)
}

// FetchAllMessages returns every message the user sent or received,
// oldest first, by walking the user's inbox prefix.
func (m MessageRepository) FetchAllMessages(userID string) ([]domain.Message, error) {
	prefix := fmt.Sprintf("inbox:%s:", userID)
	return m.scanPrefix(prefix)
}

func (m MessageRepository) scanPrefix(prefixStr string) ([]domain.Message, error) {
	var byteMessages [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				byteMessages = append(byteMessages, append([]byte(nil), value...))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(byteMessages))
	for _, b := range byteMessages {
		var messagePb pb.StoredMessage
		if err = proto.Unmarshal(b, &messagePb); err != nil {
			return nil, err
		}
		message, err := toMessage(&messagePb)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func fromMessage(message domain.Message) pb.StoredMessage {
	return pb.StoredMessage{
		Id:         message.ID.String(),
		SenderId:   message.SenderID,
		ReceiverId: message.ReceiverID,
		Content:    message.Content,
		At:         message.CreatedAt.UnixNano(),
	}
}

func toMessage(messagePb *pb.StoredMessage) (domain.Message, error) {
	parsedID, err := uuid.Parse(messagePb.Id)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:         parsedID,
		SenderID:   messagePb.SenderId,
		ReceiverID: messagePb.ReceiverId,
		Content:    messagePb.Content,
		CreatedAt:  time.Unix(0, messagePb.At).UTC(),
	}, nil
}
