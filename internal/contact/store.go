package contact

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MessageStore persists contact messages.
type MessageStore interface {
	// Insert stores a new message and returns it with the server-assigned
	// ID and CreatedAt populated.
	Insert(ctx context.Context, msg Message) (Message, error)
	// List returns all stored messages, newest first.
	List(ctx context.Context) ([]Message, error)
	// MarkRead flips the is_read flag of one message to true.
	MarkRead(ctx context.Context, id string) error
}

type mongoMessageStore struct {
	coll *mongo.Collection
}

// NewMessageStore returns a MessageStore backed by the contact_messages
// collection of the given database.
func NewMessageStore(db *mongo.Database) MessageStore {
	return &mongoMessageStore{coll: db.Collection(CollectionMessages)}
}

// normalizeForInsert resets every server-owned field before a write. The
// store is the single source of truth for identity, ordering, and read
// state: whatever the caller put in ID, CreatedAt, or IsRead is discarded.
func normalizeForInsert(msg Message, now time.Time) Message {
	msg.ID = bson.ObjectID{}
	msg.CreatedAt = now.UTC()
	msg.IsRead = false
	if msg.Division == "" {
		msg.Division = DefaultDivision
	}
	return msg
}

// Insert writes the message with a server-assigned timestamp.
func (s *mongoMessageStore) Insert(ctx context.Context, msg Message) (Message, error) {
	msg = normalizeForInsert(msg, time.Now())

	res, err := s.coll.InsertOne(ctx, msg)
	if err != nil {
		return Message{}, errors.Join(ErrPersistence, err)
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		msg.ID = id
	}
	return msg, nil
}

func (s *mongoMessageStore) List(ctx context.Context) ([]Message, error) {
	cur, err := s.coll.Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}
	defer cur.Close(ctx)

	var messages []Message
	if err := cur.All(ctx, &messages); err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}
	return messages, nil
}

func (s *mongoMessageStore) MarkRead(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return errors.Join(ErrNotFound, err)
	}

	res, err := s.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return errors.Join(ErrPersistence, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
