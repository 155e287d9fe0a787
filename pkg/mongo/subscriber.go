package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Subscriber struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	SubscribedAt time.Time          `bson:"subscribed_at"`
	IsActive     bool               `bson:"is_active"`
}

func (subscriber Subscriber) BSON() interface{} {

	return M{
		"email":         subscriber.Email,
		"subscribed_at": subscriber.SubscribedAt,
		"is_active":     subscriber.IsActive,
	}
}

func (subscriber Subscriber) GetSubscribedNice() string {
	return subscriber.SubscribedAt.Format("02 Jan 2006 15:04")
}

func (s *Store) InsertSubscriber(subscriber *Subscriber) error {

	if subscriber.SubscribedAt.IsZero() {
		subscriber.SubscribedAt = time.Now()
	}

	return s.insertDocument(CollectionSubscribers, subscriber)
}

func (s *Store) GetSubscribers(offset int64, limit int64) (subscribers []Subscriber, total int64, err error) {

	total, err = s.countDocuments(CollectionSubscribers, nil)
	if err != nil {
		return subscribers, total, err
	}

	err = s.getDocuments(CollectionSubscribers, nil, M{"subscribed_at": -1}, offset, limit, func(cur *mongo.Cursor) error {

		var subscriber Subscriber
		err := cur.Decode(&subscriber)
		if err != nil {
			return err
		}
		subscribers = append(subscribers, subscriber)
		return nil
	})

	return subscribers, total, err
}

func (s *Store) CountSubscribers(email string) (int64, error) {

	filter := M{}
	if email != "" {
		filter["email"] = email
	}

	return s.countDocuments(CollectionSubscribers, filter)
}
