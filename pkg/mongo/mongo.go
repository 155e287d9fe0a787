package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var ErrNoDocuments = mongo.ErrNoDocuments

type Document interface {
	BSON() interface{}
}

type (
	D bson.D
	E bson.E
	M bson.M
	A bson.A
)

type collection string

func (c collection) String() string {
	return string(c)
}

const (
	CollectionDownloads   collection = "downloads"
	CollectionReviews     collection = "reviews"
	CollectionSubscribers collection = "subscribers"
)

// Store is a handle to the portal's document database. It is constructed once
// in main and passed down, so tests can swap in a fake.
type Store struct {
	client   *mongo.Client
	ctx      context.Context
	database string
}

func NewStore(dsn string, database string, username string, password string) (*Store, error) {

	ctx := context.Background()

	ops := options.Client().
		ApplyURI(dsn).
		SetAppName("Appfolio")

	if username != "" {
		ops.SetAuth(options.Credential{
			AuthSource:  database,
			Username:    username,
			Password:    password,
			PasswordSet: true,
		})
	}

	client, err := mongo.NewClient(ops)
	if err != nil {
		return nil, err
	}

	err = client.Connect(ctx)
	if err != nil {
		return nil, err
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		return nil, err
	}

	return &Store{client: client, ctx: ctx, database: database}, nil
}

func (s *Store) collection(c collection) *mongo.Collection {
	return s.client.Database(s.database).Collection(c.String())
}

func (s *Store) insertDocument(c collection, document Document) error {

	_, err := s.collection(c).InsertOne(s.ctx, document.BSON(), options.InsertOne())
	return err
}

func (s *Store) countDocuments(c collection, filter interface{}) (count int64, err error) {

	if filter == nil {
		filter = M{}
	}

	return s.collection(c).CountDocuments(s.ctx, filter, options.Count())
}

func (s *Store) getDocuments(c collection, filter interface{}, sort interface{}, offset int64, limit int64, decode func(cur *mongo.Cursor) error) (err error) {

	if filter == nil {
		filter = M{}
	}

	ops := options.Find()
	if sort != nil {
		ops.SetSort(sort)
	}
	if limit > 0 {
		ops.SetLimit(limit)
	}
	if offset > 0 {
		ops.SetSkip(offset)
	}

	cur, err := s.collection(c).Find(s.ctx, filter, ops)
	if err != nil {
		return err
	}

	defer func() {
		errClose := cur.Close(s.ctx)
		if errClose != nil && err == nil {
			err = errClose
		}
	}()

	for cur.Next(s.ctx) {
		err = decode(cur)
		if err != nil {
			return err
		}
	}

	return cur.Err()
}
