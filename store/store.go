// Package store is a thin gateway over the MongoDB driver: insert a
// document into a named collection, query a named collection with a
// filter and a cap. It owns identifier generation (delegated to the
// driver) and nothing else.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotConnected is returned by every operation when the store was
// built without a live client.
var ErrNotConnected = errors.New("database not connected")

type Store struct {
	client *mongo.Client
	dbName string
}

// New wraps an established client. client may be nil when the database
// was unreachable at startup; operations then fail with ErrNotConnected
// and the diagnostic endpoint reports the state.
func New(client *mongo.Client, dbName string) *Store {
	return &Store{client: client, dbName: dbName}
}

func (s *Store) Connected() bool {
	return s != nil && s.client != nil
}

func (s *Store) DatabaseName() string {
	return s.dbName
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.client.Database(s.dbName).Collection(name)
}

// CreateDocument inserts one document and returns its generated _id.
func (s *Store) CreateDocument(ctx context.Context, collection string, document interface{}) (primitive.ObjectID, error) {
	if !s.Connected() {
		return primitive.NilObjectID, ErrNotConnected
	}

	result, err := s.collection(collection).InsertOne(ctx, document)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected id type %T", collection, result.InsertedID)
	}
	return id, nil
}

// GetDocuments returns up to limit raw documents matching filter, each
// with its _id attached. A query matching nothing yields an empty
// slice, never an error.
func (s *Store) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if !s.Connected() {
		return nil, ErrNotConnected
	}

	findOptions := options.Find()
	findOptions.SetLimit(limit)

	cursor, err := s.collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var documents []bson.M
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("decode %s results: %w", collection, err)
	}

	// Empty array instead of null for callers that encode the result.
	if documents == nil {
		documents = []bson.M{}
	}
	return documents, nil
}

// ListCollectionNames is used by the diagnostic endpoint only.
func (s *Store) ListCollectionNames(ctx context.Context) ([]string, error) {
	if !s.Connected() {
		return nil, ErrNotConnected
	}
	return s.client.Database(s.dbName).ListCollectionNames(ctx, bson.M{})
}
