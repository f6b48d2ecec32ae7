package mongorepo

import (
	"context"
	"time"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/client"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/order"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ordersCollection  = "orders"
	clientsCollection = "clients"
)

// MongoReplicaStore implements ports.ReplicaStore on a MongoDB database.
type MongoReplicaStore struct {
	database *mongo.Database
}

// NewMongoReplicaStore creates a new MongoReplicaStore instance.
func NewMongoReplicaStore(database *mongo.Database) (*MongoReplicaStore, error) {
	if database == nil {
		return nil, errs.NewValueIsRequiredError("database")
	}
	return &MongoReplicaStore{database: database}, nil
}

// EnsureIndexes creates the unique indexes the insert-if-absent contract
// relies on. Safe to call on every startup; index creation is idempotent.
func (s *MongoReplicaStore) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	_, err := s.database.Collection(ordersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "order_id", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return err
	}

	_, err = s.database.Collection(clientsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "client_id", Value: 1}},
		Options: unique,
	})
	return err
}

// InsertOrderIfAbsent inserts the order projection unless a document with the
// same order id already exists. Returns false without error on a duplicate.
func (s *MongoReplicaStore) InsertOrderIfAbsent(ctx context.Context, aggregate *order.Order) (bool, error) {
	document, err := orderDocumentFromDomain(aggregate, time.Now().UTC())
	if err != nil {
		return false, err
	}

	_, err = s.database.Collection(ordersCollection).InsertOne(ctx, document)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// InsertClientIfAbsent inserts the client projection unless a document with
// the same client id already exists. Returns false without error on a duplicate.
func (s *MongoReplicaStore) InsertClientIfAbsent(ctx context.Context, aggregate *client.Client) (bool, error) {
	document, err := clientDocumentFromDomain(aggregate, time.Now().UTC())
	if err != nil {
		return false, err
	}

	_, err = s.database.Collection(clientsCollection).InsertOne(ctx, document)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
