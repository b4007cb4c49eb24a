// Package store is the persistence gateway: create and read documents by
// collection name. Callers depend on Gateway and never on a driver.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldID        = "_id"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

type Gateway interface {
	// Available is false for a gateway that was never connected.
	Available() bool
	// Name is the database name.
	Name() string
	CreateDocument(ctx context.Context, collection string, doc any) (string, error)
	// GetDocuments returns every document matching filter; limit <= 0 means no limit.
	GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error)
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// ObjectIDFilter builds an _id equality filter from a hex id.
func ObjectIDFilter(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return bson.M{FieldID: oid}, nil
}

// toDocument marshals an entity through its bson tags into a mutable map.
func toDocument(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
