package store

import (
	"context"
	"fmt"
	"time"

	"priyansh-be/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type mongoGateway struct {
	db  *mongo.Database
	now func() time.Time
}

func NewMongo(db *mongo.Database) Gateway {
	return &mongoGateway{db: db, now: time.Now}
}

func (g *mongoGateway) Available() bool { return g.db != nil }

func (g *mongoGateway) Name() string { return g.db.Name() }

func (g *mongoGateway) CreateDocument(ctx context.Context, collection string, doc any) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "store"),
		zap.String("collection", collection),
	)

	m, err := toDocument(doc)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}

	now := g.now().UTC()
	m[FieldCreatedAt] = now
	m[FieldUpdatedAt] = now

	res, err := g.db.Collection(collection).InsertOne(ctx, m)
	if err != nil {
		log.Error("insert failed", zap.Error(err))
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	id := idString(res.InsertedID)
	log.Debug("document inserted", zap.String("id", id))
	return id, nil
}

func (g *mongoGateway) GetDocuments(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := g.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find in %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return docs, nil
}

func (g *mongoGateway) CountDocuments(ctx context.Context, collection string, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	n, err := g.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (g *mongoGateway) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := g.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

func idString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
