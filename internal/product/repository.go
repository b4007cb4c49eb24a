package product

import (
	"context"
	"fmt"

	"priyansh-be/internal/logger"
	"priyansh-be/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type Repository interface {
	Available() bool
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, p Product) (string, error)
	List(ctx context.Context, category string) ([]Product, error)
}

type repository struct {
	gw store.Gateway
}

func NewRepository(gw store.Gateway) Repository {
	return &repository{gw: gw}
}

func (r *repository) Available() bool {
	return r.gw != nil && r.gw.Available()
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	return r.gw.CountDocuments(ctx, Collection, bson.M{})
}

func (r *repository) Create(ctx context.Context, p Product) (string, error) {
	return r.gw.CreateDocument(ctx, Collection, p)
}

func (r *repository) List(ctx context.Context, category string) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("category", category),
	)

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	docs, err := r.gw.GetDocuments(ctx, Collection, filter, 0)
	if err != nil {
		log.Error("get product documents failed", zap.Error(err))
		return nil, err
	}

	products := make([]Product, 0, len(docs))
	for _, d := range docs {
		p, err := Parse(d)
		if err != nil {
			log.Error("stored product failed validation",
				zap.Any("id", d[store.FieldID]),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err.Error())
		}
		products = append(products, p)
	}

	return products, nil
}
