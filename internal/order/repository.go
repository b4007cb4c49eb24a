package order

import (
	"context"
	"fmt"
	"time"

	"priyansh-be/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Repository interface {
	Available() bool
	Create(ctx context.Context, o Order) (string, error)
	GetByID(ctx context.Context, id string) (*Order, error)
}

type repository struct {
	gw store.Gateway
}

func NewRepository(gw store.Gateway) Repository {
	return &repository{gw: gw}
}

// storedOrder is Order plus the fields the gateway adds on insert.
type storedOrder struct {
	ID        primitive.ObjectID `bson:"_id"`
	Order     `bson:",inline"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *repository) Available() bool {
	return r.gw != nil && r.gw.Available()
}

func (r *repository) Create(ctx context.Context, o Order) (string, error) {
	return r.gw.CreateDocument(ctx, Collection, o)
}

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	filter, err := store.ObjectIDFilter(id)
	if err != nil {
		return nil, err
	}

	docs, err := r.gw.GetDocuments(ctx, Collection, filter, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrOrderNotFound
	}

	raw, err := bson.Marshal(docs[0])
	if err != nil {
		return nil, err
	}

	var s storedOrder
	if err := bson.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode order %s: %w", id, err)
	}

	o := s.Order
	o.ID = s.ID.Hex()
	if !s.CreatedAt.IsZero() {
		created := s.CreatedAt.UTC()
		o.CreatedAt = &created
	}
	if o.Items == nil {
		o.Items = []OrderItem{}
	}
	return &o, nil
}
