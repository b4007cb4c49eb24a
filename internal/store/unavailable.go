package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Unavailable is the gateway used when no database could be reached at
// startup. Every operation fails with ErrUnavailable.
type Unavailable struct {
	Reason string
}

func NewUnavailable(reason string) *Unavailable {
	return &Unavailable{Reason: reason}
}

func (u *Unavailable) Available() bool { return false }
func (u *Unavailable) Name() string    { return "" }

func (u *Unavailable) CreateDocument(context.Context, string, any) (string, error) {
	return "", ErrUnavailable
}

func (u *Unavailable) GetDocuments(context.Context, string, bson.M, int64) ([]bson.M, error) {
	return nil, ErrUnavailable
}

func (u *Unavailable) CountDocuments(context.Context, string, bson.M) (int64, error) {
	return 0, ErrUnavailable
}

func (u *Unavailable) ListCollectionNames(context.Context) ([]string, error) {
	return nil, ErrUnavailable
}
