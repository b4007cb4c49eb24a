package product

import (
	"context"
	"fmt"
	"time"

	"priyansh-be/internal/logger"
	"priyansh-be/internal/store"

	"go.uber.org/zap"
)

const (
	SeedStatusOK       = "ok"
	seedAlreadyDoneMsg = "Products already seeded"
)

type Service interface {
	List(ctx context.Context, category string) ([]Product, error)
	Seed(ctx context.Context) (*SeedResult, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// List returns every product, or only those whose category equals
// category exactly when it is non-empty.
func (s *service) List(ctx context.Context, category string) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	if !s.repo.Available() {
		return nil, store.ErrUnavailable
	}

	start := time.Now()

	products, err := s.repo.List(ctx, category)
	if err != nil {
		log.Error("failed to list products",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	log.Info("list products success",
		zap.String("category", category),
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)

	return products, nil
}

// Seed inserts the catalog once. If the collection already holds any
// product nothing is written.
func (s *service) Seed(ctx context.Context) (*SeedResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SeedProducts"),
	)

	if !s.repo.Available() {
		return nil, store.ErrUnavailable
	}

	existing, err := s.repo.Count(ctx)
	if err != nil {
		log.Error("failed to count products", zap.Error(err))
		return nil, err
	}

	if existing > 0 {
		log.Info("seed skipped", zap.Int64("existing", existing))
		return &SeedResult{Status: SeedStatusOK, Message: seedAlreadyDoneMsg, Inserted: 0}, nil
	}

	catalog := Catalog()
	for i, p := range catalog {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if _, err := s.repo.Create(ctx, p); err != nil {
			log.Error("failed to insert catalog product",
				zap.String("title", p.Title),
				zap.Int("inserted_before_failure", i),
				zap.Error(err),
			)
			return nil, err
		}
	}

	log.Info("seed success", zap.Int("inserted", len(catalog)))

	return &SeedResult{Status: SeedStatusOK, Inserted: len(catalog)}, nil
}
