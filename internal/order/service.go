package order

import (
	"context"
	"time"

	"priyansh-be/internal/logger"
	"priyansh-be/internal/store"

	"go.uber.org/zap"
)

const StatusSuccess = "success"

type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)
	Get(ctx context.Context, id string) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Checkout prices the submitted items, stores the order and returns its id.
// Unit prices are taken from the request as snapshots; they are not
// re-read from the product collection.
func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
	)

	if !s.repo.Available() {
		return nil, store.ErrUnavailable
	}

	if err := input.Validate(); err != nil {
		log.Warn("checkout validation failed", zap.Error(err))
		return nil, err
	}

	start := time.Now()

	items := input.items()
	totals := ComputeTotals(items)

	o := Order{
		CustomerName:    *input.CustomerName,
		CustomerEmail:   *input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		ShippingAddress: *input.ShippingAddress,
		Items:           items,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Total:           totals.Total,
	}

	if err := o.Validate(); err != nil {
		log.Warn("order validation failed", zap.Error(err))
		return nil, err
	}

	id, err := s.repo.Create(ctx, o)
	if err != nil {
		log.Error("failed to create order",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	log.Info("checkout success",
		zap.String("order_id", id),
		zap.Int("items", len(items)),
		zap.Float64("subtotal", totals.Subtotal),
		zap.Float64("tax", totals.Tax),
		zap.Float64("total", totals.Total),
		zap.Duration("duration", time.Since(start)),
	)

	return &CheckoutResult{
		Status:  StatusSuccess,
		OrderID: id,
		Total:   totals.Total,
	}, nil
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	if !s.repo.Available() {
		return nil, store.ErrUnavailable
	}

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.FromCtx(ctx).Debug("get order failed",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return nil, err
	}
	return o, nil
}
