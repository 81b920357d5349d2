package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/sumitd/costtrack/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormItemRepositoryWithTracing wraps GormItemRepository with tracing
type GormItemRepositoryWithTracing struct {
	*GormItemRepository
}

// NewGormItemRepositoryWithTracing creates a new repository with tracing
func NewGormItemRepositoryWithTracing(db *gorm.DB) *GormItemRepositoryWithTracing {
	return &GormItemRepositoryWithTracing{
		GormItemRepository: NewGormItemRepository(db),
	}
}

// Upsert with tracing
func (r *GormItemRepositoryWithTracing) UpsertWithContext(ctx context.Context, item *domain.Item) (bool, error) {
	_, span := tracer.Start(ctx, "repository.Upsert",
		trace.WithAttributes(
			attribute.Int("item.user_id", int(item.UserID)),
			attribute.String("item.name", item.ItemName),
			attribute.Float64("item.current_stock", item.CurrentStock),
		),
	)
	defer span.End()

	created, err := r.GormItemRepository.Upsert(item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	span.SetAttributes(
		attribute.Bool("item.created", created),
		attribute.Bool("item.alert_status", item.AlertStatus),
	)
	return created, nil
}

// FindByName with tracing
func (r *GormItemRepositoryWithTracing) FindByNameWithContext(ctx context.Context, userID uint, itemName string) (*domain.Item, error) {
	_, span := tracer.Start(ctx, "repository.FindByName",
		trace.WithAttributes(
			attribute.Int("item.user_id", int(userID)),
			attribute.String("item.name", itemName),
		),
	)
	defer span.End()

	item, err := r.GormItemRepository.FindByName(userID, itemName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Float64("item.current_stock", item.CurrentStock))
	return item, nil
}

// FindByUser with tracing
func (r *GormItemRepositoryWithTracing) FindByUserWithContext(ctx context.Context, userID uint) ([]domain.Item, error) {
	_, span := tracer.Start(ctx, "repository.FindByUser",
		trace.WithAttributes(
			attribute.Int("item.user_id", int(userID)),
		),
	)
	defer span.End()

	items, err := r.GormItemRepository.FindByUser(userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("item.count", len(items)))
	return items, nil
}

// FindLowStock with tracing
func (r *GormItemRepositoryWithTracing) FindLowStockWithContext(ctx context.Context, userID uint) ([]domain.Item, error) {
	_, span := tracer.Start(ctx, "repository.FindLowStock",
		trace.WithAttributes(
			attribute.Int("item.user_id", int(userID)),
		),
	)
	defer span.End()

	items, err := r.GormItemRepository.FindLowStock(userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("item.count", len(items)))
	return items, nil
}

// Delete with tracing
func (r *GormItemRepositoryWithTracing) DeleteWithContext(ctx context.Context, userID uint, itemName string) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("item.user_id", int(userID)),
			attribute.String("item.name", itemName),
		),
	)
	defer span.End()

	err := r.GormItemRepository.Delete(userID, itemName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
