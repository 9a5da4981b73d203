package usecase

import (
	"context"

	"github.com/glowshelf/go-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, ownerID, productID int64) (*domain.Product, error)
	GetByID(ctx context.Context, ownerID, productID int64) (*ProductView, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]ProductView, error)
}

type BrandRepository interface {
	Upsert(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
}

type CategoryRepository interface {
	Upsert(ctx context.Context, category *domain.Category) (*domain.Category, error)
}

type UsageLogRepository interface {
	Create(ctx context.Context, log *domain.UsageLog) (*domain.UsageLog, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.UsageLog, error)
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetSummary(ctx context.Context, ownerID int64, day string) (*StatusSummaryRes, error)
	SetSummary(ctx context.Context, ownerID int64, day string, summary *StatusSummaryRes) error
	DeleteSummary(ctx context.Context, ownerID int64) error
}
