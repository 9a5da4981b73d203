package usecase

import (
	"context"
	"time"

	"github.com/glowshelf/go-backend/internal/domain"
)

type ProductUC interface {
	AddProduct(ctx context.Context, req *AddProductReq) (*ProductView, error)
	GetProduct(ctx context.Context, ownerID, productID int64, reference time.Time) (*ProductView, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*ProductView, error)
	DeleteProduct(ctx context.Context, ownerID, productID int64) error

	Query(ctx context.Context, req *QueryProductsReq) (*ProductPageRes, error)
	CountByStatus(ctx context.Context, ownerID int64, reference time.Time) (*StatusSummaryRes, error)
	ExpiringOverview(ctx context.Context, ownerID int64, reference time.Time) (*ExpiringOverviewRes, error)

	AddUsageLog(ctx context.Context, ownerID, productID int64, notes string) (*domain.UsageLog, error)
	ListUsageLogs(ctx context.Context, ownerID, productID int64) ([]domain.UsageLog, error)
}
