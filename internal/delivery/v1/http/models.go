package http

import (
	"time"

	"github.com/glowshelf/go-backend/internal/domain"
	"github.com/glowshelf/go-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// ProductResponse — представление продукта в API.
// Цена отдаётся строкой в рублях с двумя знаками, даты — в формате YYYY-MM-DD.
type ProductResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Brand            string  `json:"brand"`
	Category         string  `json:"category,omitempty"`
	Shade            string  `json:"shade,omitempty"`
	Capacity         string  `json:"capacity,omitempty"`
	PurchaseDate     string  `json:"purchase_date,omitempty"`
	PurchaseLocation string  `json:"purchase_location,omitempty"`
	ProductionDate   *string `json:"production_date,omitempty"`
	Price            *string `json:"price,omitempty"`
	ExpirationDate   *string `json:"expiration_date,omitempty"`
	OpenStatus       string  `json:"open_status"`
	OpenedDate       *string `json:"opened_date,omitempty"`
	Rating           *int    `json:"rating,omitempty"`
	ImageKey         *string `json:"image_key,omitempty"`
	Status           string  `json:"status"`
	DaysLeft         *int    `json:"days_left"`
}

type ProductPageResponse struct {
	Items       []ProductResponse `json:"items"`
	TotalCount  int               `json:"total_count"`
	Page        int               `json:"page"`
	TotalPages  int               `json:"total_pages"`
	HasNext     bool              `json:"has_next"`
	HasPrevious bool              `json:"has_previous"`
}

type ExpiringOverviewResponse struct {
	Expired []ProductResponse `json:"expired"`
	Urgent  []ProductResponse `json:"urgent"`
	Soon    []ProductResponse `json:"soon"`
}

type UsageLogResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	UsedAt    string `json:"used_at"`
	Notes     string `json:"notes,omitempty"`
}

func NewProductResponse(v *usecase.ProductView) *ProductResponse {
	res := &ProductResponse{
		ID:               v.Product.ID,
		Name:             v.Product.Name,
		Brand:            v.BrandName,
		Category:         v.CategoryName,
		Shade:            v.Product.Shade,
		Capacity:         v.Product.Capacity,
		PurchaseLocation: v.Product.PurchaseLocation,
		OpenStatus:       string(v.Product.OpenStatus),
		Rating:           v.Product.Rating,
		ImageKey:         v.Product.ImageKey,
		Status:           string(v.Status),
		DaysLeft:         v.DaysLeft,
	}

	if !v.Product.PurchaseDate.IsZero() {
		res.PurchaseDate = v.Product.PurchaseDate.Format(dateLayout)
	}

	if v.Product.PriceCents != nil {
		price := decimal.NewFromInt(*v.Product.PriceCents).Div(decimal.NewFromInt(100)).StringFixed(2)
		res.Price = &price
	}

	if v.Product.ProductionDate != nil {
		prod := v.Product.ProductionDate.Format(dateLayout)
		res.ProductionDate = &prod
	}

	if v.Product.ExpirationDate != nil {
		exp := v.Product.ExpirationDate.Format(dateLayout)
		res.ExpirationDate = &exp
	}

	if v.Product.OpenedDate != nil {
		opened := v.Product.OpenedDate.Format(dateLayout)
		res.OpenedDate = &opened
	}

	return res
}

func NewProductResponseList(views []usecase.ProductView) []ProductResponse {
	items := make([]ProductResponse, 0, len(views))
	for i := range views {
		items = append(items, *NewProductResponse(&views[i]))
	}
	return items
}

func NewProductPageResponse(page *usecase.ProductPageRes) *ProductPageResponse {
	return &ProductPageResponse{
		Items:       NewProductResponseList(page.Items),
		TotalCount:  page.TotalCount,
		Page:        page.Page,
		TotalPages:  page.TotalPages,
		HasNext:     page.HasNext,
		HasPrevious: page.HasPrevious,
	}
}

func NewExpiringOverviewResponse(res *usecase.ExpiringOverviewRes) *ExpiringOverviewResponse {
	return &ExpiringOverviewResponse{
		Expired: NewProductResponseList(res.Expired),
		Urgent:  NewProductResponseList(res.Urgent),
		Soon:    NewProductResponseList(res.Soon),
	}
}

func NewUsageLogResponse(log *domain.UsageLog) *UsageLogResponse {
	return &UsageLogResponse{
		ID:        log.ID,
		ProductID: log.ProductID,
		UsedAt:    log.UsedAt.Format(time.RFC3339),
		Notes:     log.Notes,
	}
}

func NewUsageLogResponseList(logs []domain.UsageLog) []UsageLogResponse {
	items := make([]UsageLogResponse, 0, len(logs))
	for i := range logs {
		items = append(items, *NewUsageLogResponse(&logs[i]))
	}
	return items
}
