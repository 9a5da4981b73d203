package domain

import "time"

// OpenStatus — жизненный цикл упаковки продукта.
type OpenStatus string

const (
	OpenUnopened  OpenStatus = "unopened"
	OpenOpened    OpenStatus = "opened"
	OpenFinished  OpenStatus = "finished"
	OpenDiscarded OpenStatus = "discarded"
)

// ParseOpenStatus разбирает статус упаковки, пустая строка трактуется как unopened.
func ParseOpenStatus(s string) (OpenStatus, bool) {
	if s == "" {
		return OpenUnopened, true
	}
	switch OpenStatus(s) {
	case OpenUnopened, OpenOpened, OpenFinished, OpenDiscarded:
		return OpenStatus(s), true
	default:
		return "", false
	}
}

// Product описывает косметический продукт пользователя
type Product struct {
	ID               int64
	OwnerID          int64
	Name             string
	BrandID          int64
	CategoryID       *int64
	Shade            string
	Capacity         string
	PurchaseDate     time.Time
	PurchaseLocation string
	ProductionDate   *time.Time
	PriceCents       *int64 // Цена хранится в копейках
	ExpirationDate   *time.Time
	OpenStatus       OpenStatus
	OpenedDate       *time.Time
	Rating           *int // Оценка владельца от 1 до 5
	ImageKey         *string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

func NewProduct(ownerID int64, name string, brandID int64, categoryID *int64) *Product {
	return &Product{
		OwnerID:    ownerID,
		Name:       name,
		BrandID:    brandID,
		CategoryID: categoryID,
		OpenStatus: OpenUnopened,
	}
}

// Status возвращает статус годности продукта на опорную дату.
func (p *Product) Status(reference time.Time) ExpirationStatus {
	return ClassifyExpiration(p.ExpirationDate, reference)
}
