package domain

import "time"

// UsageLog — запись об использовании продукта
type UsageLog struct {
	ID        int64
	ProductID int64
	UsedAt    time.Time
	Notes     string
}

func NewUsageLog(productID int64, notes string) *UsageLog {
	return &UsageLog{
		ProductID: productID,
		Notes:     notes,
	}
}
