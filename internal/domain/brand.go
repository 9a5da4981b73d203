package domain

import "time"

// Brand описывает бренд продукта
type Brand struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewBrand(name string) *Brand {
	return &Brand{
		Name: name,
	}
}
